package nlschema

import (
	"bytes"
	"text/template"
)

const schemaSystemPrompt = `You are a senior database architect with expertise in relational database design and normalization. Your task is to convert business requirements into well-normalized relational database schemas.`

const schemaPromptText = `Business Requirement: {{.Requirement}}

Please design a normalized relational database schema following these guidelines:
1. Follow 3NF (Third Normal Form) principles
2. Use appropriate data types for each field
3. Define primary keys and foreign keys correctly
4. Create proper relationships between tables
5. Use meaningful table and column names

Provide your response in the following JSON format and nothing else:
{
    "tables": [
        {
            "name": "table_name",
            "description": "Brief description of what this table stores",
            "fields": [
                {
                    "name": "field_name",
                    "data_type": "VARCHAR(100) | INT | DATE | etc.",
                    "is_primary_key": true,
                    "is_foreign_key": false,
                    "references": "referenced_table.field_name (if foreign key)",
                    "constraints": ["NOT NULL", "UNIQUE"]
                }
            ]
        }
    ],
    "relationships": [
        {
            "from_table": "table1",
            "to_table": "table2",
            "relationship_type": "one-to-many | many-to-one | many-to-many",
            "explanation": "Why this relationship exists"
        }
    ],
    "design_decisions": [
        "Explanation for each major design decision"
    ]
}`

const querySystemPrompt = `You are a SQL expert. Generate practical, well-commented SQL queries that demonstrate how to use the provided database schema effectively.`

const queryPromptText = `Given this database schema:
{{.SchemaJSON}}

Generate 3-4 example SQL queries with the following types:
1. INSERT queries to add realistic sample data (at least 2-3 records per table)
2. SELECT query with JOINs to retrieve related data
3. UPDATE query to modify existing data
4. DELETE query (optional, with proper constraints)

Make the queries realistic for the business domain and include a comment explaining what each query does. Format each as:

-- Query 1: Insert sample data
INSERT INTO table_name (field1, field2) VALUES (value1, value2);`

const optimizationSystemPrompt = `You are a database performance expert. Analyze database schemas and provide optimization recommendations.`

const optimizationPromptText = `Database Schema:
{{.SchemaJSON}}

Provide optimization suggestions including:
1. Recommended indexes for better query performance
2. Potential normalization improvements
3. Suggestions for handling large datasets
4. Security considerations

Format as a bulleted list with a short explanation per item.`

var (
	schemaPrompt       = template.Must(template.New("schema").Parse(schemaPromptText))
	queryPrompt        = template.Must(template.New("queries").Parse(queryPromptText))
	optimizationPrompt = template.Must(template.New("optimizations").Parse(optimizationPromptText))
)

// renderTemplate applies parameters to a prompt template.
func renderTemplate(tmpl *template.Template, params any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}
