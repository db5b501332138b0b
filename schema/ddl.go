package schema

import (
	"fmt"
	"strings"
)

// CreateStatements renders CREATE TABLE statements for every table in
// the schema, with column constraints and foreign-key clauses.
func CreateStatements(s *Schema) string {
	var statements []string
	for _, t := range s.Tables {
		statements = append(statements, createTable(t))
	}
	return strings.Join(statements, "\n\n")
}

func createTable(t *Table) string {
	var defs []string
	for _, f := range t.Fields {
		defs = append(defs, columnDef(f))
	}
	for _, f := range t.Fields {
		if f.ForeignKey && f.Reference != nil {
			defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s", f.Name, f.Reference))
		}
	}
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n);", t.Name, strings.Join(defs, ",\n    "))
}

func columnDef(f *Field) string {
	parts := []string{f.Name}
	if f.DataType != "" {
		parts = append(parts, f.DataType)
	}
	for _, c := range f.Constraints {
		parts = append(parts, c)
	}
	if f.PrimaryKey {
		parts = append(parts, "PRIMARY KEY")
	}
	return strings.Join(parts, " ")
}

// SuggestIndexes returns CREATE INDEX statements for every foreign-key
// field in the schema. Indexing foreign keys is the baseline
// recommendation for join performance.
func SuggestIndexes(s *Schema) []string {
	var suggestions []string
	for _, t := range s.Tables {
		for _, f := range t.Fields {
			if f.ForeignKey {
				suggestions = append(suggestions, fmt.Sprintf(
					"CREATE INDEX idx_%s_%s ON %s(%s);", t.Name, f.Name, t.Name, f.Name))
			}
		}
	}
	return suggestions
}
