// Package schema defines the relational schema model produced from model
// responses, the heuristic parser that extracts it from free-form text,
// and the rule checks run against it.
package schema

import "fmt"

// Reference identifies the table and column a foreign key points at.
type Reference struct {
	Table  string `json:"table"`
	Column string `json:"column,omitempty"`
}

func (r Reference) String() string {
	if r.Column == "" {
		return r.Table
	}
	return fmt.Sprintf("%s.%s", r.Table, r.Column)
}

// Field is a single column in a table.
type Field struct {
	Name        string     `json:"name"`
	DataType    string     `json:"data_type"`
	Nullable    bool       `json:"nullable,omitempty"`
	PrimaryKey  bool       `json:"is_primary_key,omitempty"`
	ForeignKey  bool       `json:"is_foreign_key,omitempty"`
	Reference   *Reference `json:"references,omitempty"`
	Constraints []string   `json:"constraints,omitempty"`
}

// Table is a named, ordered collection of fields.
type Table struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Fields      []*Field `json:"fields"`
}

// Field returns the field with the given name, or nil.
func (t *Table) Field(name string) *Field {
	for _, f := range t.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// PrimaryKeys returns the names of the table's primary-key fields.
func (t *Table) PrimaryKeys() []string {
	var keys []string
	for _, f := range t.Fields {
		if f.PrimaryKey {
			keys = append(keys, f.Name)
		}
	}
	return keys
}

// Relationship describes a link between two tables.
type Relationship struct {
	FromTable   string `json:"from_table"`
	ToTable     string `json:"to_table"`
	Type        string `json:"relationship_type,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Schema is the full set of tables extracted from one model response.
// It is built once by the parser and not mutated afterwards.
type Schema struct {
	Tables          []*Table        `json:"tables"`
	Relationships   []*Relationship `json:"relationships,omitempty"`
	DesignDecisions []string        `json:"design_decisions,omitempty"`

	// ParseNotes records text the parser could not interpret. A non-empty
	// list means the schema may be partial.
	ParseNotes []string `json:"-"`
}

// Table returns the table with the given name, or nil.
func (s *Schema) Table(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// TableNames returns the names of all tables in declaration order.
func (s *Schema) TableNames() []string {
	names := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		names = append(names, t.Name)
	}
	return names
}

// Empty reports whether no tables were extracted.
func (s *Schema) Empty() bool {
	return s == nil || len(s.Tables) == 0
}

// Severity of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationIssue is a single rule violation found in a schema.
type ValidationIssue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Table    string   `json:"table,omitempty"`
	Field    string   `json:"field,omitempty"`
}

func (i ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", i.Severity, i.Message)
}
