package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSchema() *Schema {
	return &Schema{
		Tables: []*Table{
			{
				Name: "Customer",
				Fields: []*Field{
					{Name: "customer_id", DataType: "INT", PrimaryKey: true},
					{Name: "name", DataType: "VARCHAR(100)"},
				},
			},
			{
				Name: "Order",
				Fields: []*Field{
					{Name: "order_id", DataType: "INT", PrimaryKey: true},
					{
						Name:        "customer_id",
						DataType:    "INT",
						ForeignKey:  true,
						Reference:   &Reference{Table: "Customer", Column: "customer_id"},
						Constraints: []string{"INDEX"},
					},
				},
			},
		},
	}
}

func issuesBySeverity(issues []ValidationIssue, severity Severity) []ValidationIssue {
	var matched []ValidationIssue
	for _, issue := range issues {
		if issue.Severity == severity {
			matched = append(matched, issue)
		}
	}
	return matched
}

func TestValidateCleanSchema(t *testing.T) {
	require.Empty(t, Validate(validSchema()))
}

func TestValidateEmptySchema(t *testing.T) {
	issues := Validate(&Schema{})
	require.Len(t, issues, 1)
	require.Equal(t, SeverityError, issues[0].Severity)
	require.Contains(t, issues[0].Message, "no tables")

	require.Len(t, Validate(nil), 1)
}

func TestValidateMissingPrimaryKey(t *testing.T) {
	s := validSchema()
	s.Tables[0].Fields[0].PrimaryKey = false

	errors := issuesBySeverity(Validate(s), SeverityError)
	require.Len(t, errors, 1)
	require.Equal(t, "Customer", errors[0].Table)
	require.Contains(t, errors[0].Message, "no primary key")
}

func TestValidateForeignKeyToUnknownTable(t *testing.T) {
	s := validSchema()
	s.Tables[1].Fields[1].Reference = &Reference{Table: "Invoice", Column: "id"}

	errors := issuesBySeverity(Validate(s), SeverityError)
	require.Len(t, errors, 1)
	require.Equal(t, "Order", errors[0].Table)
	require.Equal(t, "customer_id", errors[0].Field)
	require.Contains(t, errors[0].Message, `nonexistent table "Invoice"`)
}

func TestValidateForeignKeyWithoutTarget(t *testing.T) {
	s := validSchema()
	s.Tables[1].Fields[1].Reference = nil

	warnings := issuesBySeverity(Validate(s), SeverityWarning)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, "no declared target")
}

func TestValidateUnindexedForeignKey(t *testing.T) {
	s := validSchema()
	s.Tables[1].Fields[1].Constraints = nil

	warnings := issuesBySeverity(Validate(s), SeverityWarning)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, "no index")
}

func TestValidateWideTable(t *testing.T) {
	s := validSchema()
	for i := 0; i < MaxFieldsPerTable; i++ {
		s.Tables[0].Fields = append(s.Tables[0].Fields, &Field{
			Name:     string(rune('a'+i%26)) + "_col",
			DataType: "TEXT",
		})
	}

	warnings := issuesBySeverity(Validate(s), SeverityWarning)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, "consider splitting")
}

func TestValidateRelationshipUnknownTable(t *testing.T) {
	s := validSchema()
	s.Relationships = []*Relationship{
		{FromTable: "Customer", ToTable: "Shipment", Type: "one-to-many"},
	}

	warnings := issuesBySeverity(Validate(s), SeverityWarning)
	require.Len(t, warnings, 1)
	require.Contains(t, warnings[0].Message, `unknown table "Shipment"`)
}

func TestValidateDoesNotMutate(t *testing.T) {
	s := validSchema()
	before := CreateStatements(s)
	Validate(s)
	require.Equal(t, before, CreateStatements(s))
}
