package schema

import (
	"fmt"
	"strings"
)

// MaxFieldsPerTable is the field count above which a table draws a
// design warning.
const MaxFieldsPerTable = 20

// Validate runs design-rule checks against a schema and returns the
// violations found. It never mutates the schema.
func Validate(s *Schema) []ValidationIssue {
	if s.Empty() {
		return []ValidationIssue{{
			Severity: SeverityError,
			Message:  "no tables found in schema",
		}}
	}

	tables := map[string]bool{}
	for _, t := range s.Tables {
		tables[t.Name] = true
	}

	var issues []ValidationIssue
	for _, t := range s.Tables {
		if len(t.PrimaryKeys()) == 0 {
			issues = append(issues, ValidationIssue{
				Severity: SeverityError,
				Message:  fmt.Sprintf("table %q has no primary key", t.Name),
				Table:    t.Name,
			})
		}
		if len(t.Fields) > MaxFieldsPerTable {
			issues = append(issues, ValidationIssue{
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("table %q has %d fields; consider splitting it", t.Name, len(t.Fields)),
				Table:    t.Name,
			})
		}
		for _, f := range t.Fields {
			if !f.ForeignKey {
				continue
			}
			if f.Reference == nil {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("foreign key %q in table %q has no declared target", f.Name, t.Name),
					Table:    t.Name,
					Field:    f.Name,
				})
				continue
			}
			if !tables[f.Reference.Table] {
				issues = append(issues, ValidationIssue{
					Severity: SeverityError,
					Message: fmt.Sprintf("foreign key %q in table %q references nonexistent table %q",
						f.Name, t.Name, f.Reference.Table),
					Table: t.Name,
					Field: f.Name,
				})
			}
			if !hasIndexHint(f) {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("foreign key %q in table %q has no index", f.Name, t.Name),
					Table:    t.Name,
					Field:    f.Name,
				})
			}
		}
	}

	for _, r := range s.Relationships {
		for _, name := range []string{r.FromTable, r.ToTable} {
			if name != "" && !tables[name] {
				issues = append(issues, ValidationIssue{
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("relationship references unknown table %q", name),
					Table:    name,
				})
			}
		}
	}
	return issues
}

func hasIndexHint(f *Field) bool {
	for _, c := range f.Constraints {
		lower := strings.ToLower(c)
		if strings.Contains(lower, "index") || strings.Contains(lower, "unique") {
			return true
		}
	}
	return false
}
