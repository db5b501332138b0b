package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/nlschema/nlschema"
	"github.com/nlschema/nlschema/internal/tablewriter"
	"github.com/nlschema/nlschema/schema"
)

var (
	headerStyle  = color.New(color.FgCyan, color.Bold)
	tableStyle   = color.New(color.FgMagenta, color.Bold)
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgYellow, color.Bold)
	successStyle = color.New(color.FgGreen, color.Bold)
	mutedStyle   = color.New(color.FgHiBlack)
)

func printSection(title string) {
	fmt.Println()
	headerStyle.Println(title)
	fmt.Println(strings.Repeat("-", 60))
}

// printResult writes the complete generation result to stdout.
func printResult(result *nlschema.Result) {
	headerStyle.Printf("Business requirement: %s\n", result.Requirement)

	if result.Schema.Empty() {
		errorStyle.Println("\nNo schema could be extracted from the model response.")
		for _, note := range result.Schema.ParseNotes {
			mutedStyle.Printf("  note: %s\n", note)
		}
		fmt.Println("\nRaw response:")
		fmt.Println(result.RawResponse)
		return
	}

	printSection("Generated database schema")
	for _, table := range result.Schema.Tables {
		printTable(table)
	}

	if len(result.Schema.Relationships) > 0 {
		printSection("Table relationships")
		for _, rel := range result.Schema.Relationships {
			fmt.Printf("  %s -> %s (%s)\n", rel.FromTable, rel.ToTable, rel.Type)
			if rel.Explanation != "" {
				mutedStyle.Printf("    %s\n", rel.Explanation)
			}
		}
	}

	if len(result.Schema.DesignDecisions) > 0 {
		printSection("Design decisions")
		for i, decision := range result.Schema.DesignDecisions {
			fmt.Printf("  %d. %s\n", i+1, decision)
		}
	}

	printIssues(result.Issues)
	if len(result.Schema.ParseNotes) > 0 {
		printSection("Parse notes")
		for _, note := range result.Schema.ParseNotes {
			mutedStyle.Printf("  %s\n", note)
		}
	}

	if len(result.Queries) > 0 {
		printSection("Example SQL queries")
		for _, query := range result.Queries {
			fmt.Println(query)
			fmt.Println()
		}
	}

	if len(result.Suggestions) > 0 {
		printSection("Optimization suggestions")
		for _, suggestion := range result.Suggestions {
			fmt.Printf("  - %s\n", suggestion)
		}
	}

	fmt.Println()
	mutedStyle.Printf("tokens: %d in / %d out\n",
		result.Usage.InputTokens, result.Usage.OutputTokens)
}

func printTable(table *schema.Table) {
	fmt.Println()
	tableStyle.Printf("Table: %s\n", table.Name)
	if table.Description != "" {
		mutedStyle.Printf("  %s\n", table.Description)
	}

	w := tablewriter.NewWriter(os.Stdout)
	w.SetHeader([]string{"Field", "Type", "Keys", "Constraints"})
	for _, f := range table.Fields {
		w.Append([]string{f.Name, f.DataType, fieldKeys(f), strings.Join(f.Constraints, ", ")})
	}
	w.Render()
}

func fieldKeys(f *schema.Field) string {
	var keys []string
	if f.PrimaryKey {
		keys = append(keys, "PK")
	}
	if f.ForeignKey {
		if f.Reference != nil {
			keys = append(keys, fmt.Sprintf("FK -> %s", f.Reference))
		} else {
			keys = append(keys, "FK")
		}
	}
	return strings.Join(keys, ", ")
}

func printIssues(issues []schema.ValidationIssue) {
	if len(issues) == 0 {
		printSection("Validation")
		successStyle.Println("  No issues found.")
		return
	}
	printSection("Validation issues")
	for _, issue := range issues {
		switch issue.Severity {
		case schema.SeverityError:
			errorStyle.Printf("  error: %s\n", issue.Message)
		default:
			warningStyle.Printf("  warning: %s\n", issue.Message)
		}
	}
}
