package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/nlschema/nlschema/schema"
	"github.com/spf13/cobra"
)

var ddlCmd = &cobra.Command{
	Use:   "ddl [requirement]",
	Short: "Generate CREATE TABLE statements for a requirement",
	Long: `Generate a schema for the given business requirement and print the
corresponding CREATE TABLE and CREATE INDEX statements.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if noColor {
			color.NoColor = true
		}
		return runDDL(args[0])
	},
}

func runDDL(requirement string) error {
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	result, err := generator.GenerateSchema(context.Background(), requirement)
	if err != nil {
		return err
	}
	if result.Schema.Empty() {
		return fmt.Errorf("no schema could be extracted from the model response")
	}

	printIssues(result.Issues)
	printSection("DDL")
	fmt.Println(schema.CreateStatements(result.Schema))

	indexes := schema.SuggestIndexes(result.Schema)
	if len(indexes) > 0 {
		fmt.Println()
		mutedStyle.Println("-- Suggested indexes")
		for _, stmt := range indexes {
			fmt.Println(stmt)
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(ddlCmd)
}
