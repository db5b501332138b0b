// Package cli implements the nlschema command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nlschema/nlschema/config"
	"github.com/spf13/cobra"
)

var (
	llmProvider string
	llmModel    string
	logLevel    string
	noColor     bool
	interactive bool
)

// loadSettings merges the optional config file with command-line flags.
func loadSettings() (*config.Settings, error) {
	path, err := config.SettingsPath()
	if err != nil {
		return nil, err
	}
	settings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}
	return settings.Merge(llmProvider, llmModel, logLevel), nil
}

var rootCmd = &cobra.Command{
	Use:   "nlschema",
	Short: "Generate database schemas from natural-language requirements",
	Long: `nlschema sends business requirements to a hosted language model and
turns the response into a relational schema with example queries and
optimization suggestions.

Without arguments it runs in demo mode with a fixed list of example
requirements. With --interactive it reads one requirement from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if noColor {
			color.NoColor = true
		}
		requirement, err := pickRequirement(interactive)
		if err != nil {
			return err
		}
		return runGeneration(requirement)
	},
}

// Execute runs the root command. Configuration errors and failed calls
// are reported and exit nonzero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(errorStyle.Sprint(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&llmProvider, "provider", "",
		"LLM provider to use ('google' or 'openai')")
	rootCmd.PersistentFlags().StringVarP(&llmModel, "model", "m", "",
		"Model to use (e.g. 'gemini-1.5-flash')")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level to use (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"Read a custom requirement from stdin")
}
