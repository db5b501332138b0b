package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nlschema/nlschema"
	"github.com/nlschema/nlschema/config"
	"github.com/nlschema/nlschema/slogger"
)

// demoRequirements is the fixed list offered in demo mode.
var demoRequirements = []string{
	"Track patients, doctors, and medical appointments with patient history",
	"Manage a library system with books, members, authors, and borrowing records",
	"Handle e-commerce orders with customers, products, inventory, and shipping",
	"Track employees, departments, projects, and work assignments",
	"Manage university courses, students, professors, and enrollments",
}

// pickRequirement returns the requirement to process: a free-text line
// in interactive mode, otherwise a selection from the demo list.
func pickRequirement(interactive bool) (string, error) {
	if interactive {
		fmt.Print("Describe your business requirement: ")
		requirement, err := readLine(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("error reading requirement: %v", err)
		}
		if requirement == "" {
			return "", fmt.Errorf("no requirement provided")
		}
		return requirement, nil
	}

	fmt.Println("Available demo requirements:")
	for i, req := range demoRequirements {
		fmt.Printf("  %d. %s\n", i+1, req)
	}
	fmt.Printf("\nSelect a requirement (1-%d) or press Enter for #1: ", len(demoRequirements))

	choice, err := readLine(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading selection: %v", err)
	}
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(demoRequirements) {
		return demoRequirements[n-1], nil
	}
	return demoRequirements[0], nil
}

func readLine(f *os.File) (string, error) {
	reader := bufio.NewReader(f)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// newGenerator builds a Generator from settings, flags and environment.
func newGenerator() (*nlschema.Generator, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	model, err := config.GetModel(settings.Provider, settings.Model)
	if err != nil {
		return nil, err
	}

	logger := slogger.New(slogger.LevelFromString(settings.LogLevel))
	return nlschema.New(nlschema.Options{
		Model:       model,
		Logger:      logger,
		Temperature: settings.Temperature,
		MaxTokens:   settings.MaxTokens,
	})
}

func runGeneration(requirement string) error {
	generator, err := newGenerator()
	if err != nil {
		return err
	}

	fmt.Printf("\nProcessing: %s\n", requirement)
	mutedStyle.Println("This may take 15-30 seconds...")

	result, err := generator.Generate(context.Background(), requirement)
	if err != nil {
		return err
	}
	fmt.Println()
	printResult(result)
	return nil
}
