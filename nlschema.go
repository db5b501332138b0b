// Package nlschema turns natural-language business requirements into
// relational database schemas by prompting a hosted text-generation
// model and parsing its response.
package nlschema

import (
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/nlschema/nlschema/llm"
	"github.com/nlschema/nlschema/schema"
	"github.com/nlschema/nlschema/slogger"
)

var (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 2048
)

// Options configures a Generator.
type Options struct {
	// Model is the LLM used for all generation calls. Required.
	Model llm.LLM

	// Logger receives structured logs. Defaults to a no-op logger.
	Logger slogger.Logger

	// Temperature for generation. Defaults to DefaultTemperature.
	Temperature *float64

	// MaxTokens per generation call. Defaults to DefaultMaxTokens.
	MaxTokens int
}

// Generator converts business requirements into schemas, sample queries,
// and optimization suggestions. It holds no mutable state across calls;
// the model client is injected at construction.
type Generator struct {
	model       llm.LLM
	logger      slogger.Logger
	temperature float64
	maxTokens   int
}

// New creates a Generator with the given options.
func New(opts Options) (*Generator, error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("a model is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	temperature := DefaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Generator{
		model:       opts.Model,
		logger:      logger,
		temperature: temperature,
		maxTokens:   maxTokens,
	}, nil
}

// Result holds everything produced for one business requirement.
type Result struct {
	Requirement string
	Schema      *schema.Schema
	Issues      []schema.ValidationIssue
	Queries     []string
	Suggestions []string
	RawResponse string
	Usage       llm.Usage
}

// GenerateSchema sends one requirement to the model and parses the
// response into a validated schema. An external call failure is returned
// as an error; unparseable output degrades to a partial or empty schema
// with parse notes and validation issues.
func (g *Generator) GenerateSchema(ctx context.Context, requirement string) (*Result, error) {
	prompt, err := renderTemplate(schemaPrompt, map[string]any{"Requirement": requirement})
	if err != nil {
		return nil, fmt.Errorf("error rendering schema prompt: %w", err)
	}

	g.logger.Info("generating schema", "model", g.model.Name(), "requirement", requirement)
	response, err := g.generate(ctx, schemaSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("error generating schema: %w", err)
	}

	text := response.Text()
	s := schema.Parse(text)
	for _, note := range s.ParseNotes {
		g.logger.Warn("parse note", "note", note)
	}

	result := &Result{
		Requirement: requirement,
		Schema:      s,
		Issues:      schema.Validate(s),
		RawResponse: text,
	}
	result.Usage.Add(response.Usage)
	return result, nil
}

// GenerateQueries asks the model for example SQL queries against the
// given schema.
func (g *Generator) GenerateQueries(ctx context.Context, s *schema.Schema) ([]string, llm.Usage, error) {
	prompt, err := g.renderSchemaJSONPrompt(queryPrompt, s)
	if err != nil {
		return nil, llm.Usage{}, err
	}
	response, err := g.generate(ctx, querySystemPrompt, prompt)
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("error generating queries: %w", err)
	}
	return schema.ParseQueries(response.Text()), response.Usage, nil
}

// GenerateOptimizations asks the model for optimization suggestions for
// the given schema.
func (g *Generator) GenerateOptimizations(ctx context.Context, s *schema.Schema) ([]string, llm.Usage, error) {
	prompt, err := g.renderSchemaJSONPrompt(optimizationPrompt, s)
	if err != nil {
		return nil, llm.Usage{}, err
	}
	response, err := g.generate(ctx, optimizationSystemPrompt, prompt)
	if err != nil {
		return nil, llm.Usage{}, fmt.Errorf("error generating optimizations: %w", err)
	}
	return schema.ParseSuggestions(response.Text()), response.Usage, nil
}

// Generate runs the full pipeline for one requirement: schema, example
// queries, and optimization suggestions. Query and optimization failures
// are logged and leave the corresponding result fields empty; only a
// failed schema call is fatal.
func (g *Generator) Generate(ctx context.Context, requirement string) (*Result, error) {
	result, err := g.GenerateSchema(ctx, requirement)
	if err != nil {
		return nil, err
	}
	if result.Schema.Empty() {
		return result, nil
	}

	queries, usage, err := g.GenerateQueries(ctx, result.Schema)
	if err != nil {
		g.logger.Warn("query generation failed", "error", err)
	} else {
		result.Queries = queries
		result.Usage.Add(usage)
	}

	suggestions, usage, err := g.GenerateOptimizations(ctx, result.Schema)
	if err != nil {
		g.logger.Warn("optimization generation failed", "error", err)
	} else {
		result.Suggestions = suggestions
		result.Usage.Add(usage)
	}
	return result, nil
}

func (g *Generator) generate(ctx context.Context, systemPrompt, prompt string) (*llm.Response, error) {
	return g.model.Generate(ctx,
		llm.WithSystemPrompt(systemPrompt),
		llm.WithUserTextMessage(prompt),
		llm.WithMaxTokens(g.maxTokens),
		llm.WithTemperature(g.temperature),
	)
}

func (g *Generator) renderSchemaJSONPrompt(tmpl *template.Template, s *schema.Schema) (string, error) {
	schemaJSON, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshaling schema: %w", err)
	}
	return renderTemplate(tmpl, map[string]any{"SchemaJSON": string(schemaJSON)})
}
