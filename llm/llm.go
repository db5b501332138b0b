// Package llm defines the interface used to interact with hosted
// text-generation models, along with the message and response types
// shared by all providers.
package llm

import "context"

// LLM is implemented by model providers. A single Generate call sends
// the configured messages and returns the complete model response.
type LLM interface {
	// Name returns the provider name, e.g. "google" or "openai".
	Name() string

	// Generate a response from the model.
	Generate(ctx context.Context, opts ...Option) (*Response, error)
}

// Option is a function that configures an LLM call.
type Option func(*Config)

// Config holds the parameters for one generation request.
type Config struct {
	Model        string
	SystemPrompt string
	Messages     []*Message
	MaxTokens    *int
	Temperature  *float64
}

// Apply applies the given options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the model used for the generation.
func WithModel(model string) Option {
	return func(config *Config) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(config *Config) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMessages sets the messages for the generation.
func WithMessages(messages ...*Message) Option {
	return func(config *Config) {
		config.Messages = messages
	}
}

// WithUserTextMessage sets a single user message containing the given text.
func WithUserTextMessage(text string) Option {
	return func(config *Config) {
		config.Messages = []*Message{NewUserMessage(text)}
	}
}

// WithMaxTokens sets the max output tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(config *Config) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float64) Option {
	return func(config *Config) {
		config.Temperature = &temperature
	}
}
