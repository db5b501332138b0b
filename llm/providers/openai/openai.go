// Package openai implements the llm.LLM interface over the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"fmt"
	"os"

	"github.com/nlschema/nlschema/llm"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const ProviderName = "openai"

var (
	DefaultModel     = openai.ChatModelGPT4o
	DefaultMaxTokens = 2048
)

var _ llm.LLM = &Provider{}

type Provider struct {
	client    openai.Client
	apiKey    string
	model     openai.ChatModel
	maxTokens int
	options   []option.RequestOption
}

func New(opts ...Option) *Provider {
	p := &Provider{
		apiKey:    os.Getenv("OPENAI_API_KEY"),
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Single attempt by default; the SDK would otherwise retry twice.
	// Later options win, so a caller's WithMaxRetries still applies.
	p.options = append([]option.RequestOption{option.WithMaxRetries(0)}, p.options...)
	if p.apiKey != "" {
		p.options = append(p.options, option.WithAPIKey(p.apiKey))
	}
	p.client = openai.NewClient(p.options...)
	return p
}

func (p *Provider) Name() string {
	return ProviderName
}

// HasCredentials reports whether an API key is available.
func (p *Provider) HasCredentials() bool {
	return p.apiKey != ""
}

func (p *Provider) Generate(ctx context.Context, opts ...llm.Option) (*llm.Response, error) {
	config := &llm.Config{}
	config.Apply(opts...)

	params, err := buildParams(config, p.model, p.maxTokens)
	if err != nil {
		return nil, err
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	return convertCompletion(completion)
}

// buildParams converts an llm.Config to chat completion parameters.
func buildParams(config *llm.Config, defaultModel openai.ChatModel, defaultMaxTokens int) (openai.ChatCompletionNewParams, error) {
	if len(config.Messages) == 0 {
		return openai.ChatCompletionNewParams{}, fmt.Errorf("no messages provided")
	}

	var messages []openai.ChatCompletionMessageParamUnion
	if config.SystemPrompt != "" {
		messages = append(messages, openai.SystemMessage(config.SystemPrompt))
	}
	for i, message := range config.Messages {
		text := message.CompleteText()
		if text == "" {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("empty message detected (index %d)", i)
		}
		switch message.Role {
		case llm.Assistant:
			messages = append(messages, openai.AssistantMessage(text))
		default:
			messages = append(messages, openai.UserMessage(text))
		}
	}

	model := openai.ChatModel(config.Model)
	if model == "" {
		model = defaultModel
	}
	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: messages,
	}

	maxTokens := defaultMaxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	if maxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(maxTokens))
	}
	if config.Temperature != nil {
		params.Temperature = openai.Float(*config.Temperature)
	}
	return params, nil
}

// convertCompletion converts a chat completion to an llm.Response.
func convertCompletion(completion *openai.ChatCompletion) (*llm.Response, error) {
	if completion == nil || len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from openai")
	}
	choice := completion.Choices[0]

	return &llm.Response{
		ID:         completion.ID,
		Model:      completion.Model,
		StopReason: string(choice.FinishReason),
		Role:       llm.Assistant,
		Message: llm.Message{
			Role: llm.Assistant,
			Content: []*llm.Content{{
				Type: llm.ContentTypeText,
				Text: choice.Message.Content,
			}},
		},
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}
