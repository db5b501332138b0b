// Package google implements the llm.LLM interface over the Google GenAI
// API (Gemini models).
package google

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/nlschema/nlschema/llm"
	"github.com/nlschema/nlschema/retry"
	"google.golang.org/genai"
)

const ProviderName = "google"

var (
	DefaultModel      = "gemini-1.5-flash"
	DefaultMaxTokens  = 2048
	DefaultMaxRetries = 1
	DefaultBaseWait   = 1 * time.Second
)

var _ llm.LLM = &Provider{}

type Provider struct {
	client     *genai.Client
	apiKey     string
	model      string
	maxTokens  int
	maxRetries int
	baseWait   time.Duration
	mutex      sync.Mutex
}

func New(opts ...Option) *Provider {
	var apiKey string
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		apiKey = value
	} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
		apiKey = value
	}
	p := &Provider{
		apiKey:     apiKey,
		model:      DefaultModel,
		maxTokens:  DefaultMaxTokens,
		maxRetries: DefaultMaxRetries,
		baseWait:   DefaultBaseWait,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return ProviderName
}

// HasCredentials reports whether an API key is available.
func (p *Provider) HasCredentials() bool {
	return p.apiKey != ""
}

func (p *Provider) initClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %v", err)
	}
	p.client = client
	return p.client, nil
}

func (p *Provider) Generate(ctx context.Context, opts ...llm.Option) (*llm.Response, error) {
	if _, err := p.initClient(ctx); err != nil {
		return nil, err
	}

	config := &llm.Config{}
	config.Apply(opts...)

	model := config.Model
	if model == "" {
		model = p.model
	}

	contents, err := messagesToContents(config.Messages)
	if err != nil {
		return nil, err
	}
	genConfig := p.buildGenerateConfig(config)

	var result *llm.Response
	err = retry.Do(ctx, func() error {
		resp, err := p.client.Models.GenerateContent(ctx, model, contents, genConfig)
		if err != nil {
			return fmt.Errorf("error generating content: %w", err)
		}
		var convErr error
		result, convErr = convertResponse(resp, model)
		if convErr != nil {
			return fmt.Errorf("error converting response: %w", convErr)
		}
		return nil
	}, retry.WithMaxRetries(p.maxRetries), retry.WithBaseWait(p.baseWait))

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *Provider) buildGenerateConfig(config *llm.Config) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{}

	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	genConfig.MaxOutputTokens = int32(maxTokens)

	if config.Temperature != nil {
		temperature := float32(*config.Temperature)
		genConfig.Temperature = &temperature
	}
	if config.SystemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(config.SystemPrompt)},
		}
	}
	return genConfig
}
