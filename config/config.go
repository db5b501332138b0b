// Package config resolves the model provider, credentials, and optional
// settings file used by the nlschema CLI.
package config

import (
	"fmt"
	"os"

	"github.com/nlschema/nlschema/llm"
	"github.com/nlschema/nlschema/llm/providers/google"
	"github.com/nlschema/nlschema/llm/providers/openai"
)

var DefaultProvider = "google"

// credentialEnvVars lists the environment variables checked per provider.
var credentialEnvVars = map[string][]string{
	"google": {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	"openai": {"OPENAI_API_KEY"},
}

// GetModel returns an LLM client for the named provider. An empty
// provider selects the default. Missing credentials are a configuration
// error: the caller is expected to treat it as fatal.
func GetModel(providerName, modelName string) (llm.LLM, error) {
	if providerName == "" {
		providerName = DefaultProvider
	}
	if err := checkCredentials(providerName); err != nil {
		return nil, err
	}

	switch providerName {
	case "google":
		opts := []google.Option{}
		if modelName != "" {
			opts = append(opts, google.WithModel(modelName))
		}
		return google.New(opts...), nil

	case "openai":
		opts := []openai.Option{}
		if modelName != "" {
			opts = append(opts, openai.WithModel(modelName))
		}
		return openai.New(opts...), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %q", providerName)
	}
}

func checkCredentials(providerName string) error {
	vars, ok := credentialEnvVars[providerName]
	if !ok {
		return nil
	}
	for _, name := range vars {
		if os.Getenv(name) != "" {
			return nil
		}
	}
	return fmt.Errorf("no API key found for provider %q: set %s", providerName, vars[0])
}
