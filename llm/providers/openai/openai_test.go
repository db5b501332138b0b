package openai

import (
	"testing"

	"github.com/nlschema/nlschema/llm"
	"github.com/openai/openai-go"
	"github.com/stretchr/testify/require"
)

func TestBuildParams(t *testing.T) {
	config := &llm.Config{}
	config.Apply(
		llm.WithSystemPrompt("you are a database architect"),
		llm.WithUserTextMessage("design a schema"),
		llm.WithMaxTokens(512),
		llm.WithTemperature(0.3),
	)

	params, err := buildParams(config, DefaultModel, DefaultMaxTokens)
	require.NoError(t, err)
	require.Equal(t, DefaultModel, params.Model)
	require.Len(t, params.Messages, 2)
	require.Equal(t, int64(512), params.MaxCompletionTokens.Value)
	require.InDelta(t, 0.3, params.Temperature.Value, 0.0001)
}

func TestBuildParamsModelOverride(t *testing.T) {
	config := &llm.Config{}
	config.Apply(
		llm.WithModel("gpt-4o-mini"),
		llm.WithUserTextMessage("hi"),
	)
	params, err := buildParams(config, DefaultModel, DefaultMaxTokens)
	require.NoError(t, err)
	require.Equal(t, openai.ChatModel("gpt-4o-mini"), params.Model)
}

func TestBuildParamsNoMessages(t *testing.T) {
	_, err := buildParams(&llm.Config{}, DefaultModel, DefaultMaxTokens)
	require.Error(t, err)
}

func TestConvertCompletion(t *testing.T) {
	completion := &openai.ChatCompletion{
		ID:    "chatcmpl-1",
		Model: "gpt-4o",
		Choices: []openai.ChatCompletionChoice{
			{
				Message:      openai.ChatCompletionMessage{Content: "schema text"},
				FinishReason: "stop",
			},
		},
		Usage: openai.CompletionUsage{PromptTokens: 10, CompletionTokens: 20},
	}

	resp, err := convertCompletion(completion)
	require.NoError(t, err)
	require.Equal(t, "chatcmpl-1", resp.ID)
	require.Equal(t, "schema text", resp.Text())
	require.Equal(t, "stop", resp.StopReason)
	require.Equal(t, 10, resp.Usage.InputTokens)
	require.Equal(t, 20, resp.Usage.OutputTokens)
}

func TestConvertCompletionEmpty(t *testing.T) {
	_, err := convertCompletion(nil)
	require.Error(t, err)
	_, err = convertCompletion(&openai.ChatCompletion{})
	require.Error(t, err)
}
