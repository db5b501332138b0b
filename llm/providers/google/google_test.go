package google

import (
	"testing"

	"github.com/nlschema/nlschema/llm"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestMessagesToContents(t *testing.T) {
	contents, err := messagesToContents([]*llm.Message{
		llm.NewUserMessage("design a schema"),
		llm.NewAssistantMessage("here it is"),
	})
	require.NoError(t, err)
	require.Len(t, contents, 2)
	require.Equal(t, "user", contents[0].Role)
	require.Equal(t, "model", contents[1].Role)
	require.Equal(t, "design a schema", contents[0].Parts[0].Text)
}

func TestMessagesToContentsEmpty(t *testing.T) {
	_, err := messagesToContents(nil)
	require.Error(t, err)

	_, err = messagesToContents([]*llm.Message{{Role: llm.User}})
	require.Error(t, err)
}

func TestConvertResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		ResponseID: "resp-1",
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{{Text: "hello"}, {Text: "world"}},
				},
				FinishReason: genai.FinishReasonStop,
			},
		},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     12,
			CandidatesTokenCount: 34,
		},
	}

	result, err := convertResponse(resp, "gemini-1.5-flash")
	require.NoError(t, err)
	require.Equal(t, "resp-1", result.ID)
	require.Equal(t, "gemini-1.5-flash", result.Model)
	require.Equal(t, "stop", result.StopReason)
	require.Equal(t, llm.Assistant, result.Role)
	require.Equal(t, "hello\n\nworld", result.Text())
	require.Equal(t, 12, result.Usage.InputTokens)
	require.Equal(t, 34, result.Usage.OutputTokens)
}

func TestConvertResponseEmpty(t *testing.T) {
	_, err := convertResponse(nil, "m")
	require.Error(t, err)

	_, err = convertResponse(&genai.GenerateContentResponse{}, "m")
	require.Error(t, err)

	_, err = convertResponse(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}, "m")
	require.Error(t, err)
}

func TestProviderDefaults(t *testing.T) {
	p := New(WithAPIKey("test-key"), WithModel("gemini-2.0-flash"))
	require.Equal(t, ProviderName, p.Name())
	require.True(t, p.HasCredentials())
	require.Equal(t, "gemini-2.0-flash", p.model)
	require.Equal(t, DefaultMaxTokens, p.maxTokens)
	require.Equal(t, DefaultMaxRetries, p.maxRetries)
}
