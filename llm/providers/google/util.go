package google

import (
	"fmt"

	"github.com/nlschema/nlschema/llm"
	"google.golang.org/genai"
)

// messagesToContents converts messages to the genai.Content format.
// Google uses "user" and "model" roles instead of "user" and "assistant".
func messagesToContents(messages []*llm.Message) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	contents := make([]*genai.Content, 0, len(messages))
	for i, message := range messages {
		if len(message.Content) == 0 {
			return nil, fmt.Errorf("empty message detected (index %d)", i)
		}
		role := "user"
		if message.Role == llm.Assistant {
			role = "model"
		}
		var parts []*genai.Part
		for _, content := range message.Content {
			if content.Type == llm.ContentTypeText {
				parts = append(parts, genai.NewPartFromText(content.Text))
			}
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	return contents, nil
}

// convertResponse converts a genai response to an llm.Response.
func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from google genai")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}

	var content []*llm.Content
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			content = append(content, &llm.Content{
				Type: llm.ContentTypeText,
				Text: part.Text,
			})
		}
	}

	var usage llm.Usage
	if resp.UsageMetadata != nil {
		usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	var stopReason string
	switch candidate.FinishReason {
	case genai.FinishReasonStop:
		stopReason = "stop"
	case genai.FinishReasonMaxTokens:
		stopReason = "max_tokens"
	default:
		stopReason = "other"
	}

	return &llm.Response{
		ID:         resp.ResponseID,
		Model:      model,
		StopReason: stopReason,
		Role:       llm.Assistant,
		Message: llm.Message{
			Role:    llm.Assistant,
			Content: content,
		},
		Usage: usage,
	}, nil
}
