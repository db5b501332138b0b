package llm

// Usage contains token usage information for a model response.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// Add accumulates usage from another response.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// Response from a model.
type Response struct {
	ID         string  `json:"id"`
	Model      string  `json:"model"`
	StopReason string  `json:"stop_reason"`
	Role       Role    `json:"role"`
	Message    Message `json:"message"`
	Usage      Usage   `json:"usage"`
}

// Text returns the complete text of the response message.
func (r *Response) Text() string {
	return r.Message.CompleteText()
}
