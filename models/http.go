package models

// ProxyRequest is the body accepted by POST /api/openai.
type ProxyRequest struct {
	// Prompt is the user message forwarded upstream. Required.
	Prompt string `json:"prompt"`
}

// ChatMessage is a single message of a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body sent to the upstream
// /v1/chat/completions endpoint.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// Parameters of every upstream completion request.
const (
	CompletionMaxTokens   = 200
	CompletionTemperature = 0.2
)

// NewChatCompletionRequest builds a single-turn user request for model.
func NewChatCompletionRequest(model, prompt string) ChatCompletionRequest {
	return ChatCompletionRequest{
		Model:       model,
		Messages:    []ChatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   CompletionMaxTokens,
		Temperature: CompletionTemperature,
	}
}
