package completion

import (
	"context"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

// JSONResponseFormat asks the provider for a JSON-object response.
func JSONResponseFormat() *ResponseFormat {
	return &ResponseFormat{Type: "json_object"}
}

type Request struct {
	Model string `json:"model"`

	// Messages is the chat transcript, system turn first.
	Messages []Message `json:"messages"`

	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`

	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type Choice struct {
	Message Message `json:"message"`
}

type Response struct {
	Choices []Choice `json:"choices"`
}

// Text returns the generated text of the first choice, or "" when there is none.
func (r *Response) Text() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// Client calls a chat-completion provider. The API key belongs to the
// requesting user, so it travels with each call rather than the client.
type Client interface {
	Complete(ctx context.Context, apiKey string, req Request) (*Response, error)
}
