package generator

import "context"

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// LLMClient abstracts the chat-completion provider so it can be mocked.
type LLMClient interface {
	Complete(ctx context.Context, model Model, prompt Prompt) (string, error)
}

// LLMSettings configures a concrete client.
type LLMSettings struct {
	APIKey       string
	BaseURL      string
	ModelFast    string
	ModelQuality string
}
