package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Default chat models behind the fast / high-quality enum.
const (
	defaultModelFast    = "gpt-4o-mini"
	defaultModelQuality = "gpt-4o"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat
// completions).
type OpenAILLM struct {
	modelFast    string
	modelQuality string
	opts         []option.RequestOption
}

func NewOpenAILLM(cfg LLMSettings) (*OpenAILLM, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	l := &OpenAILLM{
		modelFast:    cfg.ModelFast,
		modelQuality: cfg.ModelQuality,
		opts:         opts,
	}
	if l.modelFast == "" {
		l.modelFast = defaultModelFast
	}
	if l.modelQuality == "" {
		l.modelQuality = defaultModelQuality
	}
	return l, nil
}

func (o *OpenAILLM) resolve(model Model) string {
	if model == ModelHighQuality {
		return o.modelQuality
	}
	return o.modelFast
}

func (o *OpenAILLM) Complete(ctx context.Context, model Model, prompt Prompt) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.resolve(model)),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
