package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyLead rejects a generation before any network call is made.
var ErrEmptyLead = errors.New("lead text must not be empty")

// Agent runs the generation pipeline: validate, complete, post-process.
type Agent struct {
	llm LLMClient
}

func NewAgent(llm LLMClient) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Agent{llm: llm}, nil
}

// Generate produces the Project Folder for one request.
func (a *Agent) Generate(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.LeadText) == "" {
		return "", ErrEmptyLead
	}
	if err := req.Normalize(); err != nil {
		return "", err
	}

	raw, err := a.llm.Complete(ctx, req.Model, BuildPrompt(req))
	if err != nil {
		return "", fmt.Errorf("llm: %w", err)
	}
	return PostProcess(raw), nil
}
