package generator

import (
	"context"
	"strings"
)

// MockLLM is a deterministic stand-in for local runs and tests. It returns a
// canonical four-section Project Folder without calling any external model.
type MockLLM struct{}

func (MockLLM) Complete(_ context.Context, _ Model, prompt Prompt) (string, error) {
	var sb strings.Builder
	sb.WriteString("## 1. Project Overview\n\n")
	sb.WriteString("A placeholder project folder generated without an external model.\n\n")
	sb.WriteString("## 2. Final Project Brief\n\n")
	sb.WriteString("Brief derived from the submitted lead:\n\n")
	sb.WriteString("```\n")
	sb.WriteString(prompt.User)
	sb.WriteString("\n```\n\n")
	sb.WriteString("## 3. Proposal\n\n")
	sb.WriteString("- Scope, milestones, and pricing would appear here.\n\n")
	sb.WriteString("## 4. Mini-Spec\n\n")
	sb.WriteString("- Functional outline would appear here.\n")
	return sb.String(), nil
}
