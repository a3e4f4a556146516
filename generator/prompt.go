package generator

import (
	"fmt"
	"strings"
)

var toneGuidance = map[Tone]string{
	TonePremium:      "Write in an upscale, high-end register. Emphasize craftsmanship, exclusivity, and long-term value.",
	ToneProfessional: "Write in a clear, businesslike register. Direct, structured, no fluff.",
	ToneFriendly:     "Write in a warm, approachable register. Plain language, first person, encouraging.",
	ToneConcise:      "Keep every section as short as it can be while staying complete. Prefer bullet points over prose.",
}

// BuildPrompt wraps raw lead text in the fixed Project Folder instruction
// template.
func BuildPrompt(req Request) Prompt {
	var sb strings.Builder
	sb.WriteString("You are a senior project consultant. From a raw, unstructured sales lead you produce one complete Markdown document called the Project Folder.\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Output Markdown only, no surrounding explanation and no code fences around the whole reply.\n")
	sb.WriteString("- The document must contain exactly these top-level numbered sections, in this order:\n")
	sb.WriteString("  ## 1. Project Overview\n")
	sb.WriteString("  ## 2. Final Project Brief\n")
	sb.WriteString("  ## 3. Proposal\n")
	sb.WriteString("  ## 4. Mini-Spec\n")
	sb.WriteString("- Fill gaps in the lead with clearly-marked assumptions instead of asking questions.\n")
	if g, ok := toneGuidance[req.Tone]; ok {
		sb.WriteString("- " + g + "\n")
	}

	user := fmt.Sprintf("Lead:\n%s\n\nProduce the complete Project Folder now.", req.LeadText)

	return Prompt{
		System: sb.String(),
		User:   user,
	}
}
