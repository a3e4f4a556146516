package folder

import (
	"regexp"
	"strings"
)

// Section keys used by the UI tab bar and the generate response.
const (
	KeyAll      = "all"
	KeyOverview = "overview"
	KeyBrief    = "brief"
	KeyProposal = "proposal"
	KeyMiniSpec = "miniSpec"
)

// SectionMap is a labeled view over one Project Folder document. All always
// holds the input verbatim; the named sections are empty when the matching
// heading is absent.
type SectionMap struct {
	All      string `json:"all"`
	Overview string `json:"overview"`
	Brief    string `json:"brief"`
	Proposal string `json:"proposal"`
	MiniSpec string `json:"miniSpec"`
}

// Top-level numbered heading, e.g. "## 1. Project Overview".
var headingRe = regexp.MustCompile(`(?m)^##\s*\d+\.\s*(.+)$`)

// Segment carves a Project Folder into its named sections. Each heading's
// span runs from the heading line to the start of the next numbered heading
// (or end of document) and is assigned by a case-insensitive phrase match on
// the heading title. When two headings match the same phrase the later one
// wins. A document with no numbered headings yields only All.
func Segment(markdown string) SectionMap {
	out := SectionMap{All: markdown}

	matches := headingRe.FindAllStringSubmatchIndex(markdown, -1)
	for i, m := range matches {
		end := len(markdown)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		span := strings.TrimSpace(markdown[m[0]:end])
		title := strings.ToLower(markdown[m[2]:m[3]])

		switch {
		case strings.Contains(title, "project overview"):
			out.Overview = span
		case strings.Contains(title, "final project brief"):
			out.Brief = span
		case strings.Contains(title, "proposal"):
			out.Proposal = span
		case strings.Contains(title, "mini-spec") || strings.Contains(title, "mini spec"):
			out.MiniSpec = span
		}
	}
	return out
}

// GetOrAll returns the section for key, falling back to the full document
// when that section is empty or the key is unknown. The UI never shows an
// empty pane.
func (s SectionMap) GetOrAll(key string) string {
	if v := s.get(key); v != "" {
		return v
	}
	return s.All
}

func (s SectionMap) get(key string) string {
	switch key {
	case KeyAll:
		return s.All
	case KeyOverview:
		return s.Overview
	case KeyBrief:
		return s.Brief
	case KeyProposal:
		return s.Proposal
	case KeyMiniSpec:
		return s.MiniSpec
	}
	return ""
}
