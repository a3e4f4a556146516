package generator

import "strings"

// FallbackFolder substitutes for an empty model reply. It is a valid result,
// not an error.
const FallbackFolder = "No project folder returned."

// PostProcess normalizes a raw model reply into the Project Folder text.
func PostProcess(raw string) string {
	md := unwrapFence(strings.TrimSpace(raw))
	if md == "" {
		return FallbackFolder
	}
	return md
}

// unwrapFence strips a code fence wrapping the entire reply, a common model
// quirk. Fences inside the document are left alone.
func unwrapFence(md string) string {
	if !strings.HasPrefix(md, "```") || !strings.HasSuffix(md, "```") {
		return md
	}
	first := strings.Index(md, "\n")
	last := strings.LastIndex(md, "\n")
	if first == -1 || last <= first {
		return md
	}
	// Opening line must be the fence plus an optional language tag.
	if strings.ContainsAny(md[3:first], " `") {
		return md
	}
	if strings.TrimSpace(md[last:]) != "```" {
		return md
	}
	return strings.TrimSpace(md[first+1 : last])
}
