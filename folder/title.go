package folder

import "strings"

// UntitledLead is the history label for leads with no usable title line.
const UntitledLead = "Untitled lead"

const leadNamePrefix = "lead name:"

// DeriveTitle produces a short history label from raw lead text: the value
// of a "Lead Name:" line when one exists, otherwise the first non-empty line.
func DeriveTitle(leadText string) string {
	first := ""
	for _, raw := range strings.Split(leadText, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if first == "" {
			first = line
		}
		if len(line) >= len(leadNamePrefix) && strings.EqualFold(line[:len(leadNamePrefix)], leadNamePrefix) {
			rest := strings.TrimSpace(line[len(leadNamePrefix):])
			if rest == "" {
				return UntitledLead
			}
			return rest
		}
	}
	if first == "" {
		return UntitledLead
	}
	return first
}
