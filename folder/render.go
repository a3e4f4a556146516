package folder

import (
	"bytes"

	"github.com/yuin/goldmark"
)

// RenderHTML converts a Project Folder (or any markdown) to HTML for the
// preview pane.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
