package filter

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Render writes the tree as minimized HTML: no inserted indentation or
// line breaks, double-quoted attribute values, void elements without
// closing tags, and `<`, `>`, `&` escaped in text (quotes in attribute
// values). Whitespace inside preserved text nodes is kept verbatim.
func Render(w io.Writer, root *html.Node) error {
	if root == nil {
		return nil
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	return nil
}

// RenderString renders the tree to a string. An empty tree yields an
// empty string, not an error.
func RenderString(root *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
