package domain

import (
	"strings"

	"golang.org/x/net/html"
)

// TextContent returns the concatenated text of n and all its descendants.
// Comment data is not text and is excluded.
func TextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// attrsContain reports whether any attribute value of n contains s.
func attrsContain(n *html.Node, s string) bool {
	for _, a := range n.Attr {
		if strings.Contains(a.Val, s) {
			return true
		}
	}
	return false
}
