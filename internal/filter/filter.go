// Package filter walks a parsed document tree, removes every comment node
// and every element matched by the rule set together with its subtree, and
// serializes the remainder as minimized HTML.
package filter

import (
	"golang.org/x/net/html"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
)

// Strip removes, in document order, all comment nodes and all elements for
// which rules.Matches is true, each together with its whole subtree. The
// walk is top-down and never descends into a removed subtree, so every
// match decision sees the subtree exactly as the parser produced it. The
// root itself is never removed. Strip mutates the tree in place and cannot
// fail on a well-formed tree.
func Strip(root *html.Node, rules *domain.RuleSet) {
	if root == nil {
		return
	}
	for c := root.FirstChild; c != nil; {
		// The sibling link dies with the node, so grab it first.
		next := c.NextSibling
		switch {
		case c.Type == html.CommentNode:
			root.RemoveChild(c)
		case rules != nil && rules.Matches(c):
			root.RemoveChild(c)
		default:
			Strip(c, rules)
		}
		c = next
	}
}
