// Package strict parses documents with the standard library's XML decoder
// in HTML mode. It is the only backend with no third-party dependencies
// and the least forgiving: structurally broken markup (mismatched or
// unclosed non-void tags) is an error rather than something to repair.
package strict

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Name is the identifier this backend registers under.
const Name = "strict"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser is the strict XML-decoder backend.
type Parser struct{}

// New creates a new strict parser.
func New() *Parser {
	return &Parser{}
}

// Name returns the backend identifier.
func (p *Parser) Name() string {
	return Name
}

// Traits returns the backend's trade-off summary.
func (p *Parser) Traits() string {
	return "dependency-free; rejects mismatched or unclosed tags instead of repairing them"
}

// Parse builds a tree from XML decoder tokens. HTML entities and
// auto-closing void elements are understood; anything else malformed
// fails the parse.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*html.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(r)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	root := &html.Node{Type: html.DocumentNode}
	stack := []*html.Node{root}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing html: %w", err)
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			n := &html.Node{
				Type: html.ElementNode,
				Data: strings.ToLower(t.Name.Local),
			}
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, html.Attribute{
					Key: strings.ToLower(a.Name.Local),
					Val: a.Value,
				})
			}
			top.AppendChild(n)
			stack = append(stack, n)

		case xml.EndElement:
			if len(stack) == 1 {
				return nil, fmt.Errorf("parsing html: unexpected end tag </%s>", t.Name.Local)
			}
			stack = stack[:len(stack)-1]

		case xml.CharData:
			top.AppendChild(&html.Node{Type: html.TextNode, Data: string(t)})

		case xml.Comment:
			top.AppendChild(&html.Node{Type: html.CommentNode, Data: string(t)})

		case xml.Directive:
			if d, ok := doctype(string(t)); ok {
				top.AppendChild(&html.Node{Type: html.DoctypeNode, Data: d})
			}
		}
	}

	if len(stack) > 1 {
		return nil, fmt.Errorf("parsing html: unclosed element <%s>", stack[len(stack)-1].Data)
	}
	return root, nil
}

// doctype extracts the doctype name from a <!DOCTYPE ...> directive.
func doctype(directive string) (string, bool) {
	const prefix = "DOCTYPE"
	if len(directive) < len(prefix) || !strings.EqualFold(directive[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(directive[len(prefix):]), true
}
