// Package tokenizer builds the document tree straight from the token
// stream. It is the fastest backend and keeps the markup exactly as
// written: no implied html/head/body elements, stray end tags ignored.
// Fragments stay fragments.
package tokenizer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Name is the identifier this backend registers under.
const Name = "tokenizer"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// voidElements have no content and never go on the open-element stack.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// Parser is the streaming token backend.
type Parser struct{}

// New creates a new tokenizer parser.
func New() *Parser {
	return &Parser{}
}

// Name returns the backend identifier.
func (p *Parser) Name() string {
	return Name
}

// Traits returns the backend's trade-off summary.
func (p *Parser) Traits() string {
	return "fastest; keeps markup as written (no implied elements); tolerates stray end tags"
}

// Parse builds a tree from the token stream with an open-element stack.
// End tags that match no open element are dropped; elements left open at
// EOF are closed implicitly.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*html.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := &html.Node{Type: html.DocumentNode}
	stack := []*html.Node{root}
	z := html.NewTokenizer(r)

	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) {
				return root, nil
			}
			return nil, fmt.Errorf("tokenizing html: %w", err)

		case html.TextToken:
			stack[len(stack)-1].AppendChild(&html.Node{
				Type: html.TextNode,
				Data: string(z.Text()),
			})

		case html.StartTagToken:
			n := elementNode(z.Token())
			stack[len(stack)-1].AppendChild(n)
			if !voidElements[n.Data] {
				stack = append(stack, n)
			}

		case html.SelfClosingTagToken:
			stack[len(stack)-1].AppendChild(elementNode(z.Token()))

		case html.EndTagToken:
			name, _ := z.TagName()
			stack = popTo(stack, string(name))

		case html.CommentToken:
			stack[len(stack)-1].AppendChild(&html.Node{
				Type: html.CommentNode,
				Data: string(z.Text()),
			})

		case html.DoctypeToken:
			stack[len(stack)-1].AppendChild(&html.Node{
				Type: html.DoctypeNode,
				Data: string(z.Text()),
			})
		}
	}
}

// elementNode converts a start tag token into an element node.
// The tokenizer has already lower-cased the tag and attribute names.
func elementNode(tok html.Token) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tok.Data,
		DataAtom: tok.DataAtom,
		Attr:     tok.Attr,
	}
}

// popTo closes elements up to and including the nearest open element named
// name. A stray end tag with no matching open element leaves the stack
// untouched. The root is never popped.
func popTo(stack []*html.Node, name string) []*html.Node {
	for i := len(stack) - 1; i > 0; i-- {
		if stack[i].Data == name {
			return stack[:i]
		}
	}
	return stack
}
