// Package html5 parses documents the way a browser does: maximally
// tolerant of broken markup and conformant with the HTML5 parsing
// algorithm, including implied html/head/body elements. It is the slowest
// backend and the default.
package html5

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Name is the identifier this backend registers under.
const Name = "html5"

// Ensure Parser implements the interface.
var _ driven.Parser = (*Parser)(nil)

// Parser is the HTML5 tree-construction backend.
type Parser struct{}

// New creates a new html5 parser.
func New() *Parser {
	return &Parser{}
}

// Name returns the backend identifier.
func (p *Parser) Name() string {
	return Name
}

// Traits returns the backend's trade-off summary.
func (p *Parser) Traits() string {
	return "parses like a browser; most tolerant of broken markup; slowest (default)"
}

// Parse reads the document through charset detection and builds the tree
// with the HTML5 parsing algorithm.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (*html.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cr, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	root, err := html.Parse(cr)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return root, nil
}
