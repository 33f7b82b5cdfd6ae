package driven

import (
	"context"
	"io"

	"golang.org/x/net/html"
)

// Parser turns raw HTML into a document tree. Implementations trade speed,
// error tolerance, and standards conformance against each other; the filter
// never branches on which backend produced the tree.
type Parser interface {
	// Name returns the identifier used to select this backend.
	Name() string

	// Traits returns a one-line summary of the backend's trade-offs,
	// shown in help output.
	Traits() string

	// Parse reads a whole document and returns its root node.
	// The root is always a document node owning the parsed content.
	Parse(ctx context.Context, r io.Reader) (*html.Node, error)
}

// ParserRegistry resolves parser backends by identifier.
type ParserRegistry interface {
	// Get returns the backend registered under name.
	// Returns domain.ErrUnknownParser if no backend matches.
	Get(name string) (Parser, error)

	// Register adds a backend to the registry, replacing any backend
	// previously registered under the same name.
	Register(p Parser)

	// Names returns all registered identifiers, sorted.
	Names() []string
}
