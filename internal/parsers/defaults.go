package parsers

import (
	"github.com/open-technology-foundation/deltags/internal/parsers/html5"
	"github.com/open-technology-foundation/deltags/internal/parsers/strict"
	"github.com/open-technology-foundation/deltags/internal/parsers/tokenizer"
)

// DefaultParser is the backend used when no identifier is given.
const DefaultParser = html5.Name

// RegisterDefaults registers all built-in backends with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(html5.New())
	r.Register(tokenizer.New())
	r.Register(strict.New())
}

// NewDefaultRegistry returns a registry with all built-in backends.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
