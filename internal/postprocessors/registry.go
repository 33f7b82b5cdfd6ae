package postprocessors

import (
	"fmt"
	"sort"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.PostProcessorRegistry = (*Registry)(nil)

// Registry maps processor names to implementations.
type Registry struct {
	processors map[string]driven.PostProcessor
}

// NewRegistry creates a new processor registry.
func NewRegistry() *Registry {
	return &Registry{processors: make(map[string]driven.PostProcessor)}
}

// Register adds a processor under its own name.
func (r *Registry) Register(p driven.PostProcessor) {
	r.processors[p.Name()] = p
}

// Get returns the processor registered under name.
// Returns domain.ErrUnknownProcessor if no processor matches.
func (r *Registry) Get(name string) (driven.PostProcessor, error) {
	p, ok := r.processors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProcessor, name)
	}
	return p, nil
}

// Has returns true if a processor with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.processors[name]
	return ok
}

// Names returns all registered processor names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pipeline builds a pipeline from the named processors, in order.
func (r *Registry) Pipeline(names ...string) (driven.PostProcessorPipeline, error) {
	pipeline := NewPipeline()
	for _, name := range names {
		p, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		pipeline.Add(p)
	}
	return pipeline, nil
}

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation.
func RegisterDefaults(r *Registry) {
	r.Register(NewSanitizer())
}

// NewDefaultRegistry returns a registry with all built-in processors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}
