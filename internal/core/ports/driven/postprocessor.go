package driven

import "context"

// PostProcessor rewrites serialized HTML after filtering.
// Processors are chained in a pipeline and run in order.
type PostProcessor interface {
	// Name returns the processor name for selection and logging.
	Name() string

	// Process transforms the serialized document and returns the result.
	Process(ctx context.Context, doc string) (string, error)
}

// PostProcessorPipeline chains multiple PostProcessors.
type PostProcessorPipeline interface {
	// Process runs the document through all processors in order.
	Process(ctx context.Context, doc string) (string, error)
}

// PostProcessorRegistry resolves processors by name.
type PostProcessorRegistry interface {
	// Get returns the processor registered under name.
	// Returns domain.ErrUnknownProcessor if no processor matches.
	Get(name string) (PostProcessor, error)

	// Has returns true if a processor with the given name is registered.
	Has(name string) bool

	// Names returns all registered processor names, sorted.
	Names() []string

	// Pipeline builds a pipeline from the named processors, in order.
	Pipeline(names ...string) (PostProcessorPipeline, error)
}
