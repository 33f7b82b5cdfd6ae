// Package postprocessors provides output rewriting implementations that run
// over the serialized HTML after filtering, such as sanitization.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Pipeline chains multiple PostProcessors and runs them in order.
type Pipeline struct {
	processors []driven.PostProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.PostProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the serialized document through all processors in order.
func (p *Pipeline) Process(ctx context.Context, doc string) (string, error) {
	for _, processor := range p.processors {
		var err error
		doc, err = processor.Process(ctx, doc)
		if err != nil {
			return "", fmt.Errorf("processor %s: %w", processor.Name(), err)
		}
	}
	return doc, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.PostProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}
