package mcp

import (
	"github.com/open-technology-foundation/deltags/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Detag runs the filtering pipeline.
	Detag driving.DetagService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Detag == nil {
		return ErrMissingDetagService
	}
	return nil
}
