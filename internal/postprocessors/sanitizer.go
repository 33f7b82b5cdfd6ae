package postprocessors

import (
	"context"

	"github.com/microcosm-cc/bluemonday"

	"github.com/open-technology-foundation/deltags/internal/core/ports/driven"
)

// Ensure Sanitizer implements the interface.
var _ driven.PostProcessor = (*Sanitizer)(nil)

// Sanitizer strips markup the UGC policy disallows (event handlers,
// javascript: URLs, inline frames) from the serialized output. It runs
// only when explicitly requested; rule-based removal stays the filter's
// job.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a sanitizer with the user-generated-content policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Name returns the processor name.
func (s *Sanitizer) Name() string {
	return "sanitize"
}

// Process sanitizes the serialized document.
func (s *Sanitizer) Process(ctx context.Context, doc string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return s.policy.Sanitize(doc), nil
}
