package driving

import (
	"context"
	"io"

	"github.com/open-technology-foundation/deltags/internal/core/domain"
)

// Request describes one detagging invocation. The rule fields are merged
// into a single immutable rule set before any parsing happens; a bad rule
// aborts the whole request before output is produced.
type Request struct {
	// Input supplies the raw HTML document.
	Input io.Reader

	// Parser selects the backend by identifier. Empty uses the
	// configured default.
	Parser string

	// DeleteTags are by-name removal groups. Each entry may itself be a
	// comma-separated list, matching the repeatable -d flag.
	DeleteTags []string

	// KeywordRules remove elements whose text content contains a keyword.
	KeywordRules []domain.KeywordRule

	// Selectors remove every node matching a CSS selector.
	Selectors []string

	// MatchAttributes extends keyword matching to attribute values.
	MatchAttributes bool

	// PostProcessors names output processors to run over the serialized
	// HTML, in order.
	PostProcessors []string
}

// DetagService filters an HTML document and returns the minimized result.
type DetagService interface {
	// Detag runs the full pipeline: parse, strip comments and matching
	// subtrees, serialize, post-process. Nothing is emitted on error.
	Detag(ctx context.Context, req Request) (string, error)
}
