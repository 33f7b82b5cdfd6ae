package domain

import "errors"

// Domain errors represent rule and configuration failures.
// Parser and I/O errors propagate unchanged from their collaborators.
var (
	// ErrInvalidRule indicates a keyword-deletion rule without a tag name.
	// Raised while the rule set is built, never mid-filter.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidSelector indicates a CSS selector that failed to compile.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrUnknownParser indicates a parser identifier with no registered backend.
	ErrUnknownParser = errors.New("unknown parser")

	// ErrUnknownProcessor indicates a post-processor name with no implementation.
	ErrUnknownProcessor = errors.New("unknown post-processor")

	// ErrInvalidInput indicates malformed or missing input.
	ErrInvalidInput = errors.New("invalid input")
)
