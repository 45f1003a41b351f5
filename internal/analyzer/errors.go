package analyzer

import "errors"

var (
	// ErrEmptyInput means the caller supplied blank content.
	ErrEmptyInput = errors.New("chat content cannot be empty")

	// ErrNoValidMessages means the content was non-empty but no line matched
	// the message pattern.
	ErrNoValidMessages = errors.New("no valid chat messages found in the provided content")

	// ErrAnalysisFailed wraps any unexpected fault after parsing succeeded.
	ErrAnalysisFailed = errors.New("failed to analyze chat content")
)
