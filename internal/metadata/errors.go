package metadata

import "fmt"

// MetadataError represents a structured error with context and helpful hints.
type MetadataError struct {
	FilePath string // Path to the file with the error, if known
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
	Err      error  // Underlying cause
}

// Error implements the error interface with rich formatting.
func (e *MetadataError) Error() string {
	msg := "metadata error: " + e.Message
	if e.FilePath != "" {
		msg = fmt.Sprintf("metadata error in %s: %s", e.FilePath, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

func (e *MetadataError) Unwrap() error {
	return e.Err
}
