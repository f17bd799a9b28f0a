package rulesync

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	_, err := svc.Sync(ctx, cfg)
//	if errors.Is(err, rulesync.ErrValidationFailed) {
//	    // print the per-file report
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrValidationFailed indicates at least one rule document was rejected.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTemplateNotFound indicates a template file is absent.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrOutputStale indicates generated outputs differ from what a sync would write.
	ErrOutputStale = errors.New("generated outputs are stale")
)

// ValidationFailedError carries every per-file problem found in a run.
type ValidationFailedError struct {
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%d rule file(s) failed validation", len(e.Errors))
}

// Is lets errors.Is match ErrValidationFailed.
func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

// TemplateNotFoundError names the template that could not be loaded.
type TemplateNotFoundError struct {
	Path string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Path)
}

// Is lets errors.Is match ErrTemplateNotFound.
func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// usageErrorPatterns are prefixes of the errors cobra and pflag return for
// command-line misuse.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrValidationFailed):
		return ExitValidationFailed
	case errors.Is(err, ErrTemplateNotFound):
		return ExitTemplateMissing
	case errors.Is(err, ErrOutputStale):
		return ExitOutputStale
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.HasPrefix(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
