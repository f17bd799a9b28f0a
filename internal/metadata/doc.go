// Package metadata parses and validates the metadata block that leads every
// rule document.
//
// # Metadata Format
//
// Metadata is an HTML comment that must be the very first thing in the file:
//
//	<!--
//	title: Go Error Handling
//	description: How errors are wrapped, compared
//	  and reported across services.
//	category: Backend
//	-->
//	# Go Error Handling
//	...
//
// Each line containing a colon is split at the first colon into a key and a
// value, both trimmed. A non-blank line without a colon continues the value
// of the most recent key, joined by a single space. Blank lines are skipped.
//
// # Validation Rules
//
// Validate checks that the required keys are present. A key with an empty
// value counts as present.
//
// # Usage
//
//	rec, err := metadata.Extract(content)
//	if errors.Is(err, metadata.ErrNoMetadata) {
//	    // report "metadata_block"
//	}
//	result := metadata.Validate(rec, rulesync.RequiredFields)
//	if !result.Valid {
//	    // report result.Missing
//	}
package metadata
