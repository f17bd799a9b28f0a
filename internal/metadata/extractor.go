package metadata

import (
	"errors"
	"strings"

	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// ErrNoMetadata is returned when a document does not start with a metadata block.
var ErrNoMetadata = errors.New("no metadata block found")

const (
	blockOpen  = "<!--"
	blockClose = "-->"
	keyDelim   = ":"
	byteOrder  = "\ufeff"
)

// Extract parses the metadata block at the start of a rule document.
//
// Algorithm:
//  1. Skip a UTF-8 byte order mark, if any
//  2. Require the comment opener at position zero
//  3. Take everything up to the first closer as the block body
//  4. Parse body lines as key/value pairs and continuations
//
// Returns:
//   - rulesync.Record: the parsed fields (non-nil, possibly empty)
//   - error: ErrNoMetadata if the document has no leading block, or a
//     *MetadataError wrapping ErrNoMetadata if the block is never closed
func Extract(content string) (rulesync.Record, error) {
	content = strings.TrimPrefix(content, byteOrder)
	if !strings.HasPrefix(content, blockOpen) {
		return nil, ErrNoMetadata
	}

	rest := content[len(blockOpen):]
	end := strings.Index(rest, blockClose)
	if end < 0 {
		return nil, &MetadataError{
			Message: "metadata block is opened but never closed",
			Hint:    "Terminate the leading comment with \"-->\" before the document body.",
			Err:     ErrNoMetadata,
		}
	}

	return parseBlock(rest[:end]), nil
}

// parseBlock interprets a block body line by line.
func parseBlock(body string) rulesync.Record {
	record := rulesync.Record{}
	currentKey := ""
	haveKey := false

	for _, line := range strings.Split(body, "\n") {
		if key, value, ok := strings.Cut(line, keyDelim); ok {
			currentKey = strings.TrimSpace(key)
			haveKey = true
			record[currentKey] = strings.TrimSpace(value)
			continue
		}

		text := strings.TrimSpace(line)
		if text == "" || !haveKey {
			continue
		}
		record[currentKey] += " " + text
	}

	return record
}
