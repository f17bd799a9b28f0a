package scanner

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/internal/metadata"
	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// Rules selects and validates candidate documents.
type Rules struct {
	// Suffix is the filename suffix of rule documents, e.g. "-rules.md".
	Suffix string

	// Reserved names are never treated as rule documents even when they
	// match Suffix. These are the generated outputs.
	Reserved []string

	// Required lists the metadata keys every document must declare.
	Required []string
}

// Scanner discovers rule documents in a single directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	rules      Rules
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new scanner over the OS filesystem.
// Panics if rules.Suffix is empty.
func NewScanner(rules Rules) *Scanner {
	return NewScannerWithFS(rules, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if rules.Suffix is empty or fsProvider is nil.
func NewScannerWithFS(rules Rules, fsProvider filesystem.FileSystemProvider) *Scanner {
	if rules.Suffix == "" {
		panic("rule suffix cannot be empty")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		rules:      rules,
		fsProvider: fsProvider,
	}
}

// Collect lists dir, reads every candidate and partitions the results into
// valid records and validation errors. Only a failure to list dir itself is
// returned as an error; per-document problems end up in the result.
//
// Records and errors are ordered by filename.
func (s *Scanner) Collect(dir string) (rulesync.CollectResult, error) {
	candidates, err := s.Candidates(dir)
	if err != nil {
		return rulesync.CollectResult{}, err
	}

	result := rulesync.CollectResult{Scanned: len(candidates)}
	for _, name := range candidates {
		record, verr := s.processFile(dir, name)
		if verr != nil {
			result.Errors = append(result.Errors, *verr)
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// Candidates returns the sorted names of rule documents in dir.
func (s *Scanner) Candidates(dir string) ([]string, error) {
	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, s.rules.Suffix) {
			continue
		}
		if slices.Contains(s.rules.Reserved, name) {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// processFile reads one document and returns either its record (with the
// filename attached) or a validation error.
func (s *Scanner) processFile(dir, name string) (rulesync.Record, *rulesync.ValidationError) {
	content, err := s.fsProvider.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return nil, &rulesync.ValidationError{
			File:    name,
			Missing: []string{rulesync.ReadErrorPrefix + err.Error()},
		}
	}

	record, err := metadata.Extract(string(content))
	if err != nil {
		verr := &rulesync.ValidationError{
			File:    name,
			Missing: []string{rulesync.MissingMetadataBlock},
			Hint:    "Start the file with a <!-- ... --> block declaring " + strings.Join(s.rules.Required, ", ") + ".",
		}
		var metaErr *metadata.MetadataError
		if errors.As(err, &metaErr) {
			verr.Hint = metaErr.Hint
		}
		return nil, verr
	}

	if result := metadata.Validate(record, s.rules.Required); result.HasErrors() {
		return nil, &rulesync.ValidationError{
			File:    name,
			Missing: result.Missing,
		}
	}

	record[rulesync.FieldFilename] = name
	return record, nil
}

// Verify Scanner implements the interface at compile time
var _ rulesync.Collector = (*Scanner)(nil)
