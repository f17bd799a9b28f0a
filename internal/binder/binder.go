package binder

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/rulesync/internal/checksum"
	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/pkg/rulesync"
)

const defaultOutputPerm fs.FileMode = 0644

// Target is one template → output pair together with its rendered block.
type Target struct {
	Name         string
	TemplatePath string
	OutputPath   string
	Marker       string
	Block        string
}

// Document is a bound template ready to be written to its output.
type Document struct {
	Target  Target
	Content []byte

	// Checksum is the SHA-256 of Content as written.
	Checksum string

	// Substituted is false when the marker was absent from the template.
	Substituted bool
}

// Binder loads templates and commits bound documents.
// Not safe for concurrent use.
type Binder struct {
	fsProvider filesystem.FileSystemProvider
	calculator checksum.Calculator
	stageName  func(output string) string
}

// NewBinder creates a binder over the OS filesystem.
func NewBinder() *Binder {
	return NewBinderWithFS(filesystem.NewOSFileSystem())
}

// NewBinderWithFS creates a binder with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewBinderWithFS(fsProvider filesystem.FileSystemProvider) *Binder {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Binder{
		fsProvider: fsProvider,
		calculator: checksum.New(),
		stageName:  stagePath,
	}
}

// stagePath returns a hidden, uniquely named sibling of output.
func stagePath(output string) string {
	dir, base := filepath.Split(output)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// Bind replaces the first occurrence of marker in template with block.
// A template without the marker is returned unchanged.
func Bind(template, marker, block string) (string, bool) {
	if marker == "" || !strings.Contains(template, marker) {
		return template, false
	}
	return strings.Replace(template, marker, block, 1), true
}

// Prepare loads and binds every target's template. The first template that
// does not exist aborts with a *rulesync.TemplateNotFoundError; later
// targets are not attempted.
func (b *Binder) Prepare(targets []Target) ([]Document, error) {
	docs := make([]Document, 0, len(targets))
	for _, t := range targets {
		data, err := b.fsProvider.ReadFile(t.TemplatePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, &rulesync.TemplateNotFoundError{Path: t.TemplatePath, Err: err}
			}
			return nil, fmt.Errorf("failed to read template %s: %w", t.TemplatePath, err)
		}

		content, substituted := Bind(string(data), t.Marker, t.Block)
		docs = append(docs, Document{
			Target:      t,
			Content:     []byte(content),
			Checksum:    b.calculator.CalculateRaw([]byte(content)),
			Substituted: substituted,
		})
	}
	return docs, nil
}

// Commit writes every document to its output path. All documents are first
// staged beside their outputs; if any staging write fails the staged files
// are removed and no output is modified.
func (b *Binder) Commit(docs []Document) error {
	staged := make([]string, 0, len(docs))
	cleanup := func(paths []string) {
		for _, p := range paths {
			_ = b.fsProvider.Remove(p) // best-effort cleanup
		}
	}

	for _, doc := range docs {
		out := doc.Target.OutputPath
		tmp := b.stageName(out)
		if err := b.fsProvider.WriteFile(tmp, doc.Content, b.outputPerm(out)); err != nil {
			cleanup(staged)
			return fmt.Errorf("failed to stage %s: %w", out, err)
		}
		staged = append(staged, tmp)
	}

	for i, doc := range docs {
		if err := b.fsProvider.Rename(staged[i], doc.Target.OutputPath); err != nil {
			cleanup(staged[i:])
			return fmt.Errorf("failed to replace %s (%d of %d outputs already updated): %w",
				doc.Target.OutputPath, i, len(docs), err)
		}
	}

	return nil
}

// outputPerm keeps the mode of an existing output.
func (b *Binder) outputPerm(out string) fs.FileMode {
	info, err := b.fsProvider.Stat(out)
	if err != nil || info.IsDir() {
		return defaultOutputPerm
	}
	return info.Mode().Perm()
}

// Stale returns the output paths whose current content differs from the
// bound document. A missing output is stale.
func (b *Binder) Stale(docs []Document) ([]string, error) {
	var stale []string
	for _, doc := range docs {
		current, err := b.fsProvider.ReadFile(doc.Target.OutputPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				stale = append(stale, doc.Target.OutputPath)
				continue
			}
			return nil, fmt.Errorf("failed to read output %s: %w", doc.Target.OutputPath, err)
		}
		if !b.calculator.Equal(current, doc.Content) {
			stale = append(stale, doc.Target.OutputPath)
		}
	}
	return stale, nil
}
