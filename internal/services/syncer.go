// Package services sequences a rulesync run: collect, validate, render, bind
// and write.
package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vvka-141/rulesync/internal/binder"
	"github.com/vvka-141/rulesync/internal/config"
	"github.com/vvka-141/rulesync/internal/files/filesystem"
	"github.com/vvka-141/rulesync/internal/files/scanner"
	"github.com/vvka-141/rulesync/internal/render"
	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// SyncService regenerates the categorized README and the flat index from
// the rule documents in one directory.
// Thread-Safety: NOT safe for concurrent Sync() calls on the same instance.
type SyncService struct {
	logger       rulesync.Logger
	fsProvider   filesystem.FileSystemProvider
	newCollector func(cfg *config.Config) rulesync.Collector
}

// NewSyncService creates a SyncService with all dependencies injected.
// Panics on nil dependencies.
func NewSyncService(logger rulesync.Logger, fsProvider filesystem.FileSystemProvider) *SyncService {
	if logger == nil {
		panic("logger cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	svc := &SyncService{
		logger:     logger,
		fsProvider: fsProvider,
	}
	svc.newCollector = svc.defaultCollector
	return svc
}

func (s *SyncService) defaultCollector(cfg *config.Config) rulesync.Collector {
	return scanner.NewScannerWithFS(scanner.Rules{
		Suffix:   cfg.RuleSuffix,
		Reserved: cfg.ReservedNames(),
		Required: cfg.RequiredFields,
	}, s.fsProvider)
}

// Sync runs the full pipeline and writes both outputs.
//
// Returns:
//   - *rulesync.ValidationFailedError if any rule document is invalid; nothing is written
//   - *rulesync.TemplateNotFoundError if a template is missing; nothing is written
func (s *SyncService) Sync(ctx context.Context, cfg *config.Config) (rulesync.SyncResult, error) {
	scanned, docs, b, err := s.prepare(ctx, cfg)
	if err != nil {
		return rulesync.SyncResult{Scanned: scanned}, err
	}

	if err := ctx.Err(); err != nil {
		return rulesync.SyncResult{Scanned: scanned}, err
	}

	if err := b.Commit(docs); err != nil {
		return rulesync.SyncResult{Scanned: scanned}, fmt.Errorf("failed to write outputs: %w", err)
	}

	result := rulesync.SyncResult{Scanned: scanned}
	for _, doc := range docs {
		s.logger.Info("Generated %s", s.displayPath(cfg, doc.Target.OutputPath))
		s.logger.Verbose("%s sha256 %s", s.displayPath(cfg, doc.Target.OutputPath), doc.Checksum)
		result.Written = append(result.Written, doc.Target.OutputPath)
	}
	return result, nil
}

// Check runs the pipeline without writing and reports outputs that differ
// from what Sync would produce. Stale outputs yield an error wrapping
// rulesync.ErrOutputStale.
func (s *SyncService) Check(ctx context.Context, cfg *config.Config) (rulesync.CheckResult, error) {
	scanned, docs, b, err := s.prepare(ctx, cfg)
	if err != nil {
		return rulesync.CheckResult{Scanned: scanned}, err
	}

	stale, err := b.Stale(docs)
	if err != nil {
		return rulesync.CheckResult{Scanned: scanned}, err
	}

	result := rulesync.CheckResult{Scanned: scanned, Stale: stale}
	if len(stale) > 0 {
		for _, p := range stale {
			s.logger.Error("Out of date: %s", s.displayPath(cfg, p))
		}
		return result, fmt.Errorf("%d output(s) need regenerating: %w", len(stale), rulesync.ErrOutputStale)
	}

	s.logger.Info("Generated files are up to date.")
	return result, nil
}

// prepare collects, validates, renders and binds everything in memory.
func (s *SyncService) prepare(ctx context.Context, cfg *config.Config) (int, []binder.Document, *binder.Binder, error) {
	if cfg == nil {
		return 0, nil, nil, fmt.Errorf("config is required: %w", rulesync.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return 0, nil, nil, err
	}

	collected, err := s.newCollector(cfg).Collect(cfg.RulesDir)
	if err != nil {
		return 0, nil, nil, err
	}
	s.logger.Info("Scanning %d rule files...", collected.Scanned)

	if !collected.Valid() {
		return collected.Scanned, nil, nil, &rulesync.ValidationFailedError{Errors: collected.Errors}
	}
	s.logger.Info("All files validated successfully.")

	if err := ctx.Err(); err != nil {
		return collected.Scanned, nil, nil, err
	}

	categorized := render.Categorized(collected.Records)
	index := render.Index(collected.Records)
	s.logger.Verbose("Rendered %d record(s) in %d categories", len(collected.Records), len(render.GroupByCategory(collected.Records)))

	targets := []binder.Target{
		{
			Name:         "readme",
			TemplatePath: cfg.TemplatePath(cfg.Readme),
			OutputPath:   cfg.OutputPath(cfg.Readme),
			Marker:       cfg.Readme.Marker,
			Block:        categorized,
		},
		{
			Name:         "index",
			TemplatePath: cfg.TemplatePath(cfg.Index),
			OutputPath:   cfg.OutputPath(cfg.Index),
			Marker:       cfg.Index.Marker,
			Block:        index,
		},
	}

	b := binder.NewBinderWithFS(s.fsProvider)
	docs, err := b.Prepare(targets)
	if err != nil {
		return collected.Scanned, nil, nil, err
	}
	for _, doc := range docs {
		if !doc.Substituted {
			s.logger.Verbose("Marker %s not found in %s; template copied unchanged",
				doc.Target.Marker, s.displayPath(cfg, doc.Target.TemplatePath))
		}
	}

	return collected.Scanned, docs, b, nil
}

// displayPath shortens p relative to the rules directory when possible.
func (s *SyncService) displayPath(cfg *config.Config, p string) string {
	rel, err := filepath.Rel(cfg.RulesDir, p)
	if err != nil {
		return p
	}
	return rel
}
