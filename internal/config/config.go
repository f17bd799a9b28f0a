// Package config holds the paths, markers and field rules for one rulesync run.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/rulesync/pkg/rulesync"
)

// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// TargetConfig describes one template → output pair.
type TargetConfig struct {
	// Template is relative to TemplatesDir.
	Template string `yaml:"template"`
	// Output is relative to the rules directory.
	Output string `yaml:"output"`
	// Marker is replaced once by the rendered table.
	Marker string `yaml:"marker"`
}

// Config is built once at startup and passed to every component.
type Config struct {
	// RulesDir is the directory scanned for rule documents. Not read from YAML.
	RulesDir string `yaml:"-"`

	RuleSuffix   string       `yaml:"rule_suffix"`
	TemplatesDir string       `yaml:"templates_dir"`
	Readme       TargetConfig `yaml:"readme"`
	Index        TargetConfig `yaml:"index"`

	// RequiredFields is fixed and cannot be overridden from YAML.
	RequiredFields []string `yaml:"-"`
}

// Default returns the stock configuration for rulesDir.
func Default(rulesDir string) *Config {
	return &Config{
		RulesDir:     rulesDir,
		RuleSuffix:   rulesync.DefaultRuleSuffix,
		TemplatesDir: rulesync.DefaultTemplatesDir,
		Readme: TargetConfig{
			Template: rulesync.ReadmeTemplate,
			Output:   rulesync.ReadmeOutput,
			Marker:   rulesync.ReadmeMarker,
		},
		Index: TargetConfig{
			Template: rulesync.IndexTemplate,
			Output:   rulesync.IndexOutput,
			Marker:   rulesync.IndexMarker,
		},
		RequiredFields: append([]string(nil), rulesync.RequiredFields...),
	}
}

// Load returns the defaults for rulesDir overlaid with a YAML config file.
// With an empty configPath, rulesync.yaml in rulesDir is used if present.
// An explicit configPath that does not exist yields ErrConfigNotFound.
func Load(rulesDir, configPath string) (*Config, error) {
	cfg := Default(rulesDir)

	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(rulesDir, rulesync.DefaultConfigFileName)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
			}
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %v: %w", configPath, err, rulesync.ErrInvalidConfig)
	}
	return cfg, nil
}

// Validate checks that every path and marker is set and the outputs differ.
// It returns a multi-error if multiple validation failures occur.
func (c *Config) Validate() error {
	var errs []error

	if c.RulesDir == "" {
		errs = append(errs, fmt.Errorf("rules directory is required: %w", rulesync.ErrInvalidConfig))
	}
	if c.RuleSuffix == "" {
		errs = append(errs, fmt.Errorf("rule_suffix is required: %w", rulesync.ErrInvalidConfig))
	}
	if len(c.RequiredFields) == 0 {
		errs = append(errs, fmt.Errorf("required fields cannot be empty: %w", rulesync.ErrInvalidConfig))
	}

	for name, t := range map[string]TargetConfig{"readme": c.Readme, "index": c.Index} {
		if t.Template == "" {
			errs = append(errs, fmt.Errorf("%s.template is required: %w", name, rulesync.ErrInvalidConfig))
		}
		if t.Output == "" {
			errs = append(errs, fmt.Errorf("%s.output is required: %w", name, rulesync.ErrInvalidConfig))
		}
		if t.Marker == "" {
			errs = append(errs, fmt.Errorf("%s.marker is required: %w", name, rulesync.ErrInvalidConfig))
		}
	}

	if c.Readme.Output != "" && filepath.Clean(c.Readme.Output) == filepath.Clean(c.Index.Output) {
		errs = append(errs, fmt.Errorf("readme and index outputs must differ: %w", rulesync.ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// TemplatePath resolves a target's template against the rules directory.
func (c *Config) TemplatePath(t TargetConfig) string {
	if filepath.IsAbs(t.Template) {
		return t.Template
	}
	return filepath.Join(c.RulesDir, c.TemplatesDir, t.Template)
}

// OutputPath resolves a target's output against the rules directory.
func (c *Config) OutputPath(t TargetConfig) string {
	if filepath.IsAbs(t.Output) {
		return t.Output
	}
	return filepath.Join(c.RulesDir, t.Output)
}

// ReservedNames are the output basenames, which the collector never treats
// as rule documents.
func (c *Config) ReservedNames() []string {
	return []string{filepath.Base(c.Readme.Output), filepath.Base(c.Index.Output)}
}
