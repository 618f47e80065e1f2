// Package config provides configuration types and defaults for cryptowords.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/punctuation"
	"github.com/zjrosen/cryptowords/internal/runs/domain"
	"github.com/zjrosen/cryptowords/internal/tracing"
)

// Output formats accepted by OutputConfig.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// LocalConfigPath is the project-local config file, checked before the user config.
const LocalConfigPath = ".cryptowords/config.yaml"

// Config holds all configuration options for cryptowords.
type Config struct {
	Punctuation PunctuationConfig `mapstructure:"punctuation" yaml:"punctuation"`
	Registry    RegistryConfig    `mapstructure:"registry" yaml:"registry"`
	Output      OutputConfig      `mapstructure:"output" yaml:"output"`
	Storage     StorageConfig     `mapstructure:"storage" yaml:"storage"`
	Watch       WatchConfig       `mapstructure:"watch" yaml:"watch"`
	Tracing     tracing.Config    `mapstructure:"tracing" yaml:"tracing"`
	Debug       bool              `mapstructure:"debug" yaml:"debug"`
	LogFile     string            `mapstructure:"log_file" yaml:"log_file"`
}

// PunctuationConfig controls how tokens are cleaned and screened.
type PunctuationConfig struct {
	// Removable characters are stripped from tokens wherever they appear.
	Removable string `mapstructure:"removable" yaml:"removable"`

	// Structural characters disqualify a token ("don't", "well-known").
	Structural string `mapstructure:"structural" yaml:"structural"`

	// Cache memoizes classifier results per distinct token.
	Cache bool `mapstructure:"cache" yaml:"cache"`
}

// Classifier builds the punctuation classifier these settings describe.
func (p PunctuationConfig) Classifier() (punctuation.Classifier, error) {
	rules, err := punctuation.NewRules(p.Removable, p.Structural)
	if err != nil {
		return nil, err
	}
	if p.Cache {
		return punctuation.NewCached(rules), nil
	}
	return rules, nil
}

// RegistryConfig controls candidate ordering.
type RegistryConfig struct {
	LengthUnit domain.LengthUnit `mapstructure:"length_unit" yaml:"length_unit"` // "runes" (default) or "graphemes"
}

// OutputConfig controls how extraction results are rendered.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text" (default), "json" or "yaml"
}

// StorageConfig controls where saved runs live.
type StorageConfig struct {
	// Path to the runs database. Empty means DefaultDBPath().
	Path string `mapstructure:"path" yaml:"path"`
}

// DBPath returns the configured database path, falling back to the default.
func (s StorageConfig) DBPath() string {
	if s.Path != "" {
		return s.Path
	}
	return DefaultDBPath()
}

// WatchConfig controls the watch command.
type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// DefaultConfigDir returns ~/.config/cryptowords, or empty string if the
// home dir is unavailable.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "cryptowords")
}

// DefaultDBPath returns the default runs database path.
func DefaultDBPath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return filepath.Join(".cryptowords", "runs.db")
	}
	return filepath.Join(dir, "runs.db")
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/cryptowords/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	dir := DefaultConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Punctuation: PunctuationConfig{
			Removable:  punctuation.DefaultRemovable,
			Structural: punctuation.DefaultStructural,
			Cache:      true,
		},
		Registry: RegistryConfig{
			LengthUnit: domain.LengthUnitRunes,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if _, err := punctuation.NewRules(c.Punctuation.Removable, c.Punctuation.Structural); err != nil {
		return fmt.Errorf("punctuation: %w", err)
	}

	if c.Registry.LengthUnit != "" && !c.Registry.LengthUnit.IsValid() {
		return fmt.Errorf("registry.length_unit must be \"runes\" or \"graphemes\", got %q", c.Registry.LengthUnit)
	}

	if err := ValidateFormat(c.Output.Format); err != nil {
		return err
	}

	if c.Watch.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be positive, got %s", c.Watch.Debounce)
	}

	return ValidateTracing(c.Tracing)
}

// ValidateFormat checks an output format name. Empty means text.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("output.format must be \"text\", \"json\", or \"yaml\", got %q", format)
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if !tracing.ValidExporter(t.Exporter) {
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled && t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# cryptowords configuration

# Token cleaning
punctuation:
  # Stripped from tokens wherever they appear
  removable: ".,!?;:\"()[]{}…“”«»"
  # Any of these inside a token excludes it from the candidates
  structural: "'-"
  cache: true             # Memoize classification per distinct token

registry:
  length_unit: runes      # "runes" (default) or "graphemes"

output:
  format: text            # "text" (default), "json" or "yaml"

storage:
  # Runs database (default: ~/.config/cryptowords/runs.db)
  # path: /path/to/runs.db

watch:
  debounce: 250ms         # Quiet period before a changed file is re-read

# Tracing (OpenTelemetry)
tracing:
  enabled: false
  exporter: file          # "none", "file", "stdout" or "otlp"
  # file_path: ~/.config/cryptowords/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0
  service_name: cryptowords

# Debug logging (also --debug or CRYPTOWORDS_DEBUG=1)
debug: false
# log_file: debug.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
