package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/cryptowords/internal/log"
	"github.com/zjrosen/cryptowords/internal/paths"
)

// EnvPrefix prefixes environment overrides, e.g. CRYPTOWORDS_OUTPUT_FORMAT.
const EnvPrefix = "CRYPTOWORDS"

// SetDefaults registers every default with v so environment overrides
// resolve for keys absent from the config file.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("punctuation.removable", d.Punctuation.Removable)
	v.SetDefault("punctuation.structural", d.Punctuation.Structural)
	v.SetDefault("punctuation.cache", d.Punctuation.Cache)
	v.SetDefault("registry.length_unit", string(d.Registry.LengthUnit))
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("storage.path", d.Storage.Path)
	v.SetDefault("watch.debounce", d.Watch.Debounce)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
}

// Load reads configuration into v and decodes it.
//
// Lookup order:
//  1. explicit (the --config flag), which must exist
//  2. .cryptowords/config.yaml (current directory)
//  3. ~/.config/cryptowords/config.yaml (user config)
//
// When no file is found a default one is written to LocalConfigPath.
// Returns the decoded config and the file used, if any.
func Load(v *viper.Viper, explicit string) (Config, string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(LocalConfigPath):
		v.SetConfigFile(LocalConfigPath)
	default:
		if dir := DefaultConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		// Nothing anywhere: seed a local default and carry on. A failed
		// write leaves us on built-in defaults.
		if writeErr := WriteDefaultConfig(LocalConfigPath); writeErr == nil {
			v.SetConfigFile(LocalConfigPath)
			_ = v.ReadInConfig()
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}

	cfg.Storage.Path = paths.Expand(cfg.Storage.Path)
	cfg.LogFile = paths.Expand(cfg.LogFile)
	cfg.Tracing.FilePath = paths.Expand(cfg.Tracing.FilePath)
	if cfg.Tracing.FilePath == "" {
		cfg.Tracing.FilePath = DefaultTracesFilePath()
	}

	used := v.ConfigFileUsed()
	log.Debug(log.CatConfig, "Loaded config", "file", used)
	return cfg, used, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(filepath.Clean(path))
	return err == nil
}
