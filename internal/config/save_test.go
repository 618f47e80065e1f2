package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestSave_CreatesNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dir", "config.yaml")

	cfg := Defaults()
	cfg.Output.Format = FormatJSON
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "format: json")
	require.Contains(t, string(data), "debounce: 250ms")

	loaded, _, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, FormatJSON, loaded.Output.Format)
	require.Equal(t, 250*time.Millisecond, loaded.Watch.Debounce)
}

func TestSave_PreservesCommentsAndUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	initial := `# my settings
output:
  format: text # keep me
custom_key: 42
`
	require.NoError(t, os.WriteFile(path, []byte(initial), 0o600))

	cfg := Defaults()
	cfg.Output.Format = FormatYAML
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	require.Contains(t, out, "# my settings")
	require.Contains(t, out, "format: yaml")
	require.Contains(t, out, "# keep me")
	require.Contains(t, out, "custom_key: 42")
	require.Contains(t, out, "punctuation:")
}

func TestSave_DefaultTemplateKeepsComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg := Defaults()
	cfg.Watch.Debounce = time.Second
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# cryptowords configuration")
	require.Contains(t, string(data), "debounce: 1s")
}

func TestSave_MalformedExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: [b"), 0o600))

	err := Save(path, Defaults())
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing config")
}

func TestSave_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Save(filepath.Join(dir, "config.yaml"), Defaults()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
