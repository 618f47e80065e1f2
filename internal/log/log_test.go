package log

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat_FieldsAndOrphanKey(t *testing.T) {
	ts := time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC)

	got := format(ts, LevelError, CatDB, "save failed", "guid", "abc", "orphan")
	require.Equal(t, "2025-12-06T10:45:00 [ERROR] [db] save failed guid=abc orphan=<missing>\n", got)
}

func TestLog_DisabledByDefault(t *testing.T) {
	setDefault(nil)
	require.NotPanics(t, func() {
		Info(CatCLI, "nothing to see")
	})
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	t.Cleanup(cleanup)

	SetMinLevel(LevelWarn)
	Debug(CatRegistry, "dropped")
	Info(CatRegistry, "dropped too")
	Warn(CatRegistry, "kept", "words", 3)

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "[WARN] [registry] kept words=3")
}

func TestLog_SetEnabledFalseDrops(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	t.Cleanup(cleanup)

	SetEnabled(false)
	Error(CatDB, "silenced")
	require.Empty(t, buf.String())

	SetEnabled(true)
	Error(CatDB, "audible")
	require.Contains(t, buf.String(), "audible")
}

func TestErrorErr_AppendsError(t *testing.T) {
	var buf bytes.Buffer
	cleanup := InitWriter(&buf)
	t.Cleanup(cleanup)

	ErrorErr(CatIngest, "read failed", errors.New("boom"), "path", "in.txt")
	ErrorErr(CatIngest, "nil error", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasSuffix(lines[0], "path=in.txt error=boom"))
	require.True(t, strings.HasSuffix(lines[1], "error=<nil>"))
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)

	Info(CatConfig, "loaded", "file", "config.yaml")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[INFO] [config] loaded file=config.yaml")
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(filepath.Join(t.TempDir(), "missing", "dir", "debug.log"))
	require.Error(t, err)
}
