package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cryptowords/internal/infrastructure/sqlite"
)

// NewTestDB opens a migrated runs database in a temp directory. It is
// closed when the test ends.
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	return NewTestDBAt(t, filepath.Join(t.TempDir(), "runs.db"))
}

// NewTestDBAt is NewTestDB at a caller-chosen path, for tests that reopen
// the same file through another code path.
func NewTestDBAt(t *testing.T, path string) *sqlite.DB {
	t.Helper()
	db, err := sqlite.NewDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}
