package sqlite

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// TestNewDB_CreatesDirectory verifies that NewDB creates the parent directory if missing.
func TestNewDB_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "nested", "runs.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err, "NewDB should succeed even with nested non-existent directories")
	defer db.Close()

	info, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0700), info.Mode().Perm(), "Directory should have 0700 permissions")
	}
	require.Equal(t, dbPath, db.Path())
}

// TestNewDB_RunsMigrations verifies that the runs table exists after NewDB.
func TestNewDB_RunsMigrations(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer db.Close()

	var tableName string
	err = db.conn.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='runs'",
	).Scan(&tableName)
	require.NoError(t, err, "runs table should exist after migrations")
	require.Equal(t, "runs", tableName)
}

// TestNewDB_ReopenKeepsData verifies migrations are idempotent across opens.
func TestNewDB_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	db1, err := NewDB(dbPath)
	require.NoError(t, err)
	run := domain.NewRun("guid-reopen", "", "Hrlo, wrold!\n", []string{"wrold", "Hrlo"}, domain.LengthUnitRunes)
	require.NoError(t, db1.RunRepository().Save(run))
	require.NoError(t, db1.Close())

	db2, err := NewDB(dbPath)
	require.NoError(t, err, "reopening with no pending migrations should succeed")
	defer db2.Close()

	got, err := db2.RunRepository().FindByGUID("guid-reopen")
	require.NoError(t, err)
	require.Equal(t, []string{"wrold", "Hrlo"}, got.Words())
}
