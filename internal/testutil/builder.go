// Package testutil provides fixtures for tests that need saved runs.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/cryptowords/internal/runs/domain"
)

// Builder accumulates runs and saves them in order.
type Builder struct {
	t    *testing.T
	repo domain.RunRepository
	runs []runData
}

// NewBuilder creates a builder that saves into repo.
func NewBuilder(t *testing.T, repo domain.RunRepository) *Builder {
	t.Helper()
	return &Builder{t: t, repo: repo}
}

// WithRun adds a run with optional configuration.
func (b *Builder) WithRun(guid string, opts ...RunOption) *Builder {
	run := defaultRun(guid)
	for _, opt := range opts {
		opt(&run)
	}
	b.runs = append(b.runs, run)
	return b
}

// Build saves all accumulated runs and returns them with IDs assigned.
func (b *Builder) Build() []*domain.Run {
	b.t.Helper()
	saved := make([]*domain.Run, 0, len(b.runs))
	for _, data := range b.runs {
		run := data.toDomain()
		require.NoError(b.t, b.repo.Save(run))
		saved = append(saved, run)
	}
	return saved
}

// NewRun builds an unsaved run, for tests that never touch storage.
func NewRun(guid string, opts ...RunOption) *domain.Run {
	run := defaultRun(guid)
	for _, opt := range opts {
		opt(&run)
	}
	return run.toDomain()
}
