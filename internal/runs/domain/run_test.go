package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRun(t *testing.T) {
	words := []string{"wrold", "Hrlo"}
	before := time.Now()

	run := NewRun("0123456789abcdef", "greeting", "Hrlo, wrold!\n", words, LengthUnitRunes)

	require.Zero(t, run.ID())
	require.Equal(t, "0123456789abcdef", run.GUID())
	require.Equal(t, "01234567", run.ShortGUID())
	require.Equal(t, "greeting", run.Name())
	require.Equal(t, "Hrlo, wrold!\n", run.Message())
	require.Equal(t, words, run.Words())
	require.Equal(t, 2, run.WordCount())
	require.Equal(t, LengthUnitRunes, run.LengthUnit())
	require.False(t, run.CreatedAt().Before(before))

	words[0] = "mutated"
	got := run.Words()
	require.Equal(t, "wrold", got[0], "NewRun must copy its input")
	got[1] = "mutated"
	require.Equal(t, "Hrlo", run.Words()[1], "Words must return a copy")
}

func TestRun_SetID(t *testing.T) {
	run := NewRun("g", "", "", nil, LengthUnitRunes)
	run.SetID(42)
	require.Equal(t, int64(42), run.ID())
	require.Equal(t, "g", run.ShortGUID())
}

func TestLengthUnit_IsValid(t *testing.T) {
	require.True(t, LengthUnitRunes.IsValid())
	require.True(t, LengthUnitGraphemes.IsValid())
	require.False(t, LengthUnit("bytes").IsValid())
}

func TestIsNotFound(t *testing.T) {
	err := fmt.Errorf("loading run: %w", &RunNotFoundError{GUID: "abc"})
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "loading run: run not found: abc")
	require.False(t, IsNotFound(ErrAmbiguousPrefix))
}
