package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	t.Setenv("HOME", "/home/me")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", "/home/me"},
		{"~/runs.db", "/home/me/runs.db"},
		{"~/.config/cryptowords/traces/traces.jsonl", filepath.Join("/home/me", ".config", "cryptowords", "traces", "traces.jsonl")},
		{"./a/../b", "b"},
		{"/abs/path/", "/abs/path"},
		{"~other/x", "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, Expand(tt.in))
		})
	}
}
