// Package paths provides path resolution utilities.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a user-supplied path. A leading "~" or "~/" is replaced
// with the home directory; everything else is returned cleaned. Empty
// input stays empty so callers can keep "unset" distinct from ".".
//
//   - "~/runs.db"   -> "/home/me/runs.db"
//   - "~"           -> "/home/me"
//   - "./a/../b"    -> "b"
//   - "~other/x"    -> "~other/x" (other users are not resolved)
func Expand(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Clean(path)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Clean(path)
}
