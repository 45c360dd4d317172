// Package pathname provides pure path classification utilities that require
// no filesystem access.
package pathname

import (
	"path/filepath"
	"strings"
)

// IsHiddenName returns true if the base name of path follows the POSIX
// hidden-file naming convention, i.e. begins with a dot. The special names
// "." and ".." and the filesystem root are not considered hidden.
func IsHiddenName(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == ".." {
		return false
	}
	return strings.HasPrefix(base, ".")
}
