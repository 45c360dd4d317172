//go:build darwin

package filesystem

import (
	"syscall"
)

// extractChangeTime is a convenience function for extracting the inode change
// time specification from a stat structure. It's necessary since not all
// POSIX platforms use the same struct field name for this value.
func extractChangeTime(metadata *syscall.Stat_t) (int64, int64) {
	return metadata.Ctimespec.Sec, metadata.Ctimespec.Nsec
}
