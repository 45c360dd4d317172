//go:build !windows

package filesystem

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/shibukawa/extstat"

	"golang.org/x/sys/unix"

	"github.com/kpbaks/yazi/pkg/pathname"
)

// Mode is the raw file mode of a filesystem entry. On POSIX systems, it is
// the underlying mode value from the stat structure (as opposed to the os
// package's portable FileMode representation).
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information. After
	// masking, the resulting value can be compared with any of the ModeType*
	// values (other than ModeTypeMask).
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)
	// ModeTypeBlockDevice represents a block device.
	ModeTypeBlockDevice = Mode(unix.S_IFBLK)
	// ModeTypeCharacterDevice represents a character device.
	ModeTypeCharacterDevice = Mode(unix.S_IFCHR)
	// ModeTypeNamedPipe represents a named pipe.
	ModeTypeNamedPipe = Mode(unix.S_IFIFO)
	// ModeTypeSocket represents a Unix domain socket.
	ModeTypeSocket = Mode(unix.S_IFSOCK)
)

// systemImpliesHidden indicates whether or not system-protected entries are
// treated as hidden. The concept doesn't exist on POSIX systems.
const systemImpliesHidden = false

// populatePlatform copies POSIX-specific metadata fields into the record.
// Each field is individually optional: if the underlying stat structure isn't
// available, the fields simply remain at their zero values.
func (c *Characteristics) populatePlatform(info os.FileInfo) {
	// Extract the raw stat structure. Synthetic metadata (e.g. from virtual
	// filesystems) may not carry one.
	raw, ok := info.Sys().(*syscall.Stat_t)
	if !ok || raw == nil {
		return
	}

	// Extract access and birth times.
	if times := extstat.New(info); times != nil {
		c.AccessTime = times.AccessTime
		c.BirthTime = times.BirthTime
	}

	// Reconstruct the inode change time from its raw seconds/nanoseconds
	// representation. Overflow yields an absent value.
	seconds, nanoseconds := extractChangeTime(raw)
	c.ChangeTime = checkedUnixTime(seconds, nanoseconds)

	// Copy raw identification fields.
	c.Mode = Mode(raw.Mode)
	c.DeviceID = uint64(raw.Dev)
	c.UserID = raw.Uid
	c.GroupID = raw.Gid
	c.LinkCount = uint64(raw.Nlink)
}

// modeForFileType synthesizes raw type bits for a bare file type probe so
// that type predicates still function on records built without full metadata.
func modeForFileType(fileType fs.FileMode) Mode {
	switch {
	case fileType.IsDir():
		return ModeTypeDirectory
	case fileType&fs.ModeSymlink != 0:
		return ModeTypeSymbolicLink
	case fileType&fs.ModeDevice != 0 && fileType&fs.ModeCharDevice == 0:
		return ModeTypeBlockDevice
	case fileType&fs.ModeCharDevice != 0:
		return ModeTypeCharacterDevice
	case fileType&fs.ModeNamedPipe != 0:
		return ModeTypeNamedPipe
	case fileType&fs.ModeSocket != 0:
		return ModeTypeSocket
	default:
		return 0
	}
}

// hiddenKind computes the hidden classification for an entry. POSIX systems
// hide entries by naming convention only, so the metadata goes unused.
func hiddenKind(path string, _ os.FileInfo) Kind {
	if pathname.IsHiddenName(path) {
		return KindHidden
	}
	return 0
}

// hitsPlatform implements the POSIX-specific portion of the staleness
// comparison: change time and raw mode bits additionally gate equivalence.
func (c Characteristics) hitsPlatform(other Characteristics) bool {
	return c.ChangeTime.Equal(other.ChangeTime) && c.Mode == other.Mode
}

// IsBlockDevice returns true if the entry is a block device.
func (c Characteristics) IsBlockDevice() bool {
	return c.Mode&ModeTypeMask == ModeTypeBlockDevice
}

// IsCharacterDevice returns true if the entry is a character device.
func (c Characteristics) IsCharacterDevice() bool {
	return c.Mode&ModeTypeMask == ModeTypeCharacterDevice
}

// IsFIFO returns true if the entry is a named pipe.
func (c Characteristics) IsFIFO() bool {
	return c.Mode&ModeTypeMask == ModeTypeNamedPipe
}

// IsSocket returns true if the entry is a Unix domain socket.
func (c Characteristics) IsSocket() bool {
	return c.Mode&ModeTypeMask == ModeTypeSocket
}

// IsExecutable returns true if the entry has its owner-executable bit set.
func (c Characteristics) IsExecutable() bool {
	return c.Mode&Mode(unix.S_IXUSR) != 0
}

// IsSticky returns true if the entry has its sticky bit set.
func (c Characteristics) IsSticky() bool {
	return c.Mode&Mode(unix.S_ISVTX) != 0
}
