//go:build windows

package filesystem

import (
	"io/fs"
	"os"
	"syscall"

	"github.com/shibukawa/extstat"
)

// Mode is the raw file mode of a filesystem entry. The concept doesn't exist
// on Windows, so the value is always zero there; the type exists only so that
// records have a uniform shape across platforms.
type Mode uint32

// systemImpliesHidden indicates whether or not system-protected entries are
// treated as hidden. Windows file managers conventionally hide them.
const systemImpliesHidden = true

// populatePlatform copies Windows-specific metadata fields into the record.
// Windows exposes no raw mode, device, ownership, or link count information
// through basic attribute queries, so only the extra timestamps are copied.
func (c *Characteristics) populatePlatform(info os.FileInfo) {
	if _, ok := info.Sys().(*syscall.Win32FileAttributeData); !ok {
		return
	}
	if times := extstat.New(info); times != nil {
		c.AccessTime = times.AccessTime
		c.BirthTime = times.CreateTime
	}
}

// modeForFileType synthesizes raw type bits for a bare file type probe. Raw
// type bits don't exist on Windows, so the result is always zero.
func modeForFileType(_ fs.FileMode) Mode {
	return 0
}

// hiddenKind computes the hidden and system classification for an entry from
// its file attribute flags.
func hiddenKind(_ string, info os.FileInfo) Kind {
	attributes, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok || attributes == nil {
		return 0
	}
	var kind Kind
	if attributes.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0 {
		kind |= KindHidden
	}
	if attributes.FileAttributes&syscall.FILE_ATTRIBUTE_SYSTEM != 0 {
		kind |= KindSystem
	}
	return kind
}

// hitsPlatform implements the platform-specific portion of the staleness
// comparison. Change times and raw modes don't exist on Windows, so they
// never gate equivalence.
func (c Characteristics) hitsPlatform(_ Characteristics) bool {
	return true
}

// IsBlockDevice returns false: the concept doesn't exist on Windows.
func (c Characteristics) IsBlockDevice() bool {
	return false
}

// IsCharacterDevice returns false: the concept doesn't exist on Windows.
func (c Characteristics) IsCharacterDevice() bool {
	return false
}

// IsFIFO returns false: the concept doesn't exist on Windows.
func (c Characteristics) IsFIFO() bool {
	return false
}

// IsSocket returns false: the concept doesn't exist on Windows.
func (c Characteristics) IsSocket() bool {
	return false
}

// IsExecutable returns false: POSIX permission bits don't exist on Windows.
func (c Characteristics) IsExecutable() bool {
	return false
}

// IsSticky returns false: POSIX permission bits don't exist on Windows.
func (c Characteristics) IsSticky() bool {
	return false
}
