package filesystem

import (
	"context"
	"io/fs"
	"os"
	"time"
)

// Characteristics is a unified snapshot of the metadata that a filesystem
// exposes for a single entry. It normalizes platform-specific metadata (POSIX
// stat fields, Windows file attributes) into one value type. It has no
// identity beyond its field values: it is freely copyable, is never mutated
// after construction, and requires no synchronization for concurrent use.
//
// Timestamp fields use the zero value of time.Time to indicate that the
// platform did not report the corresponding time or that the underlying query
// for it failed. The Mode, DeviceID, UserID, GroupID, and LinkCount fields are
// only meaningful on POSIX systems and are left zero elsewhere.
type Characteristics struct {
	// Kind is the classification flag set for the entry.
	Kind Kind
	// Size is the size of the entry in bytes. It is not meaningful for
	// directories or for placeholder records.
	Size uint64
	// AccessTime is the access time of the entry, if reported.
	AccessTime time.Time
	// BirthTime is the creation time of the entry, if reported.
	BirthTime time.Time
	// ModificationTime is the modification time of the entry, if reported.
	ModificationTime time.Time
	// ChangeTime is the inode change time of the entry. It is only reported
	// on POSIX systems.
	ChangeTime time.Time
	// Mode is the raw permission and type bit set of the entry. It is only
	// meaningful on POSIX systems.
	Mode Mode
	// DeviceID is the ID of the device on which the entry resides. It is only
	// meaningful on POSIX systems.
	DeviceID uint64
	// UserID is the ID of the entry's owning user. It is only meaningful on
	// POSIX systems.
	UserID uint32
	// GroupID is the ID of the entry's owning group. It is only meaningful on
	// POSIX systems.
	GroupID uint32
	// LinkCount is the number of hard links to the entry. It is only
	// meaningful on POSIX systems.
	LinkCount uint64
}

// CharacteristicsFromInfo converts native metadata into a characteristics
// record without performing any additional I/O. Directory and symbolic link
// probes map to KindDirectory and KindSymbolicLink respectively. Timestamp
// fields are each individually optional: a platform that doesn't report one
// simply yields an absent value without affecting the rest of the record. On
// POSIX systems, the raw mode, device, ownership, and link count fields are
// copied from the underlying stat structure.
func CharacteristicsFromInfo(info os.FileInfo) Characteristics {
	// Compute type flags. Directories and symbolic links are mutually
	// exclusive at the metadata level.
	var kind Kind
	if info.IsDir() {
		kind |= KindDirectory
	} else if info.Mode()&os.ModeSymlink != 0 {
		kind |= KindSymbolicLink
	}

	// Populate the portable fields.
	result := Characteristics{
		Kind:             kind,
		Size:             uint64(info.Size()),
		ModificationTime: info.ModTime(),
	}

	// Populate platform-specific fields, including access and birth times,
	// from the underlying native metadata, if present.
	result.populatePlatform(info)

	// Done.
	return result
}

// CharacteristicsFromType converts a bare file type probe into a placeholder
// characteristics record. It is used when full metadata could not be obtained
// but the entry's type is still known (e.g. from a directory read). The
// resulting record always has KindDummy set and, on POSIX systems, carries
// synthesized raw type bits in Mode so that type predicates still function.
// All other fields remain at their zero values.
func CharacteristicsFromType(fileType fs.FileMode) Characteristics {
	kind := KindDummy
	if fileType.IsDir() {
		kind |= KindDirectory
	} else if fileType&fs.ModeSymlink != 0 {
		kind |= KindSymbolicLink
	}
	return Characteristics{
		Kind: kind,
		Mode: modeForFileType(fileType),
	}
}

// NewCharacteristicsNoFollow constructs a characteristics record from a path
// and native metadata without resolving symbolic links. If the metadata
// describes a link, the resulting record describes the link itself. The path
// is consumed only to classify hidden (and, on Windows, system) status; it is
// not retained.
func NewCharacteristicsNoFollow(path string, info os.FileInfo) Characteristics {
	result := CharacteristicsFromInfo(info)
	result.Kind |= hiddenKind(path, info)
	return result
}

// StatFunction is the signature of a symbolic-link-following metadata query.
// It matches os.Stat.
type StatFunction func(path string) (os.FileInfo, error)

// NewCharacteristics constructs a characteristics record from a path and
// native metadata, resolving symbolic links with os.Stat. See
// NewCharacteristicsWithStat for the resolution semantics.
func NewCharacteristics(ctx context.Context, path string, info os.FileInfo) Characteristics {
	return NewCharacteristicsWithStat(ctx, path, info, os.Stat)
}

// NewCharacteristicsWithStat constructs a characteristics record from a path
// and native metadata, resolving symbolic links with the provided query. If
// the metadata describes a link, the link target's metadata is fetched and
// used for the record's data fields, with KindSymbolicLink recorded so that
// link status is never lost. If the target cannot be resolved, the record
// falls back to the link's own metadata and KindOrphan is set. The target
// fetch is the sole blocking operation in this package; it is skipped (and
// treated as a resolution failure) if ctx has already been cancelled.
func NewCharacteristicsWithStat(ctx context.Context, path string, info os.FileInfo, stat StatFunction) Characteristics {
	// Resolve symbolic links. A successful stat can't itself yield link
	// metadata (it follows the full chain), so link metadata after this step
	// indicates a failed resolution.
	var attached Kind
	if info.Mode()&os.ModeSymlink != 0 {
		attached |= KindSymbolicLink
		if target, err := statContext(ctx, path, stat); err == nil {
			info = target
		}
	}
	if info.Mode()&os.ModeSymlink != 0 {
		attached |= KindOrphan
	}

	// Build the record from whichever metadata we ended up with and reapply
	// the flags accumulated during resolution.
	result := NewCharacteristicsNoFollow(path, info)
	result.Kind |= attached
	return result
}

// DummyCharacteristics returns a placeholder record with only KindDummy set
// and every other field at its zero value. It serves as a sentinel for
// "metadata unavailable" without requiring an optional wrapper at call sites.
func DummyCharacteristics() Characteristics {
	return Characteristics{Kind: KindDummy}
}

// statContext performs a symbolic-link-following metadata query, honoring
// context cancellation that occurs before the query starts.
func statContext(ctx context.Context, path string, stat StatFunction) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return stat(path)
}

// IsDirectory returns true if the entry is a directory.
func (c Characteristics) IsDirectory() bool {
	return c.Kind.Contains(KindDirectory)
}

// IsHidden returns true if the entry is hidden. On Windows, system-protected
// entries are also treated as hidden.
func (c Characteristics) IsHidden() bool {
	return c.Kind.Contains(KindHidden) ||
		(systemImpliesHidden && c.Kind.Contains(KindSystem))
}

// IsSymbolicLink returns true if the entry is a symbolic link.
func (c Characteristics) IsSymbolicLink() bool {
	return c.Kind.Contains(KindSymbolicLink)
}

// IsOrphan returns true if the entry is a symbolic link whose target could
// not be resolved.
func (c Characteristics) IsOrphan() bool {
	return c.Kind.Contains(KindOrphan)
}

// IsDummy returns true if the record is a placeholder with no real metadata
// backing it.
func (c Characteristics) IsDummy() bool {
	return c.Kind.Contains(KindDummy)
}

// Hits returns true if cached data derived from c can be reused for other
// without re-derivation. It compares size, modification time, birth time, and
// classification flags on all platforms, and additionally change time and raw
// mode bits on POSIX systems. It intentionally omits device ID, ownership,
// and link count, because those don't affect derived data and comparing them
// would cause spurious invalidation. It is weaker than structural equality.
func (c Characteristics) Hits(other Characteristics) bool {
	return c.Size == other.Size &&
		c.ModificationTime.Equal(other.ModificationTime) &&
		c.BirthTime.Equal(other.BirthTime) &&
		c.Kind == other.Kind &&
		c.hitsPlatform(other)
}

// checkedUnixTime converts a seconds/nanoseconds pair (relative to the Unix
// epoch) into a time.Time, returning the zero value if the pair overflows the
// representable range rather than wrapping silently.
func checkedUnixTime(seconds, nanoseconds int64) time.Time {
	result := time.Unix(seconds, nanoseconds)
	if result.Unix() != seconds+nanoseconds/1e9 {
		return time.Time{}
	}
	return result
}
