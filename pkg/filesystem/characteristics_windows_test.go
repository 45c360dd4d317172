//go:build windows

package filesystem

import (
	"io/fs"
	"os"
	"syscall"
	"testing"
	"time"
)

// attributeInfo is a minimal os.FileInfo backed by Windows file attribute
// data, for exercising classification without touching the filesystem.
type attributeInfo struct {
	name       string
	attributes syscall.Win32FileAttributeData
}

func (a *attributeInfo) Name() string       { return a.name }
func (a *attributeInfo) Size() int64        { return 0 }
func (a *attributeInfo) Mode() os.FileMode  { return 0 }
func (a *attributeInfo) ModTime() time.Time { return time.Time{} }
func (a *attributeInfo) IsDir() bool        { return false }
func (a *attributeInfo) Sys() any           { return &a.attributes }

// TestSystemImpliesHidden tests that system-protected entries classify as
// hidden even when the hidden flag itself is clear.
func TestSystemImpliesHidden(t *testing.T) {
	record := Characteristics{Kind: KindSystem}
	if !record.IsHidden() {
		t.Error("system-protected entry not classified as hidden")
	}
	if record.Kind.Contains(KindHidden) {
		t.Error("system flag leaked into the hidden flag")
	}
	record.Kind |= KindHidden
	if !record.IsHidden() {
		t.Error("hidden flag not reflected in classification")
	}
}

// TestHiddenKindFromAttributes tests that the hidden and system flags track
// the entry's file attribute bits.
func TestHiddenKindFromAttributes(t *testing.T) {
	tests := []struct {
		description string
		attributes  uint32
		expected    Kind
	}{
		{"normal", syscall.FILE_ATTRIBUTE_NORMAL, 0},
		{"hidden", syscall.FILE_ATTRIBUTE_HIDDEN, KindHidden},
		{"system", syscall.FILE_ATTRIBUTE_SYSTEM, KindSystem},
		{"hidden and system",
			syscall.FILE_ATTRIBUTE_HIDDEN | syscall.FILE_ATTRIBUTE_SYSTEM,
			KindHidden | KindSystem},
	}
	for _, test := range tests {
		info := &attributeInfo{name: "entry"}
		info.attributes.FileAttributes = test.attributes
		if kind := hiddenKind("entry", info); kind != test.expected {
			t.Errorf("unexpected classification for %s entry: %v", test.description, kind)
		}
	}

	// Dot-prefixed names carry no significance here, and metadata without
	// attribute data yields no flags.
	if hiddenKind(".dotted", syntheticInfo{name: ".dotted"}) != 0 {
		t.Error("dot-prefixed name affected classification")
	}
}

// TestHitsIgnoresRawFields tests that change time and raw mode differences
// don't gate the staleness comparison, since neither exists here.
func TestHitsIgnoresRawFields(t *testing.T) {
	first, second := hitsFixture()
	second.ChangeTime = second.ChangeTime.Add(time.Hour)
	second.Mode = 0
	if !first.Hits(second) || !second.Hits(first) {
		t.Error("raw field differences caused spurious invalidation")
	}
}

// TestPlatformPredicatesAbsent tests that the POSIX type and permission
// predicates are uniformly false, regardless of the record's raw mode.
func TestPlatformPredicatesAbsent(t *testing.T) {
	record := CharacteristicsFromType(fs.ModeNamedPipe)
	record.Mode = ^Mode(0)
	if record.IsBlockDevice() || record.IsCharacterDevice() ||
		record.IsFIFO() || record.IsSocket() ||
		record.IsExecutable() || record.IsSticky() {
		t.Error("record satisfies a predicate with no meaning on this platform")
	}
	if modeForFileType(fs.ModeDir) != 0 {
		t.Error("bare type probe synthesized raw type bits")
	}
}
