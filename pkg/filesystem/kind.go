package filesystem

import (
	"strings"
)

// Kind encodes a set of independent classification facts about a filesystem
// entry. Flags are orthogonal and may be combined arbitrarily. The zero value
// represents an entry with no classification.
type Kind uint8

const (
	// KindDirectory indicates that the entry is a directory.
	KindDirectory Kind = 1 << iota
	// KindHidden indicates that the entry is hidden, either by the
	// dot-prefixed naming convention (POSIX) or by a file attribute flag
	// (Windows).
	KindHidden
	// KindSymbolicLink indicates that the entry is a symbolic link.
	KindSymbolicLink
	// KindOrphan indicates that the entry is a symbolic link whose target
	// could not be resolved.
	KindOrphan
	// KindDummy indicates that the record is a placeholder with no real
	// metadata backing it.
	KindDummy
	// KindSystem indicates that the entry is marked system-protected. It is
	// only ever set on Windows, where the concept exists as a file attribute.
	KindSystem
)

// Contains returns true if and only if every flag in other is set in k.
func (k Kind) Contains(other Kind) bool {
	return k&other == other
}

// kindNames maps individual flags to their display names.
var kindNames = []struct {
	flag Kind
	name string
}{
	{KindDirectory, "directory"},
	{KindHidden, "hidden"},
	{KindSymbolicLink, "link"},
	{KindOrphan, "orphan"},
	{KindDummy, "dummy"},
	{KindSystem, "system"},
}

// String returns a human-readable representation of the flag set.
func (k Kind) String() string {
	// Handle the empty case.
	if k == 0 {
		return "none"
	}

	// Accumulate names for set flags.
	var names []string
	for _, n := range kindNames {
		if k.Contains(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
