// Package identifier provides collision-resistant, prefixed identifiers for
// tagging scan sessions and cache instances in logs and persisted state.
package identifier

import (
	"github.com/kpbaks/yazi/pkg/encoding"
	"github.com/kpbaks/yazi/pkg/random"
)

const (
	// PrefixScan is the prefix used for directory scan session identifiers.
	PrefixScan = "scan_"
	// PrefixCache is the prefix used for characteristics cache identifiers.
	PrefixCache = "cache_"
)

// New generates a new collision-resistant identifier with the specified
// prefix.
func New(prefix string) (string, error) {
	// Create the random value.
	value, err := random.New(random.CollisionResistantLength)
	if err != nil {
		return "", err
	}

	// Encode the random value.
	return prefix + encoding.EncodeBase62(value), nil
}
