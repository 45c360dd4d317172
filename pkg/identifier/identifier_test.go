package identifier

import (
	"strings"
	"testing"
)

// TestNew tests identifier generation.
func TestNew(t *testing.T) {
	// Generate an identifier.
	value, err := New(PrefixScan)
	if err != nil {
		t.Fatal("unable to generate identifier:", err)
	}
	if !strings.HasPrefix(value, PrefixScan) {
		t.Error("identifier missing prefix:", value)
	}
	if len(value) <= len(PrefixScan) {
		t.Error("identifier has no random component")
	}

	// Ensure a second identifier differs.
	if other, err := New(PrefixScan); err != nil {
		t.Fatal("unable to generate second identifier:", err)
	} else if other == value {
		t.Error("identifiers collided")
	}
}
