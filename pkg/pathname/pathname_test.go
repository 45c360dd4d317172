package pathname

import (
	"testing"
)

// TestIsHiddenName tests hidden-name classification.
func TestIsHiddenName(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{".profile", true},
		{"/home/user/.config", true},
		{"/home/user/.config/", true},
		{"visible", false},
		{"/home/user/visible", false},
		{"/home/user/visible.txt", false},
		{"ends.with.dot.", false},
		{".", false},
		{"..", false},
		{"/", false},
		{"/home/user/..", false},
	}
	for _, test := range tests {
		if result := IsHiddenName(test.path); result != test.expected {
			t.Errorf("classification for %q: %v != %v", test.path, result, test.expected)
		}
	}
}
