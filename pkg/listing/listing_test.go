//go:build !windows

package listing

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createFixture populates a directory with a mixture of entry types and
// returns its path.
func createFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "alpha.txt"), []byte("alpha"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "beta.log"), []byte("beta"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), nil, 0600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0700))
	require.NoError(t, os.Symlink(filepath.Join(root, "alpha.txt"), filepath.Join(root, "live-link")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), filepath.Join(root, "broken-link")))
	return root
}

// names extracts the entry names from a listing.
func names(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, entry := range entries {
		result[i] = entry.Name
	}
	return result
}

func TestListDefaults(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{Logger: zerolog.Nop()})
	require.NoError(t, err)

	// Hidden entries are excluded by default, and output is name-sorted.
	assert.Equal(t,
		[]string{"alpha.txt", "beta.log", "broken-link", "live-link", "nested"},
		names(entries))
	assert.True(t, sort.StringsAreSorted(names(entries)))
}

func TestListIncludeHidden(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{
		IncludeHidden: true,
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.Contains(t, names(entries), ".hidden")
}

func TestListClassification(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{Logger: zerolog.Nop()})
	require.NoError(t, err)

	byName := make(map[string]Entry)
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	// Without link resolution, links describe themselves and are never
	// orphans.
	assert.True(t, byName["nested"].Characteristics.IsDirectory())
	assert.True(t, byName["live-link"].Characteristics.IsSymbolicLink())
	assert.False(t, byName["live-link"].Characteristics.IsOrphan())
	assert.True(t, byName["broken-link"].Characteristics.IsSymbolicLink())
	assert.False(t, byName["broken-link"].Characteristics.IsOrphan())
}

func TestListFollowSymlinks(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{
		FollowSymlinks: true,
		Logger:         zerolog.Nop(),
	})
	require.NoError(t, err)

	byName := make(map[string]Entry)
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	// A live link resolves to its target's metadata while keeping link
	// status.
	live := byName["live-link"].Characteristics
	assert.True(t, live.IsSymbolicLink())
	assert.False(t, live.IsOrphan())
	assert.Equal(t, uint64(5), live.Size)

	// A broken link records orphan status.
	broken := byName["broken-link"].Characteristics
	assert.True(t, broken.IsSymbolicLink())
	assert.True(t, broken.IsOrphan())
}

func TestListDegradedMetadata(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission restrictions are not enforced for root")
	}

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("data"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0700))

	// Make the directory readable but not searchable, so that enumeration
	// succeeds while per-entry metadata queries fail.
	require.NoError(t, os.Chmod(root, 0400))
	t.Cleanup(func() { os.Chmod(root, 0700) })

	entries, err := List(context.Background(), root, &Options{
		IncludeHidden: true,
		Logger:        zerolog.Nop(),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"file.txt", "sub"}, names(entries))

	// Each entry degrades to a placeholder record that still reflects the
	// entry's type.
	for _, entry := range entries {
		assert.True(t, entry.Characteristics.IsDummy(), entry.Name)
	}
	assert.False(t, entries[0].Characteristics.IsDirectory())
	assert.True(t, entries[1].Characteristics.IsDirectory())
}

func TestListIgnorePatterns(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{
		IgnorePatterns: []string{"*.log", "nested/"},
		Logger:         zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.txt", "broken-link", "live-link"}, names(entries))
}

func TestListNegatedIgnorePattern(t *testing.T) {
	root := createFixture(t)
	entries, err := List(context.Background(), root, &Options{
		IgnorePatterns: []string{"*.*", "!alpha.txt"},
		Logger:         zerolog.Nop(),
	})
	require.NoError(t, err)
	assert.Contains(t, names(entries), "alpha.txt")
	assert.NotContains(t, names(entries), "beta.log")
}

func TestListInvalidIgnorePattern(t *testing.T) {
	root := createFixture(t)
	_, err := List(context.Background(), root, &Options{
		IgnorePatterns: []string{""},
		Logger:         zerolog.Nop(),
	})
	assert.Error(t, err)
}

func TestListNonExistentRoot(t *testing.T) {
	_, err := List(context.Background(), filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestValidIgnorePattern(t *testing.T) {
	assert.True(t, ValidIgnorePattern("*.log"))
	assert.True(t, ValidIgnorePattern("!important/"))
	assert.False(t, ValidIgnorePattern(""))
	assert.False(t, ValidIgnorePattern("!"))
	assert.False(t, ValidIgnorePattern("/"))
}
