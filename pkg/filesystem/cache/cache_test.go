package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpbaks/yazi/pkg/filesystem"
)

// testRecord returns a well-formed characteristics record for cache tests.
func testRecord() filesystem.Characteristics {
	return filesystem.Characteristics{
		Kind:             filesystem.KindDirectory,
		Size:             4096,
		ModificationTime: time.Unix(1700000000, 0),
		BirthTime:        time.Unix(1600000000, 0),
	}
}

func TestLookupMiss(t *testing.T) {
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)
	_, ok := store.Lookup("/tmp/unknown", testRecord())
	assert.False(t, ok)
}

func TestLookupHit(t *testing.T) {
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)

	record := testRecord()
	store.Store("/tmp/entry", record)

	// An equivalent fresh record revalidates the cached one.
	cached, ok := store.Lookup("/tmp/entry", record)
	require.True(t, ok)
	assert.True(t, cached.Hits(record))
}

func TestLookupIgnoresIdentityFields(t *testing.T) {
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)

	record := testRecord()
	store.Store("/tmp/entry", record)

	// Device and ownership changes don't invalidate cached records.
	fresh := record
	fresh.DeviceID = 7
	fresh.UserID = 42
	_, ok := store.Lookup("/tmp/entry", fresh)
	assert.True(t, ok)
}

func TestLookupEvictsStale(t *testing.T) {
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)

	record := testRecord()
	store.Store("/tmp/entry", record)

	// A modified fresh record invalidates and evicts the cached one.
	fresh := record
	fresh.ModificationTime = fresh.ModificationTime.Add(time.Second)
	_, ok := store.Lookup("/tmp/entry", fresh)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestCapacityEviction(t *testing.T) {
	store, err := New(2, zerolog.Nop())
	require.NoError(t, err)

	store.Store("/a", testRecord())
	store.Store("/b", testRecord())
	store.Store("/c", testRecord())
	assert.Equal(t, 2, store.Len())
}

func TestInvalidate(t *testing.T) {
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)

	record := testRecord()
	store.Store("/tmp/entry", record)
	store.Invalidate("/tmp/entry")
	_, ok := store.Lookup("/tmp/entry", record)
	assert.False(t, ok)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characteristics.yaml")

	// Populate and persist a cache.
	store, err := New(0, zerolog.Nop())
	require.NoError(t, err)
	record := testRecord()
	store.Store("/tmp/entry", record)
	require.NoError(t, store.Save(path))

	// Reload and verify that the record survived.
	reloaded, err := Load(path, 0, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, reloaded.Len())
	cached, ok := reloaded.Lookup("/tmp/entry", record)
	require.True(t, ok)
	assert.True(t, cached.Hits(record))
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "characteristics.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0600))

	// A malformed file yields an empty cache, not an error.
	store, err := Load(path, 0, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}

func TestLoadMissing(t *testing.T) {
	store, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), 0, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, store.Len())
}
