// Package cache provides a bounded, revalidating store of filesystem entry
// characteristics. Cached records are only handed back after a staleness
// comparison against freshly fetched metadata, so consumers never observe
// derived state for an entry that has changed on disk.
package cache

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kpbaks/yazi/pkg/encoding"
	"github.com/kpbaks/yazi/pkg/filesystem"
	"github.com/kpbaks/yazi/pkg/identifier"
)

// DefaultCapacity is the entry capacity used when none is specified.
const DefaultCapacity = 4096

// Cache is a bounded LRU store of characteristics records keyed by path. It
// is safe for concurrent use.
type Cache struct {
	// instanceID uniquely identifies this cache instance across restarts.
	instanceID string
	// session is the log tag for this cache instance.
	session string
	// logger is the cache's logger.
	logger zerolog.Logger
	// lock serializes access to the fields below. The underlying LRU isn't
	// safe for concurrent use on its own.
	lock sync.Mutex
	// entries is the eviction-ordered record store.
	entries *lru.Cache
	// contents shadows entries to allow enumeration during persistence.
	contents map[string]filesystem.Characteristics
}

// New creates an empty cache with the specified entry capacity. A
// non-positive capacity selects DefaultCapacity.
func New(capacity int, logger zerolog.Logger) (*Cache, error) {
	// Validate capacity.
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	// Generate a session tag.
	session, err := identifier.New(identifier.PrefixCache)
	if err != nil {
		return nil, err
	}

	// Create the cache.
	result := &Cache{
		instanceID: uuid.New().String(),
		session:    session,
		logger:     logger.With().Str("cache", session).Logger(),
		entries:    lru.New(capacity),
		contents:   make(map[string]filesystem.Characteristics),
	}

	// Keep the shadow map in sync with LRU eviction.
	result.entries.OnEvicted = func(key lru.Key, _ interface{}) {
		if path, ok := key.(string); ok {
			delete(result.contents, path)
		}
	}

	// Success.
	return result, nil
}

// Store records the characteristics for the specified path, replacing any
// existing record.
func (c *Cache) Store(path string, characteristics filesystem.Characteristics) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries.Add(path, characteristics)
	c.contents[path] = characteristics
}

// Lookup returns the cached record for the specified path if it's still
// equivalent (in the staleness-comparison sense) to the freshly fetched
// record provided by the caller. A missing or stale record yields false, and
// a stale record is evicted.
func (c *Cache) Lookup(path string, current filesystem.Characteristics) (filesystem.Characteristics, bool) {
	c.lock.Lock()
	defer c.lock.Unlock()

	// Grab the cached record, if any.
	value, ok := c.entries.Get(path)
	if !ok {
		return filesystem.Characteristics{}, false
	}
	cached := value.(filesystem.Characteristics)

	// Revalidate against the freshly fetched record.
	if !cached.Hits(current) {
		c.entries.Remove(path)
		c.logger.Debug().Str("path", path).Msg("evicting stale record")
		return filesystem.Characteristics{}, false
	}

	// The cached record is still trustworthy.
	return cached, true
}

// Invalidate removes the record for the specified path, if present.
func (c *Cache) Invalidate(path string) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.entries.Remove(path)
}

// Len returns the number of records currently stored.
func (c *Cache) Len() int {
	c.lock.Lock()
	defer c.lock.Unlock()
	return c.entries.Len()
}

// envelope is the persisted representation of a cache.
type envelope struct {
	// InstanceID is the instance ID of the cache that wrote the file.
	InstanceID string `yaml:"instanceID"`
	// Entries are the persisted records, keyed by path.
	Entries map[string]filesystem.Characteristics `yaml:"entries"`
}

// Save writes the cache contents atomically to the specified path.
func (c *Cache) Save(path string) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	// Snapshot the contents.
	contents := make(map[string]filesystem.Characteristics, len(c.contents))
	for entryPath, characteristics := range c.contents {
		contents[entryPath] = characteristics
	}

	// Marshal and write atomically.
	return encoding.MarshalAndSaveYAML(path, &envelope{
		InstanceID: c.instanceID,
		Entries:    contents,
	})
}

// Load creates a cache with the specified capacity and populates it from the
// file at the specified path. A missing, malformed, or foreign file yields an
// empty cache rather than an error: persisted records are an optimization,
// so failure to recover them degrades to a cold cache.
func Load(path string, capacity int, logger zerolog.Logger) (*Cache, error) {
	// Create the empty cache first.
	result, err := New(capacity, logger)
	if err != nil {
		return nil, err
	}

	// Attempt to load persisted records.
	persisted := &envelope{}
	if err := encoding.LoadAndUnmarshalYAML(path, persisted); err != nil {
		result.logger.Debug().Err(err).Str("path", path).
			Msg("starting with cold cache")
		return result, nil
	}

	// Populate the cache.
	for entryPath, characteristics := range persisted.Entries {
		result.Store(entryPath, characteristics)
	}

	// Success.
	return result, nil
}
