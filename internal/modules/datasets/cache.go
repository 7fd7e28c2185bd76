package datasets

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"optionslab/internal/modules/options"
)

type cacheEntry struct {
	index   *options.Index
	modTime time.Time
}

// Cache holds built option indexes keyed by dataset name, invalidated
// by the backing file's modification time. Indexes are immutable after
// construction, so handing the same *options.Index to concurrent
// requests is safe.
type Cache struct {
	repo *Repository
	log  zerolog.Logger

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCache creates an index cache backed by the given repository.
func NewCache(repo *Repository, log zerolog.Logger) *Cache {
	return &Cache{
		repo:    repo,
		log:     log.With().Str("component", "index_cache").Logger(),
		entries: make(map[string]cacheEntry),
	}
}

// IndexFor returns the cached index for the dataset, rebuilding it when
// the file changed since the index was built.
func (c *Cache) IndexFor(name string) (*options.Index, error) {
	modTime, err := c.repo.ModTime(name)
	if err != nil {
		c.Evict(name)
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[name]
	c.mu.RUnlock()
	if ok && entry.modTime.Equal(modTime) {
		return entry.index, nil
	}

	ds, err := c.repo.Load(name)
	if err != nil {
		return nil, err
	}

	index := options.NewIndex(ds)

	c.mu.Lock()
	c.entries[name] = cacheEntry{index: index, modTime: modTime}
	c.mu.Unlock()

	c.log.Debug().
		Str("dataset", name).
		Int("records", ds.Metadata.RecordCount).
		Msg("Built option index")

	return index, nil
}

// Evict drops the cached index for one dataset.
func (c *Cache) Evict(name string) {
	c.mu.Lock()
	delete(c.entries, name)
	c.mu.Unlock()
}

// Prune drops entries whose backing file disappeared or changed. It is
// called by the rescan job so deleted datasets do not linger in memory.
func (c *Cache) Prune() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	pruned := 0
	for name, entry := range c.entries {
		modTime, err := c.repo.ModTime(name)
		if err != nil || !entry.modTime.Equal(modTime) {
			delete(c.entries, name)
			pruned++
		}
	}

	return pruned
}

// Len returns the number of cached indexes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
