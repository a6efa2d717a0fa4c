package store

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/lootmap/internal/domain"
)

// cachedSpawnEntry wraps a combined table with the data generation it was
// computed from.
type cachedSpawnEntry struct {
	Version    string
	Generation uint64
	Table      domain.SpawnTable
	CachedAt   time.Time
}

// spawnCache holds combined spawn tables per map selection. Entries from an
// older generation are never returned.
type spawnCache struct {
	lru *expirable.LRU[string, *cachedSpawnEntry]
}

func newSpawnCache(size int, ttl time.Duration) *spawnCache {
	return &spawnCache{
		lru: expirable.NewLRU[string, *cachedSpawnEntry](size, nil, ttl),
	}
}

// selectionKey is order and duplicate insensitive.
func selectionKey(generation uint64, selection []domain.Location) string {
	seen := make(map[domain.Location]struct{}, len(selection))
	locs := make([]string, 0, len(selection))
	for _, loc := range selection {
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		locs = append(locs, string(loc))
	}
	sort.Strings(locs)
	return strconv.FormatUint(generation, 10) + cacheKeyGenerationSeparator + strings.Join(locs, cacheKeyLocationSeparator)
}

// Get returns the table for selection at generation, if cached.
func (c *spawnCache) Get(generation uint64, selection []domain.Location) (domain.SpawnTable, bool) {
	key := selectionKey(generation, selection)
	entry, found := c.lru.Get(key)
	if !found {
		return nil, false
	}
	if entry.Version != CacheSchemaVersion || entry.Generation != generation {
		c.lru.Remove(key)
		return nil, false
	}
	return entry.Table, true
}

// Set stores the table for selection at generation.
func (c *spawnCache) Set(generation uint64, selection []domain.Location, table domain.SpawnTable) {
	c.lru.Add(selectionKey(generation, selection), &cachedSpawnEntry{
		Version:    CacheSchemaVersion,
		Generation: generation,
		Table:      table,
		CachedAt:   time.Now(),
	})
}

// Len returns the number of cached selections.
func (c *spawnCache) Len() int {
	return c.lru.Len()
}

// Clear removes all entries.
func (c *spawnCache) Clear() {
	c.lru.Purge()
}
