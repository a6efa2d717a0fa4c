// Package store holds the raw data of one session together with the spawn
// table derived from it, and notifies subscribers when either changes.
package store

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/osse101/lootmap/internal/aggregation"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/event"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/naming"
	"github.com/osse101/lootmap/internal/projection"
	"github.com/osse101/lootmap/internal/tierlist"
)

// Options configures a Session.
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
}

// Snapshot is a consistent view of every slot at one generation. Values are
// shared with the session and must not be modified.
type Snapshot struct {
	Generation       uint64
	Translations     domain.Translations
	StaticSpawns     map[domain.Location]domain.StaticSpawns
	ContainerContent map[domain.Location]domain.ContainerContent
	LooseLoot        map[domain.Location]domain.LooseLoot
	Items            map[string]domain.ItemMetadata
	Maps             map[domain.DisplayLocation]domain.MapMetadataCollection
	Spawns           domain.AggregatedSpawnTable
	Skipped          []domain.Location
}

// Session owns the data of one app session. Every setter replaces a whole
// slot, so readers never see a partial update. Slots that were never set are
// nil, meaning "not loaded yet".
type Session struct {
	mu    sync.RWMutex
	bus   event.Bus
	cache *spawnCache

	generation   uint64
	translations domain.Translations
	names        naming.Resolver
	static       map[domain.Location]domain.StaticSpawns
	content      map[domain.Location]domain.ContainerContent
	loose        map[domain.Location]domain.LooseLoot
	items        map[string]domain.ItemMetadata
	maps         map[domain.DisplayLocation]domain.MapMetadataCollection
	spawns       aggregation.Result
}

// NewSession creates an empty session. A nil bus gets an in-memory one.
func NewSession(bus event.Bus, opts Options) *Session {
	if bus == nil {
		bus = event.NewMemoryBus()
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultCacheSize
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	return &Session{
		bus:   bus,
		cache: newSpawnCache(opts.CacheSize, opts.CacheTTL),
		names: naming.NewResolver(nil),
	}
}

// Bus returns the bus the session publishes on.
func (s *Session) Bus() event.Bus { return s.bus }

// Subscribe registers h for events of type t.
func (s *Session) Subscribe(t event.Type, h event.Handler) { s.bus.Subscribe(t, h) }

// SetTranslations replaces the translation table and the name resolver built from it.
func (s *Session) SetTranslations(ctx context.Context, t domain.Translations) {
	s.update(ctx, event.TranslationsChanged, true, func() {
		s.translations = t
		s.names = naming.NewResolver(t)
	})
}

// SetStaticSpawns replaces the static container tables of all maps.
func (s *Session) SetStaticSpawns(ctx context.Context, spawns map[domain.Location]domain.StaticSpawns) {
	s.update(ctx, event.StaticContainersChanged, true, func() { s.static = spawns })
}

// SetContainerContent replaces the container content tables of all maps.
func (s *Session) SetContainerContent(ctx context.Context, content map[domain.Location]domain.ContainerContent) {
	s.update(ctx, event.ContainerContentChanged, true, func() { s.content = content })
}

// SetLooseLoot replaces the loose loot of all maps.
func (s *Session) SetLooseLoot(ctx context.Context, loot map[domain.Location]domain.LooseLoot) {
	s.update(ctx, event.LooseLootChanged, false, func() { s.loose = loot })
}

// SetItemMetadata replaces the item metadata table.
func (s *Session) SetItemMetadata(ctx context.Context, items map[string]domain.ItemMetadata) {
	s.update(ctx, event.ItemMetadataChanged, false, func() { s.items = items })
}

// SetMapMetadata replaces the map metadata table.
func (s *Session) SetMapMetadata(ctx context.Context, meta map[domain.DisplayLocation]domain.MapMetadataCollection) {
	s.update(ctx, event.MapMetadataChanged, false, func() { s.maps = meta })
}

// update applies set under the write lock, bumps the generation and, when
// the change feeds the spawn table, recomputes it. Events are published after
// the lock is released.
func (s *Session) update(ctx context.Context, t event.Type, affectsSpawns bool, set func()) {
	s.mu.Lock()
	set()
	s.generation++
	gen := s.generation
	events := []event.Event{event.NewDataEvent(t, gen)}
	if affectsSpawns {
		s.recomputeLocked(ctx)
		events = append(events, event.NewSpawnsRecomputedEvent(gen, s.spawns.Maps(), s.spawns.Skipped))
	}
	s.cache.Clear()
	s.mu.Unlock()

	for _, evt := range events {
		if err := s.bus.Publish(ctx, evt); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, LogFieldEvent, evt.Type, LogFieldError, err)
		}
	}
}

// recomputeLocked rebuilds the spawn table. Until both container slots have
// loaded the table stays empty and nothing is reported as skipped.
func (s *Session) recomputeLocked(ctx context.Context) {
	if s.static == nil || s.content == nil {
		s.spawns = aggregation.Result{Table: domain.AggregatedSpawnTable{}}
		return
	}
	s.spawns = aggregation.Aggregate(ctx, aggregation.Input{
		StaticSpawns:     s.static,
		ContainerContent: s.content,
	}, s.names)
	logger.FromContext(ctx).Debug(LogMsgSpawnsRecomputed,
		LogFieldGeneration, s.generation,
		LogFieldMaps, len(s.spawns.Table),
		LogFieldSkipped, len(s.spawns.Skipped))
}

// Generation increases by one on every slot change.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Snapshot returns every slot at the current generation.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Generation:       s.generation,
		Translations:     s.translations,
		StaticSpawns:     s.static,
		ContainerContent: s.content,
		LooseLoot:        s.loose,
		Items:            s.items,
		Maps:             s.maps,
		Spawns:           s.spawns.Table,
		Skipped:          s.spawns.Skipped,
	}
}

// Names returns the resolver for the current translations.
func (s *Session) Names() naming.Resolver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.names
}

// CombinedSpawns sums the spawn tables of the selected maps. Results are
// cached per selection until the next slot change; callers get their own
// copy. ok is false until both container slots have loaded.
func (s *Session) CombinedSpawns(selection []domain.Location) (domain.SpawnTable, bool) {
	s.mu.RLock()
	gen, table := s.generation, s.spawns.Table
	loaded := s.static != nil && s.content != nil
	s.mu.RUnlock()

	if !loaded {
		return nil, false
	}
	if cached, ok := s.cache.Get(gen, selection); ok {
		return maps.Clone(cached), true
	}
	combined := aggregation.Combine(table, selection)
	s.cache.Set(gen, selection, combined)
	return maps.Clone(combined), true
}

// Tiers ranks the items of the selected maps. ok is false until the
// container slots and the item metadata have loaded.
func (s *Session) Tiers(ctx context.Context, selection []domain.Location, opts tierlist.Options) ([]tierlist.Bucket, bool) {
	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()
	if items == nil {
		return nil, false
	}

	combined, ok := s.CombinedSpawns(selection)
	if !ok {
		return nil, false
	}
	return tierlist.Rank(ctx, combined, items, opts), true
}

// ContainersForItem lists the containers of one map that can hold item. ok
// is false while the map's container data is not loaded.
func (s *Session) ContainersForItem(ctx context.Context, loc domain.Location, item string) ([]aggregation.ContainerShare, bool) {
	s.mu.RLock()
	static, hasStatic := s.static[loc]
	content, hasContent := s.content[loc]
	names := s.names
	s.mu.RUnlock()

	if !hasStatic || !hasContent {
		return nil, false
	}
	return aggregation.ContainersForItem(ctx, content, static, names)[item], true
}

// ContainerDetails lists the merged containers of one map.
func (s *Session) ContainerDetails(ctx context.Context, loc domain.Location) ([]aggregation.ContainerDetail, bool) {
	s.mu.RLock()
	static, hasStatic := s.static[loc]
	content, hasContent := s.content[loc]
	names := s.names
	s.mu.RUnlock()

	if !hasStatic || !hasContent {
		return nil, false
	}
	return aggregation.ContainerDetails(ctx, static, content, names), true
}

// LooseSpawns returns the expected loose spawn count per item for one map.
func (s *Session) LooseSpawns(loc domain.Location) (domain.SpawnTable, bool) {
	s.mu.RLock()
	loot, ok := s.loose[loc]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return aggregation.LooseSpawns(loot), true
}

// ProjectedSpawnpoints places the loose loot of loc on its map image fitted
// into container. ok is false until the loot, the map metadata and the
// container size are all available.
func (s *Session) ProjectedSpawnpoints(loc domain.Location, container domain.Dimensions, selected []string) ([]projection.ProjectedSpawnpoint, bool) {
	s.mu.RLock()
	loot, hasLoot := s.loose[loc]
	collection, hasMeta := s.maps[loc.Display()]
	items := s.items
	s.mu.RUnlock()

	if !hasLoot || !hasMeta {
		return nil, false
	}
	meta, ok := collection.Primary()
	if !ok {
		return nil, false
	}
	return projection.ProjectSpawnpoints(meta, loot.Spawnpoints, container, selected, items)
}

// MapLayout returns the fitted image layout of loc's map in container.
func (s *Session) MapLayout(loc domain.Location, container domain.Dimensions) (projection.Layout, bool) {
	s.mu.RLock()
	collection, ok := s.maps[loc.Display()]
	s.mu.RUnlock()

	if !ok {
		return projection.Layout{}, false
	}
	meta, ok := collection.Primary()
	if !ok {
		return projection.Layout{}, false
	}
	return projection.NewLayout(meta, container)
}
