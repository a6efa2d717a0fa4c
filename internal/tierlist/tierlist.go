// Package tierlist buckets items into rarity tiers by expected spawn count.
package tierlist

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
)

// Tier is one rarity bucket. Percentile positions the cutoff between the
// largest and smallest expected count: 0 is the max, 1 is the min.
type Tier struct {
	Name       string
	Color      string
	Percentile float64
}

// DefaultTiers returns the standard five tiers, most common first.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "Common", Color: "#374151", Percentile: 0.85},
		{Name: "Uncommon", Color: "#047857", Percentile: 0.95},
		{Name: "Rare", Color: "#0369a1", Percentile: 0.975},
		{Name: "Epic", Color: "#a21caf", Percentile: 0.985},
		{Name: "Legendary", Color: "#a16207", Percentile: 1},
	}
}

// Options controls filtering and bucketing.
type Options struct {
	MinPricePerSlot   float64
	AllowedCategories []domain.ItemType
	// MaxItemsPerTier truncates every tier; 0 keeps everything.
	MaxItemsPerTier int
	Tiers           []Tier
}

// DefaultOptions returns the filters used when the caller sets none.
func DefaultOptions() Options {
	return Options{
		MinPricePerSlot: DefaultMinPricePerSlot,
		AllowedCategories: []domain.ItemType{
			domain.ItemTypeBarter,
			domain.ItemTypeKeys,
			domain.ItemTypeMeds,
			domain.ItemTypeProvisions,
			domain.ItemTypeMods,
		},
		MaxItemsPerTier: DefaultMaxItemsPerTier,
		Tiers:           DefaultTiers(),
	}
}

// Entry is an item with its expected count and price density.
type Entry struct {
	Item          domain.ItemMetadata
	ExpectedCount float64
	PricePerSlot  float64
}

// Bucket holds the items of one tier, most valuable per slot first.
type Bucket struct {
	Tier  Tier
	Items []Entry
}

// Join attaches metadata to every item of a spawn table. Items without
// metadata are unresolved references and are dropped. The result is ordered
// by item id so later stable sorts are deterministic.
func Join(ctx context.Context, counts domain.SpawnTable, meta map[string]domain.ItemMetadata) []Entry {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		m, ok := meta[id]
		if !ok {
			log.Warn(LogMsgUnresolvedItem, LogFieldItem, id,
				LogFieldError, fmt.Errorf("%w: %s", domain.ErrUnresolvedReference, id))
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonUnresolvedReference).Inc()
			continue
		}
		if m.Slots() <= 0 {
			log.Warn(LogMsgInvalidMetadata, LogFieldItem, id)
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonInvalidMetadata).Inc()
			continue
		}
		entries = append(entries, Entry{
			Item:          m,
			ExpectedCount: counts[id],
			PricePerSlot:  math.Round(m.LastLowPrice / float64(m.Slots())),
		})
	}
	return entries
}

// Filter keeps the entries priced at or above the minimum per slot that carry
// at least one allowed category.
func Filter(entries []Entry, opts Options) []Entry {
	allowed := make(map[domain.ItemType]struct{}, len(opts.AllowedCategories))
	for _, c := range opts.AllowedCategories {
		allowed[c] = struct{}{}
	}

	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.PricePerSlot < opts.MinPricePerSlot || !e.Item.HasAnyType(allowed) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// Cutoffs returns max - (max-min)*percentile for every tier, in tier order.
// Cutoffs are floored at min so rounding never drops the rarest entry.
func Cutoffs(entries []Entry, tiers []Tier) []float64 {
	if len(entries) == 0 {
		return nil
	}
	lo, hi := entries[0].ExpectedCount, entries[0].ExpectedCount
	for _, e := range entries[1:] {
		lo = math.Min(lo, e.ExpectedCount)
		hi = math.Max(hi, e.ExpectedCount)
	}
	cutoffs := make([]float64, len(tiers))
	for i, t := range tiers {
		cutoffs[i] = math.Max(hi-(hi-lo)*t.Percentile, lo)
	}
	return cutoffs
}

// Build assigns each entry to the first tier whose cutoff it reaches, then
// orders every tier by price per slot and truncates it. Entries are not
// filtered here; call Filter first. Ties keep their input order.
func Build(entries []Entry, opts Options) []Bucket {
	buckets := make([]Bucket, len(opts.Tiers))
	for i, t := range opts.Tiers {
		buckets[i] = Bucket{Tier: t}
	}
	if len(entries) == 0 {
		return buckets
	}

	cutoffs := Cutoffs(entries, opts.Tiers)

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpectedCount > sorted[j].ExpectedCount
	})

	for _, e := range sorted {
		for i, cutoff := range cutoffs {
			if e.ExpectedCount >= cutoff {
				buckets[i].Items = append(buckets[i].Items, e)
				break
			}
		}
	}

	for i := range buckets {
		items := buckets[i].Items
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].PricePerSlot > items[b].PricePerSlot
		})
		if opts.MaxItemsPerTier > 0 && len(items) > opts.MaxItemsPerTier {
			buckets[i].Items = items[:opts.MaxItemsPerTier]
		}
	}
	return buckets
}

// Rank runs Join, Filter and Build in one go.
func Rank(ctx context.Context, counts domain.SpawnTable, meta map[string]domain.ItemMetadata, opts Options) []Bucket {
	entries := Filter(Join(ctx, counts, meta), opts)
	buckets := Build(entries, opts)
	logger.FromContext(ctx).Debug(LogMsgTiersBuilt, LogFieldEntries, len(entries), LogFieldTiers, len(buckets))
	return buckets
}
