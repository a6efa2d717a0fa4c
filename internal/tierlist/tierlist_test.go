package tierlist

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/metrics"
)

func item(id string, w, h int, price float64, types ...domain.ItemType) domain.ItemMetadata {
	return domain.ItemMetadata{ID: id, Name: id, Width: w, Height: h, LastLowPrice: price, Types: types}
}

func entry(id string, count, pricePerSlot float64) Entry {
	return Entry{Item: item(id, 1, 1, pricePerSlot, domain.ItemTypeBarter), ExpectedCount: count, PricePerSlot: pricePerSlot}
}

func ids(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Item.ID
	}
	return out
}

func TestJoin(t *testing.T) {
	counts := domain.SpawnTable{"ledx": 0.5, "gpu": 0.1, "ghost": 3, "flat": 1}
	meta := map[string]domain.ItemMetadata{
		"ledx": item("ledx", 1, 1, 900000, domain.ItemTypeMeds),
		"gpu":  item("gpu", 2, 3, 100001, domain.ItemTypeBarter),
		"flat": item("flat", 0, 1, 10, domain.ItemTypeBarter),
	}

	before := testutil.ToFloat64(metrics.RecordsSkipped.WithLabelValues(metrics.ReasonUnresolvedReference))
	got := Join(context.Background(), counts, meta)
	after := testutil.ToFloat64(metrics.RecordsSkipped.WithLabelValues(metrics.ReasonUnresolvedReference))

	require.Equal(t, []string{"gpu", "ledx"}, ids(got))
	assert.Equal(t, 16667.0, got[0].PricePerSlot, "price per slot is rounded")
	assert.Equal(t, 0.1, got[0].ExpectedCount)
	assert.Equal(t, 900000.0, got[1].PricePerSlot)
	assert.Equal(t, before+1, after)
}

func TestFilter(t *testing.T) {
	opts := Options{MinPricePerSlot: 100, AllowedCategories: []domain.ItemType{domain.ItemTypeKeys, domain.ItemTypeMeds}}

	tests := []struct {
		name string
		in   Entry
		keep bool
	}{
		{"allowed and priced", Entry{Item: item("a", 1, 1, 0, domain.ItemTypeKeys), PricePerSlot: 100}, true},
		{"one of many categories", Entry{Item: item("b", 1, 1, 0, domain.ItemTypeGun, domain.ItemTypeMeds), PricePerSlot: 500}, true},
		{"too cheap", Entry{Item: item("c", 1, 1, 0, domain.ItemTypeKeys), PricePerSlot: 99}, false},
		{"wrong category", Entry{Item: item("d", 1, 1, 0, domain.ItemTypeGun), PricePerSlot: 1000}, false},
		{"no category", Entry{Item: item("e", 1, 1, 0), PricePerSlot: 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter([]Entry{tt.in}, opts)
			if tt.keep {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestBuild_AssignsFirstMatchingTier(t *testing.T) {
	opts := Options{Tiers: []Tier{{Name: "Common", Percentile: 0.5}, {Name: "Rare", Percentile: 1}}}
	entries := []Entry{
		entry("mid", 5, 10),
		entry("low", 2, 50),
		entry("top", 10, 1),
		entry("high", 8, 30),
		entry("floor", 0, 5),
	}

	buckets := Build(entries, opts)

	require.Len(t, buckets, 2)
	assert.Equal(t, "Common", buckets[0].Tier.Name)
	assert.Equal(t, []string{"high", "mid", "top"}, ids(buckets[0].Items), "sorted by price per slot")
	assert.Equal(t, []string{"low", "floor"}, ids(buckets[1].Items))
}

func TestBuild_TruncatesTiers(t *testing.T) {
	opts := Options{MaxItemsPerTier: 2, Tiers: []Tier{{Name: "All", Percentile: 1}}}
	entries := []Entry{entry("a", 1, 1), entry("b", 2, 3), entry("c", 3, 2)}

	buckets := Build(entries, opts)

	assert.Equal(t, []string{"b", "c"}, ids(buckets[0].Items))
}

func TestBuild_TiesKeepInputOrder(t *testing.T) {
	opts := Options{Tiers: []Tier{{Name: "All", Percentile: 1}}}
	entries := []Entry{entry("first", 1, 7), entry("second", 1, 7), entry("third", 1, 7)}

	buckets := Build(entries, opts)

	assert.Equal(t, []string{"first", "second", "third"}, ids(buckets[0].Items))
}

func TestBuild_Empty(t *testing.T) {
	buckets := Build(nil, DefaultOptions())

	require.Len(t, buckets, len(DefaultTiers()))
	for _, b := range buckets {
		assert.Empty(t, b.Items)
	}
}

func TestBuild_TierMonotonicity(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxItemsPerTier = 0

	entries := make([]Entry, 0, 200)
	for i := 0; i < 200; i++ {
		// spread counts unevenly so several tiers get members
		count := float64((i*37)%200) * float64(i%7+1) / 7
		entries = append(entries, entry(fmt.Sprintf("item-%03d", i), count, float64((i*13)%97)))
	}

	buckets := Build(entries, opts)

	total := 0
	prevMin := -1.0
	for _, b := range buckets {
		total += len(b.Items)
		if len(b.Items) == 0 {
			continue
		}
		lo, hi := b.Items[0].ExpectedCount, b.Items[0].ExpectedCount
		for _, e := range b.Items {
			lo = min(lo, e.ExpectedCount)
			hi = max(hi, e.ExpectedCount)
		}
		if prevMin >= 0 {
			assert.LessOrEqual(t, hi, prevMin, b.Tier.Name)
		}
		prevMin = lo
	}
	assert.Equal(t, len(entries), total, "the last tier's cutoff is the minimum, so nothing is dropped")
}

func TestCutoffs(t *testing.T) {
	entries := []Entry{entry("a", 2, 0), entry("b", 12, 0)}

	got := Cutoffs(entries, DefaultTiers())

	require.Len(t, got, 5)
	assert.InDelta(t, 12-10*0.85, got[0], 1e-9)
	assert.InDelta(t, 2, got[4], 1e-9)
	assert.Nil(t, Cutoffs(nil, DefaultTiers()))
}

func TestRank(t *testing.T) {
	counts := domain.SpawnTable{"ledx": 0.01, "salewa": 2, "bolts": 5}
	meta := map[string]domain.ItemMetadata{
		"ledx":   item("ledx", 1, 1, 1_000_000, domain.ItemTypeMeds),
		"salewa": item("salewa", 1, 2, 40000, domain.ItemTypeMeds),
		"bolts":  item("bolts", 1, 1, 5000, domain.ItemTypeBarter),
	}

	buckets := Rank(context.Background(), counts, meta, DefaultOptions())

	require.Len(t, buckets, 5)
	assert.Equal(t, []string{"salewa"}, ids(buckets[0].Items))
	assert.Equal(t, []string{"ledx"}, ids(buckets[4].Items))
	for _, b := range buckets[1:4] {
		assert.Empty(t, b.Items)
	}
}
