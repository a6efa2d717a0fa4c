package aggregation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/naming"
)

func TestAverageItemsPerContainer_MixesVariantsByPlacementWeight(t *testing.T) {
	static := staticOf(placement{"cratesA", 3}, placement{"cratesB", 1})
	_, content, names := crateFixture()

	got := AverageItemsPerContainer(context.Background(), content, static, names)

	require.Contains(t, got, "Crate")
	assert.InDelta(t, 0.75*0.75+0.25*1.0, got["Crate"]["X"], 1e-12)
	assert.InDelta(t, 0.75*0.25, got["Crate"]["Y"], 1e-12)
}

func TestAverageItemsPerContainer_UnplacedVariantsMixUniformly(t *testing.T) {
	_, content, names := crateFixture()

	got := AverageItemsPerContainer(context.Background(), content, domain.StaticSpawns{}, names)

	assert.InDelta(t, 0.875, got["Crate"]["X"], 1e-12)
	assert.InDelta(t, 0.125, got["Crate"]["Y"], 1e-12)
}

func TestContainersForItem(t *testing.T) {
	static := staticOf(placement{"jacket", 1}, placement{"safe", 1})
	content := domain.ContainerContent{
		"jacket": lootOf(w("key", 1), w("matches", 3)),
		"safe":   lootOf(w("key", 1), w("roler", 1)),
	}
	names := naming.NewResolver(domain.Translations{"jacket": "Jacket", "safe": "Safe"})

	got := ContainersForItem(context.Background(), content, static, names)

	assert.Equal(t, []ContainerShare{
		{Container: "Safe", Probability: 0.5},
		{Container: "Jacket", Probability: 0.25},
	}, got["key"])
	assert.Equal(t, []ContainerShare{{Container: "Jacket", Probability: 0.75}}, got["matches"])
	assert.NotContains(t, got, "gpu")
}

func TestContainerDetails(t *testing.T) {
	static := staticOf(placement{"cratesA", 0.5}, placement{"cratesB", 0.5}, placement{"safe", 0.2})
	content := domain.ContainerContent{
		"cratesA": {
			ItemCountDistribution: []domain.CountWeight{{Count: 1, RelativeProbability: 1}, {Count: 3, RelativeProbability: 1}},
			ItemDistribution:      []domain.ItemWeight{w("X", 1)},
		},
		"cratesB": {
			ItemCountDistribution: []domain.CountWeight{{Count: 4, RelativeProbability: 1}},
			ItemDistribution:      []domain.ItemWeight{w("X", 1)},
		},
		"safe": lootOf(w("roler", 1)),
	}
	names := naming.NewResolver(domain.Translations{"cratesA": "Crate", "cratesB": "Crate"})

	got := ContainerDetails(context.Background(), static, content, names)

	require.Len(t, got, 2)
	assert.Equal(t, "Crate", got[0].Name)
	assert.InDelta(t, 1.0, got[0].Weight, 1e-12)
	assert.InDelta(t, (2.0+4.0)/2, got[0].ExpectedItemCount, 1e-12)
	assert.Equal(t, "safe", got[1].Name)
	assert.Zero(t, got[1].ExpectedItemCount, "no count distribution means unknown")
}
