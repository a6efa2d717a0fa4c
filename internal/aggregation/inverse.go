package aggregation

import (
	"context"
	"sort"

	"github.com/osse101/lootmap/internal/domain"
)

// ContainerShare is the chance of an item given that a container was chosen.
type ContainerShare struct {
	Container   string
	Probability float64
}

// ContainersForItem inverts AverageItemsPerContainer: item -> containers that
// can hold it, most likely first.
func ContainersForItem(ctx context.Context, content domain.ContainerContent, static domain.StaticSpawns, names Names) map[string][]ContainerShare {
	inverted := make(map[string][]ContainerShare)
	for container, items := range AverageItemsPerContainer(ctx, content, static, names) {
		for item, p := range items {
			inverted[item] = append(inverted[item], ContainerShare{Container: container, Probability: p})
		}
	}
	for _, shares := range inverted {
		sort.Slice(shares, func(i, j int) bool {
			if shares[i].Probability != shares[j].Probability {
				return shares[i].Probability > shares[j].Probability
			}
			return shares[i].Container < shares[j].Container
		})
	}
	return inverted
}
