// Package aggregation composes container and item probabilities into expected
// spawn counts per map.
package aggregation

import (
	"context"
	"sort"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/probability"
)

// Names resolves container template ids to the display names used for merging.
type Names interface {
	ContainerName(tpl string) string
}

// templateWeights sums static container probabilities per template id.
func templateWeights(ctx context.Context, static domain.StaticSpawns) map[string]float64 {
	weights := make(map[string]float64)
	for _, c := range static.StaticContainers {
		tpl := c.TemplateID()
		if tpl == "" {
			logger.FromContext(ctx).Warn(LogMsgContainerWithoutTpl, LogFieldContainer, c.Template.ID)
			continue
		}
		weights[tpl] += c.Probability
	}
	return weights
}

// AverageContainers sums static container probabilities per display name.
// Variants that share a name are cosmetic duplicates and are merged.
func AverageContainers(ctx context.Context, static domain.StaticSpawns, names Names) map[string]float64 {
	averages := make(map[string]float64)
	for tpl, w := range templateWeights(ctx, static) {
		averages[names.ContainerName(tpl)] += w
	}
	return averages
}

// AverageItemsPerContainer returns, per container display name, the
// probability of each item given that the container was chosen.
//
// When several templates share a name their distributions are mixed, weighted
// by each template's share of the name's placements. A template that is skipped
// (degenerate or without content) keeps its share of the denominator, so its
// placements credit no items. A group whose templates are never placed is
// mixed uniformly.
func AverageItemsPerContainer(ctx context.Context, content domain.ContainerContent, static domain.StaticSpawns, names Names) map[string]map[string]float64 {
	log := logger.FromContext(ctx)
	weights := templateWeights(ctx, static)

	placed := make(map[string]float64)
	for _, tpl := range sortedKeys(weights) {
		placed[names.ContainerName(tpl)] += weights[tpl]
	}

	type member struct {
		weight float64
		items  map[string]float64
	}
	groups := make(map[string][]member)

	// sorted for a deterministic float summation order
	for _, tpl := range sortedKeys(content) {
		outcomes, err := probability.Normalize(probability.FromItemWeights(content[tpl].ItemDistribution))
		if err != nil {
			log.Warn(LogMsgDegenerateDistribution, LogFieldContainer, tpl, LogFieldError, err)
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonDegenerateDistribution).Inc()
			continue
		}
		name := names.ContainerName(tpl)
		groups[name] = append(groups[name], member{weight: weights[tpl], items: probability.ToMap(outcomes)})
	}

	result := make(map[string]map[string]float64, len(groups))
	for name, members := range groups {
		total := placed[name]
		mixed := make(map[string]float64)
		for _, m := range members {
			share := 1 / float64(len(members))
			if total > 0 {
				share = m.weight / total
			}
			for item, p := range m.items {
				mixed[item] += share * p
			}
		}
		result[name] = mixed
	}
	return result
}

// ContainerDetail describes one merged container of a map.
type ContainerDetail struct {
	Name              string
	Weight            float64 // expected number of placements
	ExpectedItemCount float64 // mean of the item count distribution, 0 when unknown
}

// ContainerDetails lists the merged containers of a map, heaviest first.
func ContainerDetails(ctx context.Context, static domain.StaticSpawns, content domain.ContainerContent, names Names) []ContainerDetail {
	averages := AverageContainers(ctx, static, names)
	weights := templateWeights(ctx, static)

	counts := make(map[string]float64)
	countWeights := make(map[string]float64)
	for tpl, loot := range content {
		expected, err := probability.ExpectedCount(probability.FromCountWeights(loot.ItemCountDistribution))
		if err != nil {
			continue
		}
		name := names.ContainerName(tpl)
		w := weights[tpl]
		counts[name] += expected * w
		countWeights[name] += w
	}

	details := make([]ContainerDetail, 0, len(averages))
	for name, w := range averages {
		d := ContainerDetail{Name: name, Weight: w}
		if cw := countWeights[name]; cw > 0 {
			d.ExpectedItemCount = counts[name] / cw
		}
		details = append(details, d)
	}
	sort.SliceStable(details, func(i, j int) bool {
		if details[i].Weight != details[j].Weight {
			return details[i].Weight > details[j].Weight
		}
		return details[i].Name < details[j].Name
	})
	return details
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
