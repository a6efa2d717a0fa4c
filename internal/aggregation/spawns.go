package aggregation

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
)

// Input is the raw data an aggregation pass reads. A map present in only one
// table is skipped; a map present in neither was never requested.
type Input struct {
	StaticSpawns     map[domain.Location]domain.StaticSpawns
	ContainerContent map[domain.Location]domain.ContainerContent
}

// Result is the outcome of one aggregation pass.
type Result struct {
	Table   domain.AggregatedSpawnTable
	Skipped []domain.Location
}

// Maps returns the locations that have a spawn table, sorted.
func (r Result) Maps() []domain.Location {
	maps := make([]domain.Location, 0, len(r.Table))
	for loc := range r.Table {
		maps = append(maps, loc)
	}
	sort.Slice(maps, func(i, j int) bool { return maps[i] < maps[j] })
	return maps
}

// SpawnsForMap computes the expected spawn count of every item on one map:
// sum over containers of container weight times item-given-container probability.
func SpawnsForMap(ctx context.Context, static domain.StaticSpawns, content domain.ContainerContent, names Names) domain.SpawnTable {
	log := logger.FromContext(ctx)

	averageContainers := AverageContainers(ctx, static, names)
	itemsPerContainer := AverageItemsPerContainer(ctx, content, static, names)

	containers := make([]string, 0, len(averageContainers))
	for name := range averageContainers {
		containers = append(containers, name)
	}
	sort.Strings(containers)

	table := make(domain.SpawnTable)
	for _, container := range containers {
		items, ok := itemsPerContainer[container]
		if !ok {
			log.Warn(LogMsgMissingContainerItems, LogFieldContainer, container)
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonMissingContainerItems).Inc()
			continue
		}
		weight := averageContainers[container]
		for item, p := range items {
			table[item] += p * weight
		}
	}
	return table
}

// Aggregate builds the spawn table of every location that has raw data. Maps
// with only one of their two tables are left out and reported in Result.Skipped.
func Aggregate(ctx context.Context, in Input, names Names) Result {
	log := logger.FromContext(ctx)
	res := Result{Table: make(domain.AggregatedSpawnTable)}

	for _, loc := range domain.AllLocations() {
		static, hasStatic := in.StaticSpawns[loc]
		content, hasContent := in.ContainerContent[loc]
		if !hasStatic && !hasContent {
			continue
		}
		if !hasStatic || !hasContent {
			log.Warn(LogMsgMissingMapData,
				LogFieldMap, loc,
				LogFieldHasStatic, hasStatic,
				LogFieldHasContent, hasContent,
				LogFieldError, fmt.Errorf("%w: %s", domain.ErrMissingMapData, loc))
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonMissingMapData).Inc()
			res.Skipped = append(res.Skipped, loc)
			continue
		}
		res.Table[loc] = SpawnsForMap(ctx, static, content, names)
	}

	metrics.AggregationPasses.Inc()
	log.Debug(LogMsgAggregationComplete, LogFieldMaps, len(res.Table), LogFieldSkipped, len(res.Skipped))
	return res
}

// Combine sums the spawn tables of the selected maps. Duplicate selections
// count once; maps without a table contribute nothing.
func Combine(table domain.AggregatedSpawnTable, selection []domain.Location) domain.SpawnTable {
	seen := make(map[domain.Location]struct{}, len(selection))
	combined := make(domain.SpawnTable)
	for _, loc := range selection {
		if _, dup := seen[loc]; dup {
			continue
		}
		seen[loc] = struct{}{}
		for item, count := range table[loc] {
			combined[item] += count
		}
	}
	return combined
}
