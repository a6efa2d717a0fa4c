package aggregation

import (
	"context"
	"fmt"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/probability"
)

// RawLooseLoot is the looseLoot.json layout. spawnpointCount and
// spawnpointsForced are not read.
type RawLooseLoot struct {
	Spawnpoints []RawSpawnpoint `json:"spawnpoints"`
}

// RawSpawnpoint is one spawnpoint of RawLooseLoot.
type RawSpawnpoint struct {
	Probability      float64                `json:"probability"`
	Template         RawSpawnpointTemplate  `json:"template"`
	ItemDistribution []RawComposedKeyWeight `json:"itemDistribution"`
}

// RawSpawnpointTemplate carries the position (y is up) and the candidate items.
type RawSpawnpointTemplate struct {
	ID       string `json:"Id"`
	Position struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
		Z float64 `json:"z"`
	} `json:"Position"`
	Items []domain.TemplateItem `json:"Items"`
}

// RawComposedKeyWeight references a template item by its instance id.
type RawComposedKeyWeight struct {
	ComposedKey struct {
		Key string `json:"key"`
	} `json:"composedKey"`
	RelativeProbability float64 `json:"relativeProbability"`
}

// MapLooseLoot resolves raw spawnpoints into world-space spawnpoints whose item
// probabilities are joint (already multiplied by the spawnpoint probability).
// The vertical axis is moved to Height and world z becomes y.
func MapLooseLoot(ctx context.Context, raw RawLooseLoot) domain.LooseLoot {
	log := logger.FromContext(ctx)
	out := domain.LooseLoot{Spawnpoints: make([]domain.Spawnpoint, 0, len(raw.Spawnpoints))}

	for _, sp := range raw.Spawnpoints {
		entries := make([]probability.Entry[string], len(sp.ItemDistribution))
		for i, w := range sp.ItemDistribution {
			entries[i] = probability.Entry[string]{Key: w.ComposedKey.Key, RelativeWeight: w.RelativeProbability}
		}

		tplByID := make(map[string]string, len(sp.Template.Items))
		for _, item := range sp.Template.Items {
			tplByID[item.ID] = item.Tpl
		}

		outcomes, err := probability.Normalize(entries)
		if err != nil {
			log.Warn(LogMsgDegenerateDistribution, LogFieldSpawnpoint, sp.Template.ID, LogFieldError, err)
			metrics.RecordsSkipped.WithLabelValues(metrics.ReasonDegenerateDistribution).Inc()
			continue
		}

		items := make([]domain.SpawnpointItem, 0, len(outcomes))
		for _, o := range outcomes {
			tpl, ok := tplByID[o.Key]
			if !ok {
				log.Warn(LogMsgUnresolvedSpawnItem,
					LogFieldSpawnpoint, sp.Template.ID,
					LogFieldItem, o.Key,
					LogFieldError, fmt.Errorf("%w: %s", domain.ErrUnresolvedReference, o.Key))
				metrics.RecordsSkipped.WithLabelValues(metrics.ReasonUnresolvedReference).Inc()
				continue
			}
			items = append(items, domain.SpawnpointItem{Tpl: tpl, Probability: o.Probability * sp.Probability})
		}

		pos := sp.Template.Position
		out.Spawnpoints = append(out.Spawnpoints, domain.Spawnpoint{
			Position: domain.PointWithHeight{
				Point:  domain.Point{X: pos.X, Y: pos.Z},
				Height: pos.Y,
			},
			Probability: sp.Probability,
			Items:       items,
		})
	}
	return out
}

// LooseSpawns sums joint item probabilities over all spawnpoints of a map,
// giving the expected number of loose spawns per item.
func LooseSpawns(loot domain.LooseLoot) domain.SpawnTable {
	table := make(domain.SpawnTable)
	for _, sp := range loot.Spawnpoints {
		for _, item := range sp.Items {
			table[item.Tpl] += item.Probability
		}
	}
	return table
}
