package projection

import "github.com/osse101/lootmap/internal/domain"

// ProjectedItem is a spawnpoint item with its icon resolved.
type ProjectedItem struct {
	domain.SpawnpointItem
	IconLink string
}

// ProjectedSpawnpoint is a spawnpoint placed on the fitted map image.
type ProjectedSpawnpoint struct {
	Position    domain.PointWithHeight
	Probability float64
	Items       []ProjectedItem
	Screen      domain.Point
	// Highlighted is true when any item is in the caller's selection.
	Highlighted bool
}

// Layout is the fitted image size and the projector for one map in one container.
type Layout struct {
	Fitted    domain.Dimensions
	Projector Projector
}

// NewLayout fits the map image into container. ok is false until the
// container and the map bounds are measured.
func NewLayout(meta domain.MapMetadata, container domain.Dimensions) (Layout, bool) {
	bounds := meta.Bounds()
	fitted, ok := ObjectFit(container, bounds.Size())
	if !ok {
		return Layout{}, false
	}
	projector, ok := NewProjector(bounds, fitted)
	if !ok {
		return Layout{}, false
	}
	return Layout{Fitted: fitted, Projector: projector}, true
}

// ProjectSpawnpoints places every spawnpoint of a map into render space.
// items supplies icons and may be nil. ok is false while the layout is not
// measurable, in which case nothing is projected.
func ProjectSpawnpoints(
	meta domain.MapMetadata,
	spawnpoints []domain.Spawnpoint,
	container domain.Dimensions,
	selected []string,
	items map[string]domain.ItemMetadata,
) ([]ProjectedSpawnpoint, bool) {
	layout, ok := NewLayout(meta, container)
	if !ok {
		return nil, false
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	out := make([]ProjectedSpawnpoint, len(spawnpoints))
	for i, sp := range spawnpoints {
		projected := make([]ProjectedItem, len(sp.Items))
		for j, item := range sp.Items {
			projected[j] = ProjectedItem{SpawnpointItem: item, IconLink: items[item.Tpl].IconLink}
		}
		out[i] = ProjectedSpawnpoint{
			Position:    sp.Position,
			Probability: sp.Probability,
			Items:       projected,
			Screen:      layout.Projector.Project(sp.Position.Point),
			Highlighted: sp.HasAny(selectedSet),
		}
	}
	return out, true
}
