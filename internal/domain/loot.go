package domain

// Translations maps a template id to its short display name.
type Translations map[string]string

// StaticContainer is one placed container record from staticContainers.json.
type StaticContainer struct {
	Probability float64           `json:"probability"`
	Template    ContainerTemplate `json:"template"`
}

// ContainerTemplate holds the items of a placed container; the first item is
// the container itself.
type ContainerTemplate struct {
	ID    string         `json:"Id,omitempty"`
	Items []TemplateItem `json:"Items"`
}

// TemplateItem is a template entry; ID is instance-local, Tpl is the item template id.
type TemplateItem struct {
	ID       string `json:"_id,omitempty"`
	Tpl      string `json:"_tpl"`
	ParentID string `json:"parentId,omitempty"`
	SlotID   string `json:"slotId,omitempty"`
}

// TemplateID returns the container's template id, or "" when the record carries no items.
func (c StaticContainer) TemplateID() string {
	if len(c.Template.Items) == 0 {
		return ""
	}
	return c.Template.Items[0].Tpl
}

// StaticSpawns is the static container table of one map.
type StaticSpawns struct {
	StaticContainers []StaticContainer `json:"staticContainers"`
}

// ItemWeight is one entry of a container's item distribution.
type ItemWeight struct {
	Tpl                 string  `json:"tpl"`
	RelativeProbability float64 `json:"relativeProbability"`
}

// CountWeight is one entry of a container's item-count distribution.
type CountWeight struct {
	Count               int     `json:"count"`
	RelativeProbability float64 `json:"relativeProbability"`
}

// ContainerLoot describes what a container holds.
type ContainerLoot struct {
	ItemCountDistribution []CountWeight `json:"itemcountDistribution"`
	ItemDistribution      []ItemWeight  `json:"itemDistribution"`
}

// ContainerContent is the per-map container content table, keyed by container template id.
type ContainerContent map[string]ContainerLoot

// SpawnpointItem is an item that may appear at a spawnpoint. Probability is the
// joint probability: it already includes the spawnpoint's own chance.
type SpawnpointItem struct {
	Tpl         string  `json:"tpl"`
	Probability float64 `json:"probability"`
}

// Spawnpoint is a loose-loot location in world space.
type Spawnpoint struct {
	Position    PointWithHeight  `json:"position"`
	Probability float64          `json:"probability"` // chance that anything spawns here
	Items       []SpawnpointItem `json:"items"`
}

// ConditionalProbability returns P(item | something spawned here). ok is false
// when the item is not listed or the spawnpoint never spawns.
func (s Spawnpoint) ConditionalProbability(tpl string) (float64, bool) {
	if s.Probability <= 0 {
		return 0, false
	}
	for _, item := range s.Items {
		if item.Tpl == tpl {
			return item.Probability / s.Probability, true
		}
	}
	return 0, false
}

// HasAny reports whether any of the spawnpoint's items is in ids.
func (s Spawnpoint) HasAny(ids map[string]struct{}) bool {
	for _, item := range s.Items {
		if _, ok := ids[item.Tpl]; ok {
			return true
		}
	}
	return false
}

// LooseLoot is the loose loot table of one map.
type LooseLoot struct {
	Spawnpoints []Spawnpoint `json:"spawnpoints"`
}

// SpawnTable maps item template id to its expected spawn count.
type SpawnTable map[string]float64

// AggregatedSpawnTable holds one SpawnTable per map.
type AggregatedSpawnTable map[Location]SpawnTable
