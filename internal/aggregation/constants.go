package aggregation

// ============================================================================
// Log Messages
// ============================================================================

// Warning messages for missing or invalid data
const (
	LogMsgMissingMapData         = "Missing raw tables for map, skipping"
	LogMsgMissingContainerItems  = "No item distribution for container, skipping"
	LogMsgDegenerateDistribution = "Item distribution sums to zero, skipping"
	LogMsgUnresolvedSpawnItem    = "Spawnpoint item not found in template, dropping"
	LogMsgContainerWithoutTpl    = "Static container has no template item, skipping"
)

// Debug messages
const (
	LogMsgAggregationComplete = "Spawn table aggregation complete"
)

// Log field keys for structured logging
const (
	LogFieldMap        = "map"
	LogFieldContainer  = "container"
	LogFieldSpawnpoint = "spawnpoint"
	LogFieldItem       = "item"
	LogFieldError      = "error"
	LogFieldMaps       = "maps"
	LogFieldSkipped    = "skipped"
	LogFieldHasStatic  = "has_static_containers"
	LogFieldHasContent = "has_container_content"
)
