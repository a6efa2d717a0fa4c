package tierlist

// Log messages
const (
	LogMsgUnresolvedItem  = "Spawn table references an item without metadata"
	LogMsgInvalidMetadata = "Item metadata has no inventory footprint"
	LogMsgTiersBuilt      = "Tier list built"
)

// Log field keys
const (
	LogFieldItem    = "item"
	LogFieldError   = "error"
	LogFieldEntries = "entries"
	LogFieldTiers   = "tiers"
)

// Defaults for the tier list filters
const (
	DefaultMinPricePerSlot = 15000
	DefaultMaxItemsPerTier = 40
)
