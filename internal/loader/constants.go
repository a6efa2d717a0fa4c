package loader

// Database file names. Per-map files live under a directory named after the
// raw location.
const (
	FileStaticContainers = "staticContainers.json"
	FileStaticLoot       = "staticLoot.json"
	FileLooseLoot        = "looseLoot.json"
	FileTranslations     = "translations.json"
	FileItems            = "items.json"
	FileMapMetadata      = "map-metadata.json"
)

// Resource names used in logs, metrics and failure reports
const (
	ResourceTranslations     = "translations"
	ResourceStaticContainers = "static_containers"
	ResourceContainerContent = "container_content"
	ResourceLooseLoot        = "loose_loot"
	ResourceItemMetadata     = "item_metadata"
	ResourceMapMetadata      = "map_metadata"
)

// Log messages
const (
	LogMsgLoadFailed         = "Failed to load resource"
	LogMsgInvalidItem        = "Dropping invalid item metadata"
	LogMsgInvalidMapMetadata = "Dropping invalid map metadata"
	LogMsgUnknownMapMetadata = "Skipping map metadata for unknown map"
	LogMsgLoadComplete       = "Data load complete"
)

// Log field keys
const (
	LogFieldResource = "resource"
	LogFieldLocation = "location"
	LogFieldItem     = "item"
	LogFieldName     = "name"
	LogFieldError    = "error"
	LogFieldFailures = "failures"
)
