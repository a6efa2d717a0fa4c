package store

import "time"

// Cache defaults
const (
	DefaultCacheSize = 64
	DefaultCacheTTL  = 10 * time.Minute
)

// CacheSchemaVersion is bumped when the cached entry layout changes so old
// entries are ignored.
const CacheSchemaVersion = "1.0"

// Cache key separators
const (
	cacheKeyGenerationSeparator = ":"
	cacheKeyLocationSeparator   = ","
)

// Log messages
const (
	LogMsgPublishFailed    = "Failed to publish store event"
	LogMsgSpawnsRecomputed = "Spawn table recomputed"
)

// Log field keys
const (
	LogFieldEvent      = "event"
	LogFieldGeneration = "generation"
	LogFieldMaps       = "maps"
	LogFieldSkipped    = "skipped"
	LogFieldError      = "error"
)
