package config

import (
	"github.com/osse101/lootmap/internal/store"
	"github.com/osse101/lootmap/internal/tierlist"
	"github.com/osse101/lootmap/internal/viewport"
)

// Environment variable names
const (
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvDatabaseDir     = "DATABASE_DIR"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvEnvironment     = "ENVIRONMENT"
	EnvMinScale        = "VIEWPORT_MIN_SCALE"
	EnvMaxScale        = "VIEWPORT_MAX_SCALE"
	EnvWheelFactor     = "VIEWPORT_WHEEL_FACTOR"
	EnvThrottleHz      = "GESTURE_THROTTLE_HZ"
	EnvMinPricePerSlot = "TIER_MIN_PRICE_PER_SLOT"
	EnvMaxItemsPerTier = "TIER_MAX_ITEMS"
	EnvSpawnCacheSize  = "SPAWN_CACHE_SIZE"
	EnvSpawnCacheTTL   = "SPAWN_CACHE_TTL"
)

// Defaults
const (
	DefaultDatabaseDir     = "database"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultMinScale        = viewport.DefaultMinScale
	DefaultMaxScale        = viewport.DefaultMaxScale
	DefaultWheelFactor     = viewport.DefaultWheelFactor
	DefaultThrottleHz      = viewport.DefaultThrottleHz
	DefaultMinPricePerSlot = tierlist.DefaultMinPricePerSlot
	DefaultMaxItemsPerTier = tierlist.DefaultMaxItemsPerTier
	DefaultSpawnCacheSize  = store.DefaultCacheSize
	DefaultSpawnCacheTTL   = store.DefaultCacheTTL
)

// Warning thresholds
const (
	// WarnThrottleHzAbove flags a throttle that admits more samples than a display can show.
	WarnThrottleHzAbove = 240.0
)
