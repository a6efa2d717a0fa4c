package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/store"
	"github.com/osse101/lootmap/internal/tierlist"
	"github.com/osse101/lootmap/internal/viewport"
)

// Config holds the application configuration
type Config struct {
	DatabaseDir string `validate:"required"`

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	ServiceName string
	Version     string
	Environment string `validate:"required"`

	// Viewport
	MinScale    float64 `validate:"gt=0,ltefield=MaxScale"`
	MaxScale    float64 `validate:"gt=0"`
	WheelFactor float64 `validate:"gt=1"`
	ThrottleHz  float64 `validate:"gte=0"`

	// Tier list
	MinPricePerSlot float64 `validate:"gte=0"`
	MaxItemsPerTier int     `validate:"gte=0"`

	// Combined spawn cache
	SpawnCacheSize int           `validate:"gt=0"`
	SpawnCacheTTL  time.Duration `validate:"gt=0"`
}

var validate = validator.New()

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseDir:     getEnv(EnvDatabaseDir, DefaultDatabaseDir),
		LogLevel:        strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:       strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		ServiceName:     getEnv(EnvServiceName, logger.DefaultServiceName),
		Version:         getEnv(EnvVersion, logger.DefaultVersion),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		MinScale:        getEnvAsFloat(EnvMinScale, DefaultMinScale),
		MaxScale:        getEnvAsFloat(EnvMaxScale, DefaultMaxScale),
		WheelFactor:     getEnvAsFloat(EnvWheelFactor, DefaultWheelFactor),
		ThrottleHz:      getEnvAsFloat(EnvThrottleHz, DefaultThrottleHz),
		MinPricePerSlot: getEnvAsFloat(EnvMinPricePerSlot, DefaultMinPricePerSlot),
		MaxItemsPerTier: getEnvAsInt(EnvMaxItemsPerTier, DefaultMaxItemsPerTier),
		SpawnCacheSize:  getEnvAsInt(EnvSpawnCacheSize, DefaultSpawnCacheSize),
		SpawnCacheTTL:   getEnvAsDuration(EnvSpawnCacheTTL, DefaultSpawnCacheTTL),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoggerConfig returns the logger settings
func (c *Config) LoggerConfig() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, false)
}

// ViewportConfig returns the viewport settings
func (c *Config) ViewportConfig() viewport.Config {
	return viewport.Config{
		MinScale:    c.MinScale,
		MaxScale:    c.MaxScale,
		WheelFactor: c.WheelFactor,
		ThrottleHz:  c.ThrottleHz,
	}
}

// TierOptions returns the default tier list filters with the configured limits
func (c *Config) TierOptions() tierlist.Options {
	opts := tierlist.DefaultOptions()
	opts.MinPricePerSlot = c.MinPricePerSlot
	opts.MaxItemsPerTier = c.MaxItemsPerTier
	return opts
}

// StoreOptions returns the session store settings
func (c *Config) StoreOptions() store.Options {
	return store.Options{CacheSize: c.SpawnCacheSize, CacheTTL: c.SpawnCacheTTL}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to the default when the value is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsFloat falls back to the default when the value is unset or not a number
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsDuration falls back to the default when the value is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}
