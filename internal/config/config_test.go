package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/lootmap/internal/logger"
)

// clearEnvVars unsets every variable Load reads, restoring them after the test
func clearEnvVars(t *testing.T) {
	t.Helper()

	envVars := []string{
		EnvSchemaVersion, EnvDatabaseDir, EnvLogLevel, EnvLogFormat, EnvServiceName,
		EnvVersion, EnvEnvironment, EnvMinScale, EnvMaxScale, EnvWheelFactor,
		EnvThrottleHz, EnvMinPricePerSlot, EnvMaxItemsPerTier, EnvSpawnCacheSize,
		EnvSpawnCacheTTL,
	}

	for _, key := range envVars {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DefaultDatabaseDir, cfg.DatabaseDir)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, logger.DefaultServiceName, cfg.ServiceName)
		assert.Equal(t, 0.01, cfg.MinScale)
		assert.Equal(t, 2.0, cfg.MaxScale)
		assert.Equal(t, 1.1, cfg.WheelFactor)
		assert.Equal(t, 15000.0, cfg.MinPricePerSlot)
		assert.Equal(t, 40, cfg.MaxItemsPerTier)
		assert.Equal(t, 10*time.Minute, cfg.SpawnCacheTTL)
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv(EnvDatabaseDir, "/srv/db")
		t.Setenv(EnvLogLevel, "DEBUG")
		t.Setenv(EnvLogFormat, "json")
		t.Setenv(EnvEnvironment, "production")
		t.Setenv(EnvMinScale, "0.1")
		t.Setenv(EnvMaxScale, "4")
		t.Setenv(EnvWheelFactor, "1.25")
		t.Setenv(EnvThrottleHz, "0")
		t.Setenv(EnvMinPricePerSlot, "5000")
		t.Setenv(EnvMaxItemsPerTier, "10")
		t.Setenv(EnvSpawnCacheSize, "8")
		t.Setenv(EnvSpawnCacheTTL, "30s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "/srv/db", cfg.DatabaseDir)
		assert.Equal(t, "debug", cfg.LogLevel, "level is case insensitive")
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 0.1, cfg.MinScale)
		assert.Equal(t, 4.0, cfg.MaxScale)
		assert.Equal(t, 1.25, cfg.WheelFactor)
		assert.Zero(t, cfg.ThrottleHz)
		assert.Equal(t, 5000.0, cfg.MinPricePerSlot)
		assert.Equal(t, 10, cfg.MaxItemsPerTier)
		assert.Equal(t, 8, cfg.SpawnCacheSize)
		assert.Equal(t, 30*time.Second, cfg.SpawnCacheTTL)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		tests := []struct {
			key   string
			value string
		}{
			{EnvMinScale, "3"},
			{EnvMaxScale, "-1"},
			{EnvWheelFactor, "0.9"},
			{EnvLogLevel, "verbose"},
			{EnvLogFormat, "xml"},
			{EnvSpawnCacheSize, "0"},
			{EnvDatabaseDir, ""},
		}

		for _, tt := range tests {
			t.Run(tt.key, func(t *testing.T) {
				clearEnvVars(t)
				t.Setenv(tt.key, tt.value)

				_, err := Load()
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid configuration")
			})
		}
	})
}

func TestConfig_Conversions(t *testing.T) {
	clearEnvVars(t)
	cfg, err := Load()
	require.NoError(t, err)

	vp := cfg.ViewportConfig()
	assert.Equal(t, cfg.MinScale, vp.MinScale)
	assert.Equal(t, cfg.ThrottleHz, vp.ThrottleHz)

	opts := cfg.TierOptions()
	assert.Equal(t, cfg.MinPricePerSlot, opts.MinPricePerSlot)
	assert.Len(t, opts.Tiers, 5)
	assert.NotEmpty(t, opts.AllowedCategories)

	so := cfg.StoreOptions()
	assert.Equal(t, cfg.SpawnCacheSize, so.CacheSize)

	lc := cfg.LoggerConfig()
	assert.Equal(t, cfg.LogLevel, lc.Level)
	assert.False(t, lc.IsJSON())
}

func TestGetEnvAsInt(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_INT_VAR")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("parses valid integer from env var", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "100")
		assert.Equal(t, 100, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for invalid integer", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "not-a-number")
		assert.Equal(t, 42, getEnvAsInt("TEST_INT_VAR", 42))
	})

	t.Run("returns default for float values", func(t *testing.T) {
		t.Setenv("TEST_INT_VAR", "42.5")
		assert.Equal(t, 10, getEnvAsInt("TEST_INT_VAR", 10))
	})
}

func TestGetEnvAsFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  float64
	}{
		{"decimal", "0.25", 0.25},
		{"integer", "3", 3},
		{"exponent", "1e-2", 0.01},
		{"invalid", "abc", 7},
		{"empty", "", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_FLOAT_VAR", tt.value)
			assert.Equal(t, tt.want, getEnvAsFloat("TEST_FLOAT_VAR", 7))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Run("returns default value when env var not set", func(t *testing.T) {
		os.Unsetenv("TEST_DURATION_VAR")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("parses complex duration", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "1h30m45s")
		assert.Equal(t, time.Hour+30*time.Minute+45*time.Second, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})

	t.Run("returns default for plain numbers without unit", func(t *testing.T) {
		t.Setenv("TEST_DURATION_VAR", "100")
		assert.Equal(t, 5*time.Minute, getEnvAsDuration("TEST_DURATION_VAR", 5*time.Minute))
	})
}
