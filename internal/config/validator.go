package config

import (
	"fmt"
	"os"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// ValidateEnv checks the schema version of the environment, when one is set,
// and that the database directory exists
func ValidateEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvSchemaVersion); ok && v != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	info, err := os.Stat(cfg.DatabaseDir)
	if err != nil {
		return fmt.Errorf("database directory %q is not readable: %w", cfg.DatabaseDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("database directory %q is not a directory", cfg.DatabaseDir)
	}
	return nil
}

// ValidateEnvWithWarnings checks the environment and returns warnings
// for settings that are valid but probably unintended
func ValidateEnvWithWarnings(cfg *Config) ([]string, error) {
	// First do the critical validation
	if err := ValidateEnv(cfg); err != nil {
		return nil, err
	}

	var warnings []string

	if cfg.ThrottleHz == 0 {
		warnings = append(warnings, "GESTURE_THROTTLE_HZ is 0 - gesture throttling is disabled")
	} else if cfg.ThrottleHz > WarnThrottleHzAbove {
		warnings = append(warnings, fmt.Sprintf("GESTURE_THROTTLE_HZ is %g - throttling above %g Hz has no visible effect", cfg.ThrottleHz, WarnThrottleHzAbove))
	}

	if cfg.MaxItemsPerTier == 0 {
		warnings = append(warnings, "TIER_MAX_ITEMS is 0 - tiers are not truncated")
	}

	if cfg.MinScale == cfg.MaxScale {
		warnings = append(warnings, "VIEWPORT_MIN_SCALE equals VIEWPORT_MAX_SCALE - zooming is disabled")
	}

	return warnings, nil
}
