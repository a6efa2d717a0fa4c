package logger

import "log/slog"

// Accepted level and format names. Matching is case-insensitive.
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "lootmap"
	DefaultVersion     = "dev"
)

const (
	EnvironmentDev  = "dev"
	EnvironmentTest = "test"
)

// Attribute keys stamped on every record. Empty values are omitted.
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyCommand     = "command"
	AttrKeySessionID   = "session_id"
)

var levelNames = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}
