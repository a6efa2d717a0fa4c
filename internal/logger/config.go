package logger

import (
	"log/slog"
	"strings"
)

// Config controls the default logger of a lootmap process. The CLI writes
// command output to stdout, so records normally go to stderr.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	// Command is the CLI subcommand being run, if any.
	Command   string
	AddSource bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// DefaultConfig is used when no application config could be loaded.
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// WithCommand returns a copy of c that tags records with the subcommand name.
func (c Config) WithCommand(name string) Config {
	c.Command = name
	return c
}

// ParseLevel maps a level name onto a slog.Level.
func ParseLevel(name string) (slog.Level, bool) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	return level, ok
}

// LogLevel falls back to info for unknown names.
func (c Config) LogLevel() slog.Level {
	if level, ok := ParseLevel(c.Level); ok {
		return level
	}
	return slog.LevelInfo
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes returns the attributes every record carries.
func (c Config) BaseAttributes() []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
		{AttrKeyCommand, c.Command},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
