package main

import (
	"os"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/logger"
)

// initLogger installs the default logger for one command run. Records go to
// stderr so command output can be piped.
func initLogger(cfg *config.Config, command string) {
	addSource := cfg.Environment == logger.EnvironmentDev && cfg.LogLevel == logger.LogLevelDebug

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	).WithCommand(command)

	logger.InitLoggerWithWriter(loggerConfig, os.Stderr)
}
