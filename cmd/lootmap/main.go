package main

import (
	"fmt"
	"io"
	"os"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	registry := newRegistry(cfg, os.Stdout)

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		registry.PrintHelp(os.Stderr)
		os.Exit(1)
	}
	initLogger(cfg, cmd.Name())

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		logger.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.Warn("Environment warning", "warning", w)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		logger.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func newRegistry(cfg *config.Config, out io.Writer) *Registry {
	registry := NewRegistry()
	registry.Register(&TiersCommand{cfg: cfg, out: out})
	registry.Register(&SpawnsCommand{cfg: cfg, out: out})
	registry.Register(&ContainersCommand{cfg: cfg, out: out})
	registry.Register(&ProjectCommand{cfg: cfg, out: out})
	return registry
}
