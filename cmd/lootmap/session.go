package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/osse101/lootmap/internal/config"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/event"
	"github.com/osse101/lootmap/internal/loader"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/store"
)

// openSession loads the database directory into a fresh session. Failed
// resources are logged by the loader and left out.
func openSession(ctx context.Context, cfg *config.Config, locations []domain.Location) (*store.Session, error) {
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	session := store.NewSession(bus, cfg.StoreOptions())
	src := loader.NewFileSource(os.DirFS(cfg.DatabaseDir))

	report, err := loader.LoadAll(ctx, src, session, locations)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.DatabaseDir, err)
	}

	log := logger.FromContext(ctx)
	log.Debug("Session loaded",
		"generation", session.Generation(),
		"failures", len(report.Failures))
	return session, nil
}

// commandContext returns a context carrying a fresh session id for log correlation
func commandContext() context.Context {
	return logger.WithSessionID(context.Background(), logger.GenerateSessionID())
}

// parseLocations reads a comma separated list of raw names or slugs. An
// empty list selects every known location.
func parseLocations(list string) ([]domain.Location, error) {
	if strings.TrimSpace(list) == "" {
		return domain.AllLocations(), nil
	}

	var out []domain.Location
	for _, part := range strings.Split(list, ",") {
		loc, err := domain.ParseLocation(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, loc)
	}
	return out, nil
}

// parseLocation reads exactly one location
func parseLocation(name string) (domain.Location, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: -map is required", domain.ErrInvalidInput)
	}
	return domain.ParseLocation(strings.TrimSpace(name))
}

// itemName prefers the item's display name over its template id
func itemName(items map[string]domain.ItemMetadata, tpl string) string {
	if meta, ok := items[tpl]; ok && meta.Name != "" {
		return meta.Name
	}
	return tpl
}

// resolveItem finds the template ids matching query: translated short names,
// item names and the id itself.
func resolveItem(session *store.Session, query string) []string {
	seen := make(map[string]struct{})
	for _, tpl := range session.Names().ResolvePublicName(query) {
		seen[tpl] = struct{}{}
	}
	for id, meta := range session.Snapshot().Items {
		if id == query || strings.EqualFold(meta.Name, query) || strings.EqualFold(meta.ShortName, query) {
			seen[id] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return []string{query}
	}

	out := make([]string, 0, len(seen))
	for tpl := range seen {
		out = append(out, tpl)
	}
	sort.Strings(out)
	return out
}
