package loader

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
)

// Sink receives each resource once it has loaded. Every call replaces the
// whole slot.
type Sink interface {
	SetTranslations(ctx context.Context, t domain.Translations)
	SetStaticSpawns(ctx context.Context, spawns map[domain.Location]domain.StaticSpawns)
	SetContainerContent(ctx context.Context, content map[domain.Location]domain.ContainerContent)
	SetLooseLoot(ctx context.Context, loot map[domain.Location]domain.LooseLoot)
	SetItemMetadata(ctx context.Context, items map[string]domain.ItemMetadata)
	SetMapMetadata(ctx context.Context, maps map[domain.DisplayLocation]domain.MapMetadataCollection)
}

// Failure records one resource that could not be loaded.
type Failure struct {
	Resource string
	Location domain.Location // empty for global resources
	Err      error
}

// Report lists the failures of a LoadAll run.
type Report struct {
	mu       sync.Mutex
	Failures []Failure
}

func (r *Report) add(ctx context.Context, f Failure) {
	logger.FromContext(ctx).Warn(LogMsgLoadFailed,
		LogFieldResource, f.Resource,
		LogFieldLocation, f.Location,
		LogFieldError, f.Err)
	metrics.LoadFailures.WithLabelValues(f.Resource).Inc()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failures = append(r.Failures, f)
}

// LoadAll fetches every resource in parallel and hands each to sink as soon
// as it resolves. A failed resource is logged and leaves its slot untouched;
// a per-map failure leaves only that map out. The returned error is non-nil
// only when ctx ends first.
func LoadAll(ctx context.Context, src Source, sink Sink, locations []domain.Location) (*Report, error) {
	report := &Report{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		t, err := src.Translations(gctx).Wait(gctx)
		if err != nil {
			return global(gctx, report, ResourceTranslations, err)
		}
		sink.SetTranslations(gctx, t)
		return nil
	})

	g.Go(func() error {
		items, err := src.ItemMetadata(gctx).Wait(gctx)
		if err != nil {
			return global(gctx, report, ResourceItemMetadata, err)
		}
		sink.SetItemMetadata(gctx, items)
		return nil
	})

	g.Go(func() error {
		maps, err := src.MapMetadata(gctx).Wait(gctx)
		if err != nil {
			return global(gctx, report, ResourceMapMetadata, err)
		}
		sink.SetMapMetadata(gctx, maps)
		return nil
	})

	g.Go(func() error {
		spawns, err := perMap(gctx, report, ResourceStaticContainers, locations, src.StaticSpawns)
		if err != nil {
			return err
		}
		sink.SetStaticSpawns(gctx, spawns)
		return nil
	})

	g.Go(func() error {
		content, err := perMap(gctx, report, ResourceContainerContent, locations, src.ContainerContent)
		if err != nil {
			return err
		}
		sink.SetContainerContent(gctx, content)
		return nil
	})

	g.Go(func() error {
		loot, err := perMap(gctx, report, ResourceLooseLoot, locations, src.LooseLoot)
		if err != nil {
			return err
		}
		sink.SetLooseLoot(gctx, loot)
		return nil
	})

	err := g.Wait()
	logger.FromContext(ctx).Info(LogMsgLoadComplete, LogFieldFailures, len(report.Failures))
	return report, err
}

// global records a failed global resource. Only cancellation is propagated.
func global(ctx context.Context, report *Report, resource string, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	report.add(ctx, Failure{Resource: resource, Err: err})
	return nil
}

// perMap starts one future per location, then collects those that succeed.
func perMap[T any](
	ctx context.Context,
	report *Report,
	resource string,
	locations []domain.Location,
	load func(context.Context, domain.Location) *Future[T],
) (map[domain.Location]T, error) {
	futures := make(map[domain.Location]*Future[T], len(locations))
	for _, loc := range locations {
		futures[loc] = load(ctx, loc)
	}

	out := make(map[domain.Location]T, len(locations))
	for _, loc := range locations {
		v, err := futures[loc].Wait(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			report.add(ctx, Failure{Resource: resource, Location: loc, Err: err})
			continue
		}
		out[loc] = v
	}
	return out, nil
}
