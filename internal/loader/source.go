// Package loader reads the static database and hands each resource to the
// session store as it becomes available.
package loader

import (
	"context"
	"fmt"
	"io/fs"
	"path"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/lootmap/internal/aggregation"
	"github.com/osse101/lootmap/internal/domain"
	"github.com/osse101/lootmap/internal/logger"
	"github.com/osse101/lootmap/internal/metrics"
	"github.com/osse101/lootmap/internal/naming"
	"github.com/osse101/lootmap/internal/utils"
)

// Source loads typed resources asynchronously, one future per resource key.
type Source interface {
	Translations(ctx context.Context) *Future[domain.Translations]
	StaticSpawns(ctx context.Context, loc domain.Location) *Future[domain.StaticSpawns]
	ContainerContent(ctx context.Context, loc domain.Location) *Future[domain.ContainerContent]
	LooseLoot(ctx context.Context, loc domain.Location) *Future[domain.LooseLoot]
	ItemMetadata(ctx context.Context) *Future[map[string]domain.ItemMetadata]
	MapMetadata(ctx context.Context) *Future[map[domain.DisplayLocation]domain.MapMetadataCollection]
}

// FileSource reads the database layout from a filesystem, usually os.DirFS.
type FileSource struct {
	fsys     fs.FS
	validate *validator.Validate
}

// NewFileSource returns a Source over fsys.
func NewFileSource(fsys fs.FS) *FileSource {
	return &FileSource{fsys: fsys, validate: validator.New()}
}

func (s *FileSource) Translations(ctx context.Context) *Future[domain.Translations] {
	return Go(ctx, func(context.Context) (domain.Translations, error) {
		var raw map[string]string
		if err := utils.LoadJSON(s.fsys, FileTranslations, &raw); err != nil {
			return nil, err
		}
		return naming.ParseTranslations(raw), nil
	})
}

func (s *FileSource) StaticSpawns(ctx context.Context, loc domain.Location) *Future[domain.StaticSpawns] {
	return Go(ctx, func(context.Context) (domain.StaticSpawns, error) {
		var spawns domain.StaticSpawns
		err := utils.LoadJSON(s.fsys, path.Join(string(loc), FileStaticContainers), &spawns)
		return spawns, err
	})
}

func (s *FileSource) ContainerContent(ctx context.Context, loc domain.Location) *Future[domain.ContainerContent] {
	return Go(ctx, func(context.Context) (domain.ContainerContent, error) {
		var content domain.ContainerContent
		if err := utils.LoadJSON(s.fsys, path.Join(string(loc), FileStaticLoot), &content); err != nil {
			return nil, err
		}
		return content, nil
	})
}

func (s *FileSource) LooseLoot(ctx context.Context, loc domain.Location) *Future[domain.LooseLoot] {
	return Go(ctx, func(ctx context.Context) (domain.LooseLoot, error) {
		var raw aggregation.RawLooseLoot
		if err := utils.LoadJSON(s.fsys, path.Join(string(loc), FileLooseLoot), &raw); err != nil {
			return domain.LooseLoot{}, err
		}
		return aggregation.MapLooseLoot(ctx, raw), nil
	})
}

// ItemMetadata reads items.json, a JSON array. Items failing validation are
// dropped one by one.
func (s *FileSource) ItemMetadata(ctx context.Context) *Future[map[string]domain.ItemMetadata] {
	return Go(ctx, func(ctx context.Context) (map[string]domain.ItemMetadata, error) {
		var items []domain.ItemMetadata
		if err := utils.LoadJSON(s.fsys, FileItems, &items); err != nil {
			return nil, err
		}

		log := logger.FromContext(ctx)
		out := make(map[string]domain.ItemMetadata, len(items))
		for _, item := range items {
			if err := s.validate.Struct(item); err != nil {
				log.Warn(LogMsgInvalidItem, LogFieldItem, item.ID, LogFieldError, err)
				metrics.RecordsSkipped.WithLabelValues(metrics.ReasonInvalidMetadata).Inc()
				continue
			}
			out[item.ID] = item
		}
		return out, nil
	})
}

// MapMetadata reads map-metadata.json and keys it by display location.
// Collections for unknown maps are skipped.
func (s *FileSource) MapMetadata(ctx context.Context) *Future[map[domain.DisplayLocation]domain.MapMetadataCollection] {
	return Go(ctx, func(ctx context.Context) (map[domain.DisplayLocation]domain.MapMetadataCollection, error) {
		var collections []domain.MapMetadataCollection
		if err := utils.LoadJSON(s.fsys, FileMapMetadata, &collections); err != nil {
			return nil, err
		}

		log := logger.FromContext(ctx)
		out := make(map[domain.DisplayLocation]domain.MapMetadataCollection, len(collections))
		for _, c := range collections {
			if err := s.validate.Struct(c); err != nil {
				log.Warn(LogMsgInvalidMapMetadata, LogFieldName, c.NormalizedName, LogFieldError, err)
				metrics.RecordsSkipped.WithLabelValues(metrics.ReasonInvalidMetadata).Inc()
				continue
			}
			display, ok := domain.DisplayLocationForMapMetadata(c.NormalizedName)
			if !ok {
				log.Warn(LogMsgUnknownMapMetadata, LogFieldName, c.NormalizedName,
					LogFieldError, fmt.Errorf("%w: %s", domain.ErrUnknownLocation, c.NormalizedName))
				continue
			}
			out[display] = c
		}
		return out, nil
	})
}
