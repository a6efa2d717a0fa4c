package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/lootmap/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a state change published by the session store or the viewport
type Event struct {
	Version    string `json:"version"` // Event schema version (e.g., "1.0")
	Type       Type   `json:"type"`
	Generation uint64 `json:"generation"` // store generation that produced the event
	Payload    any    `json:"payload"`
}

// Data slot event types
const (
	TranslationsChanged     Type = "data.translations"
	StaticContainersChanged Type = "data.static_containers"
	ContainerContentChanged Type = "data.container_content"
	LooseLootChanged        Type = "data.loose_loot"
	ItemMetadataChanged     Type = "data.item_metadata"
	MapMetadataChanged      Type = "data.map_metadata"
)

// Derived state event types
const (
	SpawnsRecomputed Type = "spawns.recomputed"
	ViewportChanged  Type = "viewport.changed"
)

// DataTypes lists every raw data slot event type.
func DataTypes() []Type {
	return []Type{
		TranslationsChanged,
		StaticContainersChanged,
		ContainerContentChanged,
		LooseLootChanged,
		ItemMetadataChanged,
		MapMetadataChanged,
	}
}

// SpawnsRecomputedPayloadV1 is the typed payload for spawn table recomputation
type SpawnsRecomputedPayloadV1 struct {
	Maps    []domain.Location `json:"maps"`    // maps with a spawn table
	Skipped []domain.Location `json:"skipped"` // maps left out for missing data
}

// ViewportChangedPayloadV1 is the typed payload for viewport changes
type ViewportChangedPayloadV1 struct {
	ViewBox   string  `json:"view_box"`
	Scale     float64 `json:"scale"`
	IsPanning bool    `json:"is_panning"`
}

// NewDataEvent creates an event announcing that a raw data slot was replaced
func NewDataEvent(t Type, generation uint64) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       t,
		Generation: generation,
	}
}

// NewSpawnsRecomputedEvent creates a new spawn table event
func NewSpawnsRecomputedEvent(generation uint64, maps, skipped []domain.Location) Event {
	return Event{
		Version:    EventSchemaVersion,
		Type:       SpawnsRecomputed,
		Generation: generation,
		Payload: SpawnsRecomputedPayloadV1{
			Maps:    maps,
			Skipped: skipped,
		},
	}
}

// NewViewportChangedEvent creates a new viewport event
func NewViewportChangedEvent(viewBox string, scale float64, isPanning bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ViewportChanged,
		Payload: ViewportChangedPayloadV1{
			ViewBox:   viewBox,
			Scale:     scale,
			IsPanning: isPanning,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously,
// in subscription order.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(errMsgHandlerFailures, len(errs), len(handlers), event.Type, errors.Join(errs...))
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
