package metrics

import (
	"context"

	"github.com/osse101/lootmap/internal/event"
)

// EventMetricsCollector turns store and viewport events into metrics.
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every event type the session and the viewport publish.
func (e *EventMetricsCollector) Register(bus event.Bus) {
	types := append(event.DataTypes(), event.SpawnsRecomputed, event.ViewportChanged)
	for _, t := range types {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent counts the event and mirrors derived state into gauges.
func (e *EventMetricsCollector) HandleEvent(_ context.Context, evt event.Event) error {
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SpawnsRecomputed:
		payload, err := evt.SpawnsPayload()
		if err != nil {
			return err
		}
		MapsAggregated.Set(float64(len(payload.Maps)))
		MapsSkipped.Set(float64(len(payload.Skipped)))
	case event.ViewportChanged:
		payload, err := evt.ViewportPayload()
		if err != nil {
			return err
		}
		ViewportScale.Set(payload.Scale)
	}
	return nil
}
