package event

import (
	"context"
	"errors"
	"testing"

	"github.com/osse101/lootmap/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_HandlersOnlyReceiveTheirType(t *testing.T) {
	bus := NewMemoryBus()
	var got []Type

	bus.Subscribe(TranslationsChanged, func(ctx context.Context, event Event) error {
		got = append(got, event.Type)
		return nil
	})

	for _, typ := range DataTypes() {
		if err := bus.Publish(context.Background(), NewDataEvent(typ, 3)); err != nil {
			t.Fatalf("Publish returned error: %v", err)
		}
	}

	if len(got) != 1 || got[0] != TranslationsChanged {
		t.Errorf("Expected only %s, got %v", TranslationsChanged, got)
	}
}

func TestDecodePayload_SpawnsRecomputed(t *testing.T) {
	evt := NewSpawnsRecomputedEvent(7, []domain.Location{domain.LocationWoods}, []domain.Location{domain.LocationLabs})

	payload, err := DecodePayload[SpawnsRecomputedPayloadV1](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if evt.Generation != 7 {
		t.Errorf("Expected generation 7, got %d", evt.Generation)
	}
	if len(payload.Maps) != 1 || payload.Maps[0] != domain.LocationWoods {
		t.Errorf("Unexpected maps: %v", payload.Maps)
	}
	if len(payload.Skipped) != 1 || payload.Skipped[0] != domain.LocationLabs {
		t.Errorf("Unexpected skipped maps: %v", payload.Skipped)
	}
}

func TestDecodePayload_FromSerializedMap(t *testing.T) {
	raw := map[string]interface{}{"view_box": "0 0 10 10", "scale": 0.5, "is_panning": true}

	payload, err := DecodePayload[ViewportChangedPayloadV1](raw)
	if err != nil {
		t.Fatalf("DecodePayload returned error: %v", err)
	}
	if payload.ViewBox != "0 0 10 10" || payload.Scale != 0.5 || !payload.IsPanning {
		t.Errorf("Unexpected payload: %+v", payload)
	}
}

func TestEvent_TypedPayloads(t *testing.T) {
	spawns := NewSpawnsRecomputedEvent(3, []domain.Location{domain.LocationWoods}, nil)
	viewport := NewViewportChangedEvent("0 0 800 600", 1, false)

	sp, err := spawns.SpawnsPayload()
	if err != nil || len(sp.Maps) != 1 {
		t.Errorf("SpawnsPayload = %+v, %v", sp, err)
	}
	vp, err := viewport.ViewportPayload()
	if err != nil || vp.ViewBox != "0 0 800 600" {
		t.Errorf("ViewportPayload = %+v, %v", vp, err)
	}

	if _, err := viewport.SpawnsPayload(); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for mismatched type, got %v", err)
	}
	if _, err := DecodePayload[ViewportChangedPayloadV1](nil); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput for nil payload, got %v", err)
	}
}

func TestMemoryBus_PublishJoinsHandlerErrors(t *testing.T) {
	bus := NewMemoryBus()
	errBoom := errors.New("boom")
	bus.Subscribe(ViewportChanged, func(context.Context, Event) error { return errBoom })
	bus.Subscribe(ViewportChanged, func(context.Context, Event) error { return nil })

	err := bus.Publish(context.Background(), NewViewportChangedEvent("0 0 0 0", 1, false))
	if !errors.Is(err, errBoom) {
		t.Errorf("Expected wrapped handler error, got %v", err)
	}
}
