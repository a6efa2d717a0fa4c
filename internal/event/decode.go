package event

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/lootmap/internal/domain"
)

// DecodePayload returns payload as T. Events published in process already
// carry T; payloads that went through JSON arrive as maps and are re-decoded.
func DecodePayload[T any](payload any) (T, error) {
	if v, ok := payload.(T); ok {
		return v, nil
	}

	var out T
	if payload == nil {
		return out, fmt.Errorf("%w: empty event payload", domain.ErrInvalidInput)
	}
	data, err := json.Marshal(payload)
	if err == nil {
		err = json.Unmarshal(data, &out)
	}
	if err != nil {
		return out, fmt.Errorf("%w: payload %T: %v", domain.ErrInvalidInput, payload, err)
	}
	return out, nil
}

// SpawnsPayload decodes the payload of a spawns.recomputed event.
func (e Event) SpawnsPayload() (SpawnsRecomputedPayloadV1, error) {
	if e.Type != SpawnsRecomputed {
		return SpawnsRecomputedPayloadV1{}, fmt.Errorf("%w: %s is not %s", domain.ErrInvalidInput, e.Type, SpawnsRecomputed)
	}
	return DecodePayload[SpawnsRecomputedPayloadV1](e.Payload)
}

// ViewportPayload decodes the payload of a viewport.changed event.
func (e Event) ViewportPayload() (ViewportChangedPayloadV1, error) {
	if e.Type != ViewportChanged {
		return ViewportChangedPayloadV1{}, fmt.Errorf("%w: %s is not %s", domain.ErrInvalidInput, e.Type, ViewportChanged)
	}
	return DecodePayload[ViewportChangedPayloadV1](e.Payload)
}
