package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("events")

// Handler receives decoded events. Payload is one of the *Payload types.
type Handler func(ctx context.Context, eventType string, payload any)

// Decode unwraps an Event envelope into its typed payload.
func Decode(data []byte) (string, any, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return "", nil, fmt.Errorf("unmarshal event: %w", err)
	}

	var payload any
	switch event.Type {
	case TypeMarkPlaced:
		payload = &MarkPlacedPayload{}
	case TypeGameOver:
		payload = &GameOverPayload{}
	case TypeScoreChanged:
		payload = &ScoreChangedPayload{}
	default:
		return event.Type, nil, fmt.Errorf("unknown event type %q", event.Type)
	}
	if err := json.Unmarshal(event.Payload, payload); err != nil {
		return event.Type, nil, fmt.Errorf("unmarshal %s payload: %w", event.Type, err)
	}
	return event.Type, payload, nil
}

// Subscribe feeds every event on EventsChannel to handle until ctx ends.
// Messages that fail to decode are logged and skipped.
func Subscribe(ctx context.Context, rdb *redis.Client, handle Handler) error {
	pubsub := rdb.Subscribe(ctx, EventsChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", EventsChannel, err)
	}
	slog.InfoContext(ctx, "Event subscriber started", "channel", EventsChannel)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			dispatch(ctx, msg.Payload, handle)
		}
	}
}

func dispatch(ctx context.Context, data string, handle Handler) {
	eventCtx, eventSpan := tracer.Start(ctx, "events.handleEvent", trace.WithAttributes(
		attribute.String("event.channel", EventsChannel),
	))
	defer eventSpan.End()

	eventType, payload, err := Decode([]byte(data))
	if err != nil {
		slog.ErrorContext(eventCtx, "Could not decode event", "error", err)
		eventSpan.RecordError(err)
		eventSpan.SetStatus(codes.Error, "Could not decode event")
		return
	}
	eventSpan.SetAttributes(attribute.String("event.type", eventType))
	handle(eventCtx, eventType, payload)
}
