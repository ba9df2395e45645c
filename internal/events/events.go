package events

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Pub/Sub channel constants
const (
	EventsChannel = "channel:events"
)

// Event types
const (
	TypeMarkPlaced   = "mark_placed"
	TypeGameOver     = "game_over"
	TypeScoreChanged = "score_changed"
)

// Event represents a global message published via Pub/Sub.
type Event struct {
	Type    string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// MarkPlacedPayload is the payload for the "mark_placed" event.
type MarkPlacedPayload struct {
	SessionID string          `json:"session_id"`
	Mark      game.PlayerMark `json:"mark"`
	Row       int             `json:"row"`
	Col       int             `json:"col"`
}

// GameOverPayload is the payload for the "game_over" event.
type GameOverPayload struct {
	SessionID  string             `json:"session_id"`
	Difficulty string             `json:"difficulty"`
	Outcome    game.OutcomeStatus `json:"outcome"`
	Winner     game.PlayerMark    `json:"winner,omitempty"`
	Line       *game.Line         `json:"line,omitempty"`
}

// ScoreChangedPayload is the payload for the "score_changed" event.
type ScoreChangedPayload struct {
	SessionID   string `json:"session_id"`
	AIScore     int    `json:"ai_score"`
	PlayerScore int    `json:"player_score"`
}

// Publisher sends events to whoever listens.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Encode wraps payload in an Event envelope.
func Encode(eventType string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	data, err := json.Marshal(Event{Type: eventType, Payload: raw})
	if err != nil {
		return nil, fmt.Errorf("marshal %s event: %w", eventType, err)
	}
	return data, nil
}

// RedisPublisher publishes events on EventsChannel.
type RedisPublisher struct {
	rdb *redis.Client
}

// NewRedisPublisher creates a publisher backed by rdb.
func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

// Publish encodes and publishes one event.
func (p *RedisPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	data, err := Encode(eventType, payload)
	if err != nil {
		return err
	}
	if err := p.rdb.Publish(ctx, EventsChannel, data).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", eventType, err)
	}
	return nil
}

// NopPublisher drops every event. It is used when Redis is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }
