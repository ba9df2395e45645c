package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "ctchen222/Tic-Tac-Toe-AI"

// Metrics holds the game instruments.
type Metrics struct {
	gamesCompleted metric.Int64Counter
	moves          metric.Int64Counter
	aiMoveDuration metric.Float64Histogram
}

// NewMetrics registers the instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	return NewMetricsFrom(otel.GetMeterProvider())
}

// NewMetricsFrom registers the instruments on mp.
func NewMetricsFrom(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)

	gamesCompleted, err := meter.Int64Counter("ttt.games.completed",
		metric.WithDescription("Finished games by result and difficulty"))
	if err != nil {
		return nil, fmt.Errorf("games counter: %w", err)
	}
	moves, err := meter.Int64Counter("ttt.moves",
		metric.WithDescription("Marks placed by either side"))
	if err != nil {
		return nil, fmt.Errorf("moves counter: %w", err)
	}
	aiMoveDuration, err := meter.Float64Histogram("ttt.ai.move.duration",
		metric.WithDescription("Time spent choosing an AI move"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("ai move histogram: %w", err)
	}

	return &Metrics{
		gamesCompleted: gamesCompleted,
		moves:          moves,
		aiMoveDuration: aiMoveDuration,
	}, nil
}

// GameCompleted counts one finished game. result is "ai", "player" or "draw".
func (m *Metrics) GameCompleted(ctx context.Context, result, difficulty string) {
	m.gamesCompleted.Add(ctx, 1, metric.WithAttributes(
		attribute.String("result", result),
		attribute.String("difficulty", difficulty),
	))
}

// MovePlaced counts one mark.
func (m *Metrics) MovePlaced(ctx context.Context, mark string) {
	m.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("mark", mark)))
}

// AIMoveTook records how long a strategy needed.
func (m *Metrics) AIMoveTook(ctx context.Context, d time.Duration, difficulty string) {
	m.aiMoveDuration.Record(ctx, float64(d)/float64(time.Millisecond),
		metric.WithAttributes(attribute.String("difficulty", difficulty)))
}
