package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/game"
	"ctchen222/Tic-Tac-Toe-AI/internal/player"
	"ctchen222/Tic-Tac-Toe-AI/pkg/proto"
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// handleAttach makes p the room's connection and sends it everything it needs
// to draw the game.
func (r *Room) handleAttach(runCtx context.Context, p *player.Player) {
	ctx, span := tracer.Start(runCtx, "room.handleAttach", trace.WithAttributes(
		attribute.String("session.id", r.ID),
		attribute.Bool("room.replaced", r.player != nil),
	))
	defer span.End()

	if r.player != nil && r.player != p {
		slog.InfoContext(ctx, "Replacing existing connection", "session.id", r.ID)
		r.player.Status = player.StatusDisconnected
		r.player.Conn.Close()
	}
	r.player = p
	go r.ReadPump(runCtx, p)

	r.send(ctx, &proto.PlayerAssignmentMessage{
		Type:      proto.TypeAssignment,
		SessionID: r.ID,
		Mark:      game.HumanMark,
		AIMark:    game.AIMark,
	})
	r.sendState(ctx)
	slog.InfoContext(ctx, "Player attached to room", "session.id", r.ID, "moves", r.session.MovesPlayed())
}

// send writes message to the attached connection, if any.
func (r *Room) send(ctx context.Context, message any) {
	if r.player == nil {
		return
	}
	_, span := tracer.Start(ctx, "room.send", trace.WithAttributes(
		attribute.String("session.id", r.ID),
	))
	defer span.End()

	data, err := json.Marshal(message)
	if err != nil {
		slog.ErrorContext(ctx, "error marshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error marshalling message")
		return
	}
	if err := r.player.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.ErrorContext(ctx, "error writing message to player", "session.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error writing message to player")
	}
}

func (r *Room) sendError(ctx context.Context, reason string) {
	r.send(ctx, &proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason})
}

// sendState sends a full snapshot of the session.
func (r *Room) sendState(ctx context.Context) {
	s := r.session
	scores := s.Scores()
	msg := &proto.ServerToClientMessage{
		Type:             proto.TypeState,
		Board:            game.BoardAsStrings(s.Board()),
		Next:             s.Turn(),
		State:            string(s.State()),
		Difficulty:       s.Difficulty().String(),
		DifficultyLocked: r.difficultyLocked(),
		Score:            &proto.Score{AI: scores.AI, Player: scores.Player},
	}
	if outcome := s.Outcome(); outcome.IsOver() {
		msg.Outcome = &outcome
		msg.Start, msg.End = lineEnds(outcome)
	}
	r.send(ctx, msg)
}

func lineEnds(outcome game.Outcome) (*game.Cell, *game.Cell) {
	if outcome.Line == nil {
		return nil, nil
	}
	start, end := outcome.Line.Start(), outcome.Line.End()
	return &start, &end
}

// publish sends an event and only logs failures.
func (r *Room) publish(ctx context.Context, eventType string, payload any) {
	if err := r.publisher.Publish(ctx, eventType, payload); err != nil {
		slog.WarnContext(ctx, "failed to publish event", "session.id", r.ID, "event.type", eventType, "error", err)
		trace.SpanFromContext(ctx).RecordError(err)
	}
}

// MarkPlaced implements session.Notifier.
func (r *Room) MarkPlaced(mark game.PlayerMark, cell game.Cell) {
	ctx := r.ctx
	r.send(ctx, &proto.ServerToClientMessage{
		Type:     proto.TypeMarkPlaced,
		Mark:     mark,
		Position: []int{cell.Row, cell.Col},
		Next:     mark.Opponent(),
	})
	if r.metrics != nil {
		r.metrics.MovePlaced(ctx, string(mark))
	}
	r.publish(ctx, events.TypeMarkPlaced, events.MarkPlacedPayload{
		SessionID: r.ID,
		Mark:      mark,
		Row:       cell.Row,
		Col:       cell.Col,
	})
}

// GameOver implements session.Notifier.
func (r *Room) GameOver(outcome game.Outcome) {
	ctx := r.ctx
	difficulty := r.session.Difficulty().String()
	start, end := lineEnds(outcome)
	r.send(ctx, &proto.ServerToClientMessage{
		Type:    proto.TypeGameOver,
		Outcome: &outcome,
		Start:   start,
		End:     end,
	})

	result := "draw"
	switch outcome.Winner {
	case game.AIMark:
		result = "ai"
	case game.HumanMark:
		result = "player"
	}
	slog.InfoContext(ctx, "Game over", "session.id", r.ID, "result", result, "difficulty", difficulty)
	if r.metrics != nil {
		r.metrics.GameCompleted(ctx, result, difficulty)
	}
	r.publish(ctx, events.TypeGameOver, events.GameOverPayload{
		SessionID:  r.ID,
		Difficulty: difficulty,
		Outcome:    outcome.Status,
		Winner:     outcome.Winner,
		Line:       outcome.Line,
	})
}

// ScoreChanged implements session.Notifier.
func (r *Room) ScoreChanged(aiScore, playerScore int) {
	ctx := r.ctx
	r.send(ctx, &proto.ServerToClientMessage{
		Type:  proto.TypeScore,
		Score: &proto.Score{AI: aiScore, Player: playerScore},
	})
	r.publish(ctx, events.TypeScoreChanged, events.ScoreChangedPayload{
		SessionID:   r.ID,
		AIScore:     aiScore,
		PlayerScore: playerScore,
	})
}
