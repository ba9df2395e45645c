package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/player"
	"ctchen222/Tic-Tac-Toe-AI/internal/session"
	"ctchen222/Tic-Tac-Toe-AI/internal/validator"
	"ctchen222/Tic-Tac-Toe-AI/pkg/proto"
	"encoding/json"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// HandleMessage handles a message from the player. It acts as a dispatcher and
// reports whether the AI should now be scheduled to move.
func (r *Room) HandleMessage(ctx context.Context, p *player.Player, rawMessage []byte) bool {
	ctx, span := tracer.Start(ctx, "room.HandleMessage", trace.WithAttributes(
		attribute.String("session.id", r.ID),
	))
	defer span.End()

	if p.Status == player.StatusDisconnected {
		slog.WarnContext(ctx, "ignoring message from disconnected player", "session.id", r.ID)
		span.SetStatus(codes.Error, "Message from disconnected player")
		return false
	}

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(rawMessage, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "session.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		r.sendError(ctx, proto.ReasonInvalidMessage)
		return false
	}

	if err := validator.Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from player", "session.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		r.sendError(ctx, proto.ReasonInvalidMessage+": "+validator.Reason(err))
		return false
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	r.ctx = ctx
	defer func() { r.ctx = context.Background() }()

	switch message.Type {
	case proto.TypeMove:
		return r.handleMove(ctx, &message)
	case proto.TypeDifficulty:
		r.handleDifficulty(ctx, &message)
	case proto.TypeRestart:
		r.handleRestart(ctx)
	case proto.TypeState:
		r.sendState(ctx)
	}
	return false
}

// handleMove submits the player's move. Illegal moves leave the game untouched.
func (r *Room) handleMove(ctx context.Context, message *proto.ClientToServerMessage) bool {
	row, col := message.Position[0], message.Position[1]
	ctx, moveSpan := tracer.Start(ctx, "room.handleMove", trace.WithAttributes(
		attribute.String("session.id", r.ID),
		attribute.Int("move.row", row),
		attribute.Int("move.col", col),
	))
	defer moveSpan.End()

	if !r.session.SubmitPlayerMove(row, col) {
		slog.DebugContext(ctx, "ignored illegal move", "session.id", r.ID, "move.row", row, "move.col", col, "session.state", r.session.State())
		moveSpan.SetAttributes(attribute.Bool("move.valid", false))
		return false
	}
	moveSpan.SetAttributes(attribute.Bool("move.valid", true))
	return r.session.State() == session.AwaitingAIMove
}

// handleDifficulty changes the AI level. The level is fixed while a game is
// under way and free again once it ends or restarts.
func (r *Room) handleDifficulty(ctx context.Context, message *proto.ClientToServerMessage) {
	ctx, span := tracer.Start(ctx, "room.handleDifficulty", trace.WithAttributes(
		attribute.String("session.id", r.ID),
		attribute.String("difficulty", message.Difficulty),
	))
	defer span.End()

	if r.difficultyLocked() {
		span.SetStatus(codes.Error, "Difficulty locked")
		r.sendError(ctx, proto.ReasonDifficultyLocked)
		return
	}

	d, err := bot.ParseDifficulty(message.Difficulty)
	if err == nil {
		err = r.session.SetDifficulty(d)
	}
	if err != nil {
		slog.WarnContext(ctx, "rejected difficulty", "session.id", r.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid difficulty")
		r.sendError(ctx, proto.ReasonInvalidMessage)
		return
	}

	slog.InfoContext(ctx, "Difficulty changed", "session.id", r.ID, "difficulty", d.String())
	r.sendState(ctx)
}

// handleRestart clears the board and keeps the score.
func (r *Room) handleRestart(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "room.handleRestart", trace.WithAttributes(
		attribute.String("session.id", r.ID),
	))
	defer span.End()

	r.session.Restart()
	slog.InfoContext(ctx, "Game restarted", "session.id", r.ID, "score.ai", r.session.Scores().AI, "score.player", r.session.Scores().Player)
	r.sendState(ctx)
}

// playAI lets the strategy move and measures how long it took.
func (r *Room) playAI(ctx context.Context) {
	difficulty := r.session.Difficulty().String()
	ctx, span := tracer.Start(ctx, "room.playAI", trace.WithAttributes(
		attribute.String("session.id", r.ID),
		attribute.String("difficulty", difficulty),
	))
	defer span.End()

	r.ctx = ctx
	defer func() { r.ctx = context.Background() }()

	start := time.Now()
	cell, ok := r.session.RequestAIMove()
	if !ok {
		span.SetAttributes(attribute.Bool("ai.moved", false))
		return
	}
	if r.metrics != nil {
		r.metrics.AIMoveTook(ctx, time.Since(start), difficulty)
	}
	span.SetAttributes(
		attribute.Bool("ai.moved", true),
		attribute.Int("move.row", cell.Row),
		attribute.Int("move.col", cell.Col),
	)
}

func (r *Room) difficultyLocked() bool {
	return r.session.MovesPlayed() > 0 && r.session.State() != session.GameOver
}
