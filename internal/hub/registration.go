package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"ctchen222/Tic-Tac-Toe-AI/internal/session"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// createRoom starts a room for a fresh session. The room runs on the hub's
// context; reqCtx only carries the caller's trace.
func (h *Hub) createRoom(ctx, reqCtx context.Context, difficulty bot.Difficulty) (string, error) {
	_, span := tracer.Start(reqCtx, "hub.createRoom", trace.WithAttributes(
		attribute.String("difficulty", difficulty.String()),
	))
	defer span.End()

	id := h.opts.NewID()
	s, err := session.New(id, nil, session.WithDifficulty(difficulty))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create session")
		return "", fmt.Errorf("create room: %w", err)
	}
	span.SetAttributes(attribute.String("session.id", id))

	newRoom := room.NewRoom(s, room.Options{
		ThinkDelay: h.opts.ThinkDelay,
		Grace:      h.opts.Grace,
		Publisher:  h.opts.Publisher,
		Metrics:    h.opts.Metrics,
	})
	h.rooms[id] = newRoom
	go newRoom.Start(ctx, h.closed)

	slog.InfoContext(reqCtx, "Room created", "session.id", id, "difficulty", difficulty.String(), "rooms", len(h.rooms))
	return id, nil
}

// handleRegistration attaches a connection to its session's room. Reconnects
// land in the same room, so the board and scores carry over.
func (h *Hub) handleRegistration(ctx context.Context, req *types.RegistrationRequest) {
	reqCtx := req.Ctx
	if reqCtx == nil {
		reqCtx = ctx
	}
	reqCtx, span := tracer.Start(reqCtx, "hub.handleRegistration", trace.WithAttributes(
		attribute.String("session.id", req.SessionID),
	))
	defer span.End()

	existingRoom, ok := h.rooms[req.SessionID]
	if !ok {
		slog.WarnContext(reqCtx, "Registration for unknown session", "session.id", req.SessionID)
		span.SetStatus(codes.Error, "Unknown session")
		rejectConnection(reqCtx, req)
		return
	}

	if !existingRoom.Attach(req.Player) {
		slog.WarnContext(reqCtx, "Room closed before the player could attach", "session.id", req.SessionID)
		span.SetStatus(codes.Error, "Room closed")
		rejectConnection(reqCtx, req)
		return
	}
	slog.InfoContext(reqCtx, "Player registered", "session.id", req.SessionID)
}
