package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-AI/internal/room"
	"ctchen222/Tic-Tac-Toe-AI/internal/telemetry"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("hub")

var ErrHubStopped = errors.New("hub stopped")

// Options configure every room the hub opens.
type Options struct {
	ThinkDelay time.Duration
	Grace      time.Duration
	Publisher  events.Publisher
	Metrics    *telemetry.Metrics
	// NewID generates session ids. Defaults to random UUIDs.
	NewID func() string
}

type createRequest struct {
	ctx        context.Context
	difficulty bot.Difficulty
	reply      chan createResult
}

type createResult struct {
	id  string
	err error
}

// Hub owns the live rooms, keyed by session id.
type Hub struct {
	opts     Options
	rooms    map[string]*room.Room
	register chan *types.RegistrationRequest
	create   chan *createRequest
	closed   chan string
	stopped  chan struct{}
}

// NewHub creates a new hub.
func NewHub(opts Options) *Hub {
	if opts.NewID == nil {
		opts.NewID = func() string { return uuid.New().String() }
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}
	return &Hub{
		opts:     opts,
		rooms:    make(map[string]*room.Room),
		register: make(chan *types.RegistrationRequest),
		create:   make(chan *createRequest),
		closed:   make(chan string),
		stopped:  make(chan struct{}),
	}
}

// Run serves registrations until ctx is cancelled. Rooms stop with it.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.stopped)
	slog.InfoContext(ctx, "Hub started")

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Hub stopping", "rooms", len(h.rooms))
			for _, r := range h.rooms {
				<-r.Done
			}
			return

		case req := <-h.create:
			id, err := h.createRoom(ctx, req.ctx, req.difficulty)
			req.reply <- createResult{id: id, err: err}

		case req := <-h.register:
			h.handleRegistration(ctx, req)

		case id := <-h.closed:
			delete(h.rooms, id)
			slog.InfoContext(ctx, "Room closed", "session.id", id, "rooms", len(h.rooms))
		}
	}
}

// CreateSession opens a room for a new session and returns its id.
func (h *Hub) CreateSession(ctx context.Context, difficulty bot.Difficulty) (string, error) {
	req := &createRequest{ctx: ctx, difficulty: difficulty, reply: make(chan createResult, 1)}
	select {
	case h.create <- req:
	case <-h.stopped:
		return "", ErrHubStopped
	case <-ctx.Done():
		return "", ctx.Err()
	}

	res := <-req.reply
	return res.id, res.err
}

// Register returns the register channel.
func (h *Hub) Register() chan<- *types.RegistrationRequest {
	return h.register
}

// Stopped is closed once Run has returned.
func (h *Hub) Stopped() <-chan struct{} {
	return h.stopped
}
