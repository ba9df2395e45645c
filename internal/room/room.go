package room

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-AI/internal/player"
	"ctchen222/Tic-Tac-Toe-AI/internal/session"
	"ctchen222/Tic-Tac-Toe-AI/internal/telemetry"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
)

const (
	heartbeatInterval = 10 * time.Second
)

var tracer = otel.Tracer("room")

// Options tune a room.
type Options struct {
	// ThinkDelay is the pause between the player's move and the AI reply.
	ThinkDelay time.Duration
	// Grace is how long a room stays open with nobody connected.
	Grace     time.Duration
	Publisher events.Publisher
	Metrics   *telemetry.Metrics
}

// Room serves one game session to at most one connection at a time. All
// access to the session happens on the run goroutine.
type Room struct {
	ID        string
	session   *session.Session
	player    *player.Player
	publisher events.Publisher
	metrics   *telemetry.Metrics

	thinkDelay time.Duration
	grace      time.Duration

	// ctx is the context of the message being handled, used by the
	// session.Notifier methods.
	ctx context.Context

	incomingMoves chan *types.PlayerMove
	attach        chan *player.Player
	detach        chan *player.Player
	Done          chan struct{}
}

// NewRoom wraps s in a room. The room installs itself as the session's notifier.
func NewRoom(s *session.Session, opts Options) *Room {
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}
	if opts.Grace <= 0 {
		opts.Grace = 60 * time.Second
	}
	r := &Room{
		ID:            s.ID,
		session:       s,
		publisher:     opts.Publisher,
		metrics:       opts.Metrics,
		thinkDelay:    opts.ThinkDelay,
		grace:         opts.Grace,
		ctx:           context.Background(),
		incomingMoves: make(chan *types.PlayerMove, 10),
		attach:        make(chan *player.Player),
		detach:        make(chan *player.Player),
		Done:          make(chan struct{}),
	}
	s.SetNotifier(r)
	return r
}

// Start runs the room until ctx ends or the grace period passes with nobody
// connected. The room id is sent on closed when it stops on its own.
func (r *Room) Start(ctx context.Context, closed chan<- string) {
	expired := r.run(ctx)
	close(r.Done)
	if expired {
		select {
		case closed <- r.ID:
		case <-ctx.Done():
		}
	}
}

// Attach hands a new connection to the room, replacing any previous one.
func (r *Room) Attach(p *player.Player) bool {
	select {
	case r.attach <- p:
		return true
	case <-r.Done:
		return false
	}
}

// IncomingMoves returns the channel for incoming player messages.
func (r *Room) IncomingMoves() chan<- *types.PlayerMove {
	return r.incomingMoves
}

// run is the main loop. It reports whether the room expired.
func (r *Room) run(ctx context.Context) bool {
	aiTimer := time.NewTimer(time.Hour)
	aiTimer.Stop()
	graceTimer := time.NewTimer(r.grace)
	pingTicker := time.NewTicker(heartbeatInterval)

	defer func() {
		aiTimer.Stop()
		graceTimer.Stop()
		pingTicker.Stop()
		if r.player != nil {
			r.player.Conn.Close()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Room run goroutine stopping.", "session.id", r.ID)
			return false

		case p := <-r.attach:
			graceTimer.Stop()
			r.handleAttach(ctx, p)

		case p := <-r.detach:
			if p != r.player {
				continue
			}
			p.Status = player.StatusDisconnected
			r.player = nil
			graceTimer.Reset(r.grace)
			slog.InfoContext(ctx, "Player disconnected, waiting for reconnection", "session.id", r.ID, "grace", r.grace)

		case move := <-r.incomingMoves:
			if move.Player != r.player {
				continue
			}
			if r.HandleMessage(ctx, move.Player, move.Message) {
				aiTimer.Reset(r.thinkDelay)
			}
			if r.session.State() != session.AwaitingAIMove {
				aiTimer.Stop()
			}

		case <-aiTimer.C:
			r.playAI(ctx)

		case <-pingTicker.C:
			if r.player != nil {
				if err := r.player.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					slog.WarnContext(ctx, "Failed to send ping, assuming disconnect", "session.id", r.ID, "error", err)
				}
			}

		case <-graceTimer.C:
			if r.player == nil {
				slog.InfoContext(ctx, "Reconnection grace period exceeded. Closing room.", "session.id", r.ID)
				return true
			}
		}
	}
}

// ReadPump pumps messages from the connection into the room until it fails.
func (r *Room) ReadPump(ctx context.Context, p *player.Player) {
	defer func() {
		p.Conn.Close()
		select {
		case r.detach <- p:
		case <-r.Done:
		}
	}()

	for {
		_, msg, err := p.Conn.ReadMessage()
		if err != nil {
			slog.WarnContext(ctx, "Player connection error", "session.id", r.ID, "error", err)
			return
		}
		select {
		case r.incomingMoves <- &types.PlayerMove{Player: p, Message: msg}:
		case <-r.Done:
			return
		}
	}
}
