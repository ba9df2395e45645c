// Command watch prints the game events a server publishes to Redis.
package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/db"
	"ctchen222/Tic-Tac-Toe-AI/internal/events"
	"ctchen222/Tic-Tac-Toe-AI/internal/logger"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	defaultAddr := os.Getenv("REDIS_CONNSTRING")
	if defaultAddr == "" {
		defaultAddr = "localhost:6379"
	}
	addr := flag.String("redis", defaultAddr, "Redis address")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger.Init(*level)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := db.NewRedisClient(ctx, *addr)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	err = events.Subscribe(ctx, rdb, func(ctx context.Context, eventType string, payload any) {
		switch p := payload.(type) {
		case *events.MarkPlacedPayload:
			slog.InfoContext(ctx, eventType, "session.id", p.SessionID, "mark", p.Mark, "move.row", p.Row, "move.col", p.Col)
		case *events.GameOverPayload:
			slog.InfoContext(ctx, eventType, "session.id", p.SessionID, "outcome", p.Outcome, "winner", p.Winner, "difficulty", p.Difficulty)
		case *events.ScoreChangedPayload:
			slog.InfoContext(ctx, eventType, "session.id", p.SessionID, "score.ai", p.AIScore, "score.player", p.PlayerScore)
		}
	})
	if err != nil {
		slog.Error("subscriber stopped", "error", err)
		os.Exit(1)
	}
}
