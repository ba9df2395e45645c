package service

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/api/models"
	"ctchen222/Tic-Tac-Toe-AI/internal/bot"
	"fmt"
)

//go:generate mockgen -destination=mocks/mock_session_creator.go -package=mocks ctchen222/Tic-Tac-Toe-AI/internal/api/service SessionCreator,TokenIssuer

// SessionCreator opens a live game session.
type SessionCreator interface {
	CreateSession(ctx context.Context, difficulty bot.Difficulty) (string, error)
}

// TokenIssuer signs the token a client presents when connecting.
type TokenIssuer interface {
	Issue(sessionID string) (string, error)
}

// SessionService defines the interface for session-related business logic.
type SessionService interface {
	Create(ctx context.Context, req *models.CreateSessionRequest) (*models.CreateSessionResponse, error)
}

type sessionService struct {
	sessions          SessionCreator
	tokens            TokenIssuer
	defaultDifficulty bot.Difficulty
}

// NewSessionService creates a new SessionService.
func NewSessionService(sessions SessionCreator, tokens TokenIssuer, defaultDifficulty bot.Difficulty) SessionService {
	return &sessionService{
		sessions:          sessions,
		tokens:            tokens,
		defaultDifficulty: defaultDifficulty,
	}
}

// Create starts a session at the requested difficulty and issues its token.
func (s *sessionService) Create(ctx context.Context, req *models.CreateSessionRequest) (*models.CreateSessionResponse, error) {
	difficulty := s.defaultDifficulty
	if req != nil && req.Difficulty != "" {
		d, err := bot.ParseDifficulty(req.Difficulty)
		if err != nil {
			return nil, err
		}
		difficulty = d
	}

	id, err := s.sessions.CreateSession(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &models.CreateSessionResponse{
		SessionID:  id,
		Token:      token,
		Difficulty: difficulty.String(),
	}, nil
}
