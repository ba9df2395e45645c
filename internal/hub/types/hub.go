package types

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/player"
)

// RegistrationRequest attaches a freshly upgraded connection to the session
// named in its token.
type RegistrationRequest struct {
	Player    *player.Player
	SessionID string
	Ctx       context.Context
}

// PlayerMove is a raw client message read from a connection.
type PlayerMove struct {
	Player  *player.Player
	Message []byte
}
