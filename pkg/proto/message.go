package proto

import "ctchen222/Tic-Tac-Toe-AI/internal/game"

// Client message types.
const (
	TypeMove       = "move"
	TypeDifficulty = "difficulty"
	TypeRestart    = "restart"
	TypeState      = "state"
)

// Server message types.
const (
	TypeAssignment = "assignment"
	TypeMarkPlaced = "mark_placed"
	TypeGameOver   = "game_over"
	TypeScore      = "score"
	TypeError      = "error"
)

// Error reasons.
const (
	ReasonInvalidMessage   = "invalid_message"
	ReasonDifficultyLocked = "difficulty_locked"
	ReasonUnknownSession   = "unknown_session"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type       string `json:"type" validate:"required,oneof=move difficulty restart state"`
	Position   []int  `json:"position,omitempty" validate:"required_if=Type move,omitempty,len=2"`
	Difficulty string `json:"difficulty,omitempty" validate:"required_if=Type difficulty,omitempty,oneof=easy hard pain"`
}

// Score is the running total of a session.
type Score struct {
	AI     int `json:"ai"`
	Player int `json:"player"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type             string              `json:"type" validate:"required"`
	Reason           string              `json:"reason,omitempty"`
	Board            [][]game.PlayerMark `json:"board,omitempty"`
	Next             game.PlayerMark     `json:"next,omitempty"`
	State            string              `json:"state,omitempty"`
	Difficulty       string              `json:"difficulty,omitempty"`
	DifficultyLocked bool                `json:"difficulty_locked,omitempty"`
	Mark             game.PlayerMark     `json:"mark,omitempty"`
	Position         []int               `json:"position,omitempty"`
	Outcome          *game.Outcome       `json:"outcome,omitempty"`
	Start            *game.Cell          `json:"start,omitempty"`
	End              *game.Cell          `json:"end,omitempty"`
	Score            *Score              `json:"score,omitempty"`
}

// PlayerAssignmentMessage tells the client which mark it plays and which
// session it is attached to.
type PlayerAssignmentMessage struct {
	Type      string          `json:"type"`
	SessionID string          `json:"session_id,omitempty"`
	Mark      game.PlayerMark `json:"mark"`
	AIMark    game.PlayerMark `json:"ai_mark"`
}
