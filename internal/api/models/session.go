package models

// CreateSessionRequest defines the structure for a new game session request.
// The body is optional; an empty difficulty means the server default.
type CreateSessionRequest struct {
	Difficulty string `json:"difficulty" binding:"omitempty,oneof=easy hard pain"`
}

// CreateSessionResponse carries what the client needs to open the websocket.
type CreateSessionResponse struct {
	SessionID  string `json:"session_id"`
	Token      string `json:"token"`
	Difficulty string `json:"difficulty"`
}
