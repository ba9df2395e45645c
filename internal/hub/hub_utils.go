package hub

import (
	"context"
	"ctchen222/Tic-Tac-Toe-AI/internal/hub/types"
	"ctchen222/Tic-Tac-Toe-AI/pkg/proto"
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
)

// rejectConnection tells the client its session is gone and hangs up.
func rejectConnection(ctx context.Context, req *types.RegistrationRequest) {
	p := req.Player
	if p == nil || p.Conn == nil {
		return
	}
	defer p.Conn.Close()

	data, _ := json.Marshal(&proto.ServerToClientMessage{Type: proto.TypeError, Reason: proto.ReasonUnknownSession})
	if err := p.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
		slog.WarnContext(ctx, "Error sending rejection to player", "session.id", req.SessionID, "error", err)
	}
}
