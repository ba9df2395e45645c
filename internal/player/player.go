package player

// Connection is an interface that abstracts the websocket connection.
type Connection interface {
	WriteMessage(messageType int, data []byte) error
	ReadMessage() (int, []byte, error)
	Close() error
}

// Status is the connection state of the human behind a session.
type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// Player is one browser connection attached to a session. ID is the session id
// taken from the connection's token.
type Player struct {
	ID     string
	Conn   Connection
	Status Status
}

// NewPlayer creates a connected player.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{
		ID:     id,
		Conn:   conn,
		Status: StatusConnected,
	}
}
