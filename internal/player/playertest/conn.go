// Package playertest provides an in-memory player.Connection.
package playertest

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var ErrClosed = errors.New("connection closed")

// Conn is a player.Connection backed by channels. Text messages written by the
// server show up on Out; Send feeds client messages to ReadMessage.
type Conn struct {
	in     chan []byte
	Out    chan []byte
	closed chan struct{}
	once   sync.Once
}

func NewConn() *Conn {
	return &Conn{
		in:     make(chan []byte, 16),
		Out:    make(chan []byte, 64),
		closed: make(chan struct{}),
	}
}

func (c *Conn) WriteMessage(messageType int, data []byte) error {
	select {
	case <-c.closed:
		return ErrClosed
	default:
	}
	if messageType != websocket.TextMessage {
		return nil
	}
	c.Out <- data
	return nil
}

func (c *Conn) ReadMessage() (int, []byte, error) {
	select {
	case msg := <-c.in:
		return websocket.TextMessage, msg, nil
	case <-c.closed:
		return 0, nil, ErrClosed
	}
}

func (c *Conn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

// Closed reports whether Close was called.
func (c *Conn) Closed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

// Send queues v, encoded as JSON, for the server to read.
func (c *Conn) Send(t testing.TB, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal client message: %v", err)
	}
	c.in <- data
}

// SendRaw queues raw bytes for the server to read.
func (c *Conn) SendRaw(data []byte) {
	c.in <- data
}

// Next decodes the next server message into v.
func (c *Conn) Next(t testing.TB, v any) {
	t.Helper()
	select {
	case data := <-c.Out:
		if err := json.Unmarshal(data, v); err != nil {
			t.Fatalf("decode server message %s: %v", data, err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a server message")
	}
}

// Drain discards every message already written.
func (c *Conn) Drain() {
	for {
		select {
		case <-c.Out:
		default:
			return
		}
	}
}
