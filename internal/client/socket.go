package client

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
)

// Socket is one live connection delivering raw frames.
type Socket interface {
	// ReadMessage blocks until the next frame or a connection error.
	ReadMessage() ([]byte, error)
	Close() error
}

// Dialer opens sockets. The production implementation speaks WebSocket;
// tests inject a synthetic one.
type Dialer interface {
	DialContext(ctx context.Context, url string) (Socket, error)
}

// WSDialer dials real WebSocket endpoints via gorilla/websocket.
type WSDialer struct {
	dialer *websocket.Dialer
}

// NewWSDialer creates the default production dialer.
func NewWSDialer() *WSDialer {
	return &WSDialer{
		dialer: &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
}

func (d *WSDialer) DialContext(ctx context.Context, url string) (Socket, error) {
	conn, _, err := d.dialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return &wsSocket{conn: conn}, nil
}

type wsSocket struct {
	conn *websocket.Conn
}

func (s *wsSocket) ReadMessage() ([]byte, error) {
	_, data, err := s.conn.ReadMessage()
	return data, err
}

func (s *wsSocket) Close() error {
	return s.conn.Close()
}
