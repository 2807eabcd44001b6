package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/huynh044/ChatBot-BookStore/internal/model/chat"
)

// ConnState is the observable connection indicator.
type ConnState string

const (
	StateDisconnected ConnState = "disconnected"
	StateConnecting   ConnState = "connecting"
	StateConnected    ConnState = "connected"
)

// ReconnectDelay is the fixed pause before a reconnect attempt. Failures
// retry forever at this interval until a manual disconnect supersedes them.
const ReconnectDelay = 1500 * time.Millisecond

// ConnConfig wires a connection manager.
type ConnConfig struct {
	// Dialer opens the transport. Defaults to the WebSocket dialer.
	Dialer Dialer
	// URLFor maps a session identifier to its live endpoint.
	URLFor func(sessionID string) string
	// OnEvent receives decoded push events. Must not call back into Conn.
	OnEvent func(chat.Event)
	// OnState observes indicator transitions. Must not call back into Conn.
	OnState func(ConnState)
}

// Conn keeps at most one live socket bound to the current session and
// re-establishes it after unexpected drops.
//
// Every asynchronous continuation (dial completion, read-pump exit, retry
// timer) carries the generation it belongs to; a manual close or a session
// switch bumps the generation so late callbacks from a superseded socket
// are discarded instead of reconnecting into the old session.
type Conn struct {
	dialer  Dialer
	urlFor  func(string) string
	onEvent func(chat.Event)
	onState func(ConnState)

	mu        sync.Mutex
	ctx       context.Context
	gen       uint64
	sessionID string
	sock      Socket
	state     ConnState
	retry     *time.Timer
	delay     backoff.BackOff
}

// NewConn creates a connection manager in the disconnected state.
func NewConn(cfg ConnConfig) *Conn {
	if cfg.Dialer == nil {
		cfg.Dialer = NewWSDialer()
	}
	if cfg.URLFor == nil {
		panic("client: ConnConfig.URLFor is required")
	}
	return &Conn{
		dialer:  cfg.Dialer,
		urlFor:  cfg.URLFor,
		onEvent: cfg.OnEvent,
		onState: cfg.OnState,
		ctx:     context.Background(),
		state:   StateDisconnected,
		delay:   backoff.NewConstantBackOff(ReconnectDelay),
	}
}

// State reports the current indicator value.
func (c *Conn) State() ConnState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SessionID reports the session the connection currently targets.
func (c *Conn) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Connect tears down any previous connection (manually, without a
// reconnect) and opens a new one addressed to sessionID.
func (c *Conn) Connect(ctx context.Context, sessionID string) {
	c.mu.Lock()
	c.teardownLocked()
	c.ctx = ctx
	c.sessionID = sessionID
	gen := c.gen
	c.setStateLocked(StateConnecting)
	c.mu.Unlock()

	go c.dial(ctx, gen)
}

// SwitchTo retargets the connection: a manual close of the old session's
// socket followed immediately by a connect to the new one.
func (c *Conn) SwitchTo(ctx context.Context, sessionID string) {
	c.Connect(ctx, sessionID)
}

// Disconnect closes the connection deliberately. No reconnect fires, and
// a pending retry timer is cancelled.
func (c *Conn) Disconnect() {
	c.mu.Lock()
	c.teardownLocked()
	c.setStateLocked(StateDisconnected)
	c.mu.Unlock()
}

// teardownLocked invalidates the current generation so every in-flight
// callback for it becomes a no-op.
func (c *Conn) teardownLocked() {
	c.gen++
	if c.retry != nil {
		c.retry.Stop()
		c.retry = nil
	}
	if c.sock != nil {
		c.sock.Close()
		c.sock = nil
	}
	c.delay.Reset()
}

func (c *Conn) setStateLocked(state ConnState) {
	if c.state == state {
		return
	}
	c.state = state
	if c.onState != nil {
		c.onState(state)
	}
}

func (c *Conn) dial(ctx context.Context, gen uint64) {
	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}
	url := c.urlFor(c.sessionID)
	c.mu.Unlock()

	sock, err := c.dialer.DialContext(ctx, url)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		if sock != nil {
			sock.Close()
		}
		return
	}
	if err != nil {
		if ctx.Err() != nil {
			// Context teardown ends the retry loop for good.
			c.setStateLocked(StateDisconnected)
			return
		}
		log.Printf("[ws] dial %s failed: %v", url, err)
		c.scheduleRetryLocked(gen)
		return
	}

	c.sock = sock
	c.setStateLocked(StateConnected)
	go c.readLoop(sock, gen)
}

func (c *Conn) readLoop(sock Socket, gen uint64) {
	for {
		data, err := sock.ReadMessage()
		if err != nil {
			c.closed(gen)
			return
		}

		// A corrupt frame must not break the session.
		ev, ok := chat.DecodeEvent(data)
		if !ok {
			continue
		}

		c.mu.Lock()
		stale := gen != c.gen
		c.mu.Unlock()
		if stale {
			return
		}
		if c.onEvent != nil {
			c.onEvent(ev)
		}
	}
}

// closed handles an unexpected socket close: anything that was not
// superseded by a manual disconnect or a session switch.
func (c *Conn) closed(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.sock = nil
	c.setStateLocked(StateDisconnected)
	c.scheduleRetryLocked(gen)
}

func (c *Conn) scheduleRetryLocked(gen uint64) {
	ctx := c.ctx
	c.retry = time.AfterFunc(c.delay.NextBackOff(), func() {
		c.mu.Lock()
		if gen != c.gen {
			c.mu.Unlock()
			return
		}
		c.retry = nil
		c.setStateLocked(StateConnecting)
		c.mu.Unlock()

		c.dial(ctx, gen)
	})
}
