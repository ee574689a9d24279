package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// ClientMessage is a message sent by a WebSocket client.
type ClientMessage struct {
	Action       string `json:"action"` // subscribe | unsubscribe | ping
	RunID        string `json:"runId,omitempty"`
	LastSequence int64  `json:"lastSequence,omitempty"`
}

// ConnectionManager manages WebSocket connections and their per-run bus
// subscriptions. Each process has one instance.
type ConnectionManager struct {
	bus *Bus

	connections map[string]*Connection
	mu          sync.RWMutex

	writeTimeout time.Duration
}

// Connection represents a single WebSocket client.
//
// subs is accessed only from the goroutine that owns this connection
// (HandleConnection's read loop and its deferred cleanup), so it needs no
// lock. The forwarder goroutines never touch it.
type Connection struct {
	ID     string
	Conn   *websocket.Conn
	subs   map[string]*runSubscription // runID → active subscription
	ctx    context.Context
	cancel context.CancelFunc
}

type runSubscription struct {
	sub    *Subscription
	cancel context.CancelFunc
	done   chan struct{}
}

// NewConnectionManager creates a connection manager over the given bus.
func NewConnectionManager(bus *Bus, writeTimeout time.Duration) *ConnectionManager {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &ConnectionManager{
		bus:          bus,
		connections:  make(map[string]*Connection),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the WebSocket HTTP handler after upgrade. Blocks until the
// connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:     connID,
		Conn:   conn,
		subs:   make(map[string]*runSubscription),
		ctx:    ctx,
		cancel: cancel,
	}

	m.registerConnection(c)
	defer m.unregisterConnection(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message",
				"connection_id", connID, "error", err)
			continue
		}

		m.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of active WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.RunID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "runId is required for subscribe"})
			return
		}
		if err := m.subscribe(ctx, c, msg.RunID, msg.LastSequence); err != nil {
			m.sendJSON(c, map[string]string{
				"type":    "subscription.error",
				"runId":   msg.RunID,
				"message": "failed to subscribe to run",
			})
			return
		}
		m.sendJSON(c, map[string]any{
			"type":         "subscription.confirmed",
			"runId":        msg.RunID,
			"fromSequence": msg.LastSequence,
		})

	case "unsubscribe":
		if msg.RunID == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "runId is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.RunID)

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe attaches the connection to a run's event stream starting after
// lastSequence. Re-subscribing to the same run replaces the previous
// subscription, which is how clients recover after a stream.lagged notice.
func (m *ConnectionManager) subscribe(ctx context.Context, c *Connection, runID string, lastSequence int64) error {
	if prev, ok := c.subs[runID]; ok {
		prev.cancel()
		prev.sub.Close()
		<-prev.done
		delete(c.subs, runID)
	}

	subCtx, subCancel := context.WithCancel(ctx)
	sub, err := m.bus.Subscribe(subCtx, runID, lastSequence)
	if err != nil {
		subCancel()
		return err
	}

	rs := &runSubscription{sub: sub, cancel: subCancel, done: make(chan struct{})}
	c.subs[runID] = rs

	go func() {
		defer close(rs.done)
		for ev := range sub.C {
			data, err := json.Marshal(ev)
			if err != nil {
				slog.Warn("Failed to marshal event", "run_id", runID, "error", err)
				continue
			}
			if err := m.sendRaw(c, data); err != nil {
				slog.Warn("Failed to send event to WebSocket client",
					"connection_id", c.ID, "run_id", runID, "error", err)
				sub.Close()
				return
			}
		}
		// Channel closed by the bus: either we lagged or the subscription
		// was cancelled. On lag, tell the client to resume by sequence.
		if sub.Lagged() {
			m.sendJSON(c, map[string]string{
				"type":    "stream.lagged",
				"runId":   runID,
				"message": "event stream lagged; re-subscribe with lastSequence",
			})
		}
	}()
	return nil
}

func (m *ConnectionManager) unsubscribe(c *Connection, runID string) {
	rs, ok := c.subs[runID]
	if !ok {
		return
	}
	rs.cancel()
	rs.sub.Close()
	<-rs.done
	delete(c.subs, runID)
}

func (m *ConnectionManager) registerConnection(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregisterConnection(c *Connection) {
	for runID := range c.subs {
		m.unsubscribe(c, runID)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.Conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message",
			"connection_id", c.ID, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		slog.Warn("Failed to send WebSocket message",
			"connection_id", c.ID, "error", err)
	}
}

func (m *ConnectionManager) sendRaw(c *Connection, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.Conn.Write(writeCtx, websocket.MessageText, data)
}
