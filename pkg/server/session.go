package server

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lumaui/luma/pkg/transport"
	"github.com/lumaui/luma/pkg/ui"
)

// Session represents one WebSocket connection and its element tree.
// The read goroutine owns the tree; the outbox goroutine owns delivery.
// Both funnel conn writes through mu.
type Session struct {
	// Identity
	ID         string
	CreatedAt  time.Time
	lastActive atomic.Int64

	// Connection
	conn   *websocket.Conn
	mu     sync.Mutex // Protects conn writes
	closed atomic.Bool

	// Element tree and delivery
	client *ui.Client
	outbox *transport.Outbox

	done chan struct{}
	once sync.Once

	config  *ServerConfig
	logger  *slog.Logger
	metrics *metrics
	onClose func(*Session)
}

// newSession wires a connection to a fresh element tree. The outbox
// drains into the session itself, which implements transport.Sink.
func newSession(conn *websocket.Conn, cfg *ServerConfig, logger *slog.Logger, m *metrics) *Session {
	s := &Session{
		CreatedAt: time.Now(),
		conn:      conn,
		done:      make(chan struct{}),
		config:    cfg,
		metrics:   m,
	}
	s.lastActive.Store(time.Now().UnixNano())

	s.outbox = transport.NewOutbox(s, cfg.OutboxSize, logger)
	if m != nil {
		s.outbox.OnDrop(func(transport.Message) {
			m.updatesDropped.Inc()
		})
	}

	s.client = ui.NewClient(s.outbox, logger)
	s.ID = s.client.ID()
	s.logger = logger.With("session_id", s.ID)
	return s
}

// Client returns the session's element tree owner.
func (s *Session) Client() *ui.Client {
	return s.client
}

// IsClosed reports whether the session has been closed.
func (s *Session) IsClosed() bool {
	return s.closed.Load()
}

// LastActive returns the time of the last inbound message.
func (s *Session) LastActive() time.Time {
	return time.Unix(0, s.lastActive.Load())
}

// touch updates the activity timestamp.
func (s *Session) touch() {
	s.lastActive.Store(time.Now().UnixNano())
}

// Send implements transport.Sink. It writes one message as a JSON text
// frame. Called only from the outbox goroutine.
func (s *Session) Send(msg transport.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return websocket.ErrCloseSent
	}

	if s.metrics != nil && msg.Event == ui.EventUpdate {
		s.metrics.updatesSent.Inc()
		if payload, ok := msg.Payload.(ui.UpdatePayload); ok {
			s.metrics.updateBatch.Observe(float64(len(payload.Elements)))
		}
	}

	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteJSON(msg)
}

// HeartbeatLoop sends ping frames until the session closes.
func (s *Session) HeartbeatLoop() {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := s.sendPing(); err != nil {
				s.Close()
				return
			}

		case <-s.done:
			return
		}
	}
}

func (s *Session) sendPing() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed.Load() {
		return websocket.ErrCloseSent
	}
	s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
	return s.conn.WriteMessage(websocket.PingMessage, nil)
}

// Close tears down the session: stops the heartbeat, drains the outbox,
// and closes the connection. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		s.closed.Store(true)
		close(s.done)
		s.outbox.Close()

		s.mu.Lock()
		s.conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.conn.Close()
		s.mu.Unlock()

		if s.metrics != nil {
			s.metrics.activeSessions.Dec()
		}
		if s.onClose != nil {
			s.onClose(s)
		}
		s.logger.Info("session closed",
			"sent", s.outbox.Sent(),
			"dropped", s.outbox.Dropped())
	})
}
