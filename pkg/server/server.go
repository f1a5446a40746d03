package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lumaui/luma/pkg/ui"
)

// RootFunc builds the initial element tree for a new session.
type RootFunc func(c *ui.Client)

// Server is the HTTP/WebSocket host for element trees.
type Server struct {
	config *ServerConfig

	root     RootFunc
	upgrader websocket.Upgrader

	sessions   map[string]*Session
	sessionsMu sync.RWMutex

	router     chi.Router
	httpServer *http.Server

	metrics *metrics
	logger  *slog.Logger
}

// New creates a Server. A nil config uses defaults; unset fields are
// filled in.
func New(config *ServerConfig) *Server {
	if config == nil {
		config = DefaultServerConfig()
	} else {
		config.applyDefaults()
	}

	logger := slog.Default().With("component", "server")

	s := &Server{
		config:   config,
		sessions: make(map[string]*Session),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  config.ReadBufferSize,
			WriteBufferSize: config.WriteBufferSize,
			CheckOrigin:     config.CheckOrigin,
		},
		logger: logger,
	}
	if config.EnableMetrics {
		s.metrics = newMetrics(prometheus.DefaultRegisterer)
	}
	s.router = s.buildRouter()
	return s
}

// SetRoot sets the function that builds each new session's tree.
func (s *Server) SetRoot(fn RootFunc) {
	s.root = fn
}

// Handler returns the server's HTTP handler for mounting elsewhere.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	if s.config.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/ws", s.handleWebSocket)
	return r
}

// handleWebSocket upgrades the connection and runs the session.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	session := newSession(conn, s.config, s.logger, s.metrics)
	session.onClose = s.removeSession

	s.sessionsMu.Lock()
	s.sessions[session.ID] = session
	s.sessionsMu.Unlock()

	if s.metrics != nil {
		s.metrics.activeSessions.Inc()
		s.metrics.sessionsTotal.Inc()
	}
	s.logger.Info("session started", "session_id", session.ID)

	// Build the tree on the read goroutine before any events arrive.
	if s.root != nil {
		s.root(session.Client())
	}

	go session.HeartbeatLoop()
	session.ReadLoop()
}

func (s *Server) removeSession(session *Session) {
	s.sessionsMu.Lock()
	delete(s.sessions, session.ID)
	s.sessionsMu.Unlock()
}

// Session returns an active session by id.
func (s *Server) Session(id string) (*Session, bool) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// SessionCount returns the number of active sessions.
func (s *Server) SessionCount() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()
	return len(s.sessions)
}

// Run starts the server and blocks until shutdown.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != http.ErrServerClosed {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.sessionsMu.RLock()
	open := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		open = append(open, session)
	}
	s.sessionsMu.RUnlock()
	for _, session := range open {
		session.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}
