package server

import (
	"net/http"
	"time"

	"github.com/lumaui/luma/internal/config"
)

// ServerConfig configures the HTTP/WebSocket server.
type ServerConfig struct {
	// Address is the host:port to listen on.
	Address string

	// ReadBufferSize is the WebSocket read buffer size.
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size.
	WriteBufferSize int

	// CheckOrigin validates the Origin header on upgrade.
	CheckOrigin func(r *http.Request) bool

	// ReadTimeout is the per-message WebSocket read deadline.
	ReadTimeout time.Duration

	// WriteTimeout is the per-message WebSocket write deadline.
	WriteTimeout time.Duration

	// HeartbeatInterval is the interval between ping frames.
	HeartbeatInterval time.Duration

	// MaxMessageSize limits inbound WebSocket message size in bytes.
	MaxMessageSize int64

	// OutboxSize is the per-session outbound queue capacity.
	OutboxSize int

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is the HTTP server header read timeout.
	ReadHeaderTimeout time.Duration

	// IdleTimeout is the HTTP server idle connection timeout.
	IdleTimeout time.Duration

	// EnableMetrics mounts the Prometheus /metrics endpoint.
	EnableMetrics bool
}

// DefaultServerConfig returns a ServerConfig with sensible defaults.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:           config.DefaultAddress,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		CheckOrigin:       nil,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		HeartbeatInterval: 30 * time.Second,
		MaxMessageSize:    64 * 1024,
		OutboxSize:        config.DefaultOutboxSize,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		EnableMetrics:     true,
	}
}

// FromConfig builds a ServerConfig from a loaded luma.json.
func FromConfig(cfg *config.Config) *ServerConfig {
	sc := DefaultServerConfig()
	if cfg == nil {
		return sc
	}
	if cfg.Address != "" {
		sc.Address = cfg.Address
	}
	sc.ReadTimeout = cfg.Session.ReadTimeout()
	sc.WriteTimeout = cfg.Session.WriteTimeout()
	sc.HeartbeatInterval = cfg.Session.HeartbeatInterval()
	sc.MaxMessageSize = cfg.Session.MaxMessageBytes
	sc.OutboxSize = cfg.Session.OutboxSize
	sc.EnableMetrics = cfg.Metrics
	return sc
}

// applyDefaults fills in unset fields in place.
func (c *ServerConfig) applyDefaults() {
	d := DefaultServerConfig()
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.ReadBufferSize == 0 {
		c.ReadBufferSize = d.ReadBufferSize
	}
	if c.WriteBufferSize == 0 {
		c.WriteBufferSize = d.WriteBufferSize
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = d.HeartbeatInterval
	}
	if c.MaxMessageSize == 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	if c.OutboxSize == 0 {
		c.OutboxSize = d.OutboxSize
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
}
