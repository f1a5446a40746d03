package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/lumaui/luma/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "luma.json"

	// DefaultAddress is the default server listen address.
	DefaultAddress = "localhost:8080"

	// DefaultOutboxSize is the default per-session outbound queue size.
	DefaultOutboxSize = 256
)

// Config represents the complete luma.json configuration.
type Config struct {
	// Name is the project name, used in logs and the page title.
	Name string `json:"name,omitempty"`

	// Address is the host:port the server listens on.
	Address string `json:"address,omitempty"`

	// Session contains per-connection settings.
	Session SessionConfig `json:"session,omitempty"`

	// Metrics enables the Prometheus /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// SessionConfig contains per-connection settings.
type SessionConfig struct {
	// ReadTimeoutSeconds is the maximum time to wait for a client message.
	ReadTimeoutSeconds int `json:"readTimeoutSeconds,omitempty"`

	// WriteTimeoutSeconds is the maximum time to wait when sending.
	WriteTimeoutSeconds int `json:"writeTimeoutSeconds,omitempty"`

	// HeartbeatSeconds is the interval between ping frames.
	HeartbeatSeconds int `json:"heartbeatSeconds,omitempty"`

	// MaxMessageBytes limits the size of inbound WebSocket messages.
	MaxMessageBytes int64 `json:"maxMessageBytes,omitempty"`

	// OutboxSize is the capacity of the outbound update queue.
	OutboxSize int `json:"outboxSize,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() *Config {
	return &Config{
		Name:    "luma",
		Address: DefaultAddress,
		Session: SessionConfig{
			ReadTimeoutSeconds:  60,
			WriteTimeoutSeconds: 10,
			HeartbeatSeconds:    30,
			MaxMessageBytes:     64 * 1024,
			OutboxSize:          DefaultOutboxSize,
		},
		Metrics: true,
	}
}

// Load reads the configuration from dir/luma.json. A missing file yields
// the defaults; a malformed file is an E4001 error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, errors.New("E4001").Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E4001").Wrap(err).
			WithDetail("%s could not be parsed", path)
	}
	cfg.applyDefaults()
	cfg.configPath = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyDefaults fills in zero-valued fields after unmarshalling, so a
// partial luma.json never disables a timeout entirely.
func (c *Config) applyDefaults() {
	d := Default()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Address == "" {
		c.Address = d.Address
	}
	if c.Session.ReadTimeoutSeconds == 0 {
		c.Session.ReadTimeoutSeconds = d.Session.ReadTimeoutSeconds
	}
	if c.Session.WriteTimeoutSeconds == 0 {
		c.Session.WriteTimeoutSeconds = d.Session.WriteTimeoutSeconds
	}
	if c.Session.HeartbeatSeconds == 0 {
		c.Session.HeartbeatSeconds = d.Session.HeartbeatSeconds
	}
	if c.Session.MaxMessageBytes == 0 {
		c.Session.MaxMessageBytes = d.Session.MaxMessageBytes
	}
	if c.Session.OutboxSize == 0 {
		c.Session.OutboxSize = d.Session.OutboxSize
	}
}

// Validate checks value ranges. Violations are E4002 errors.
func (c *Config) Validate() error {
	if c.Session.ReadTimeoutSeconds < 0 ||
		c.Session.WriteTimeoutSeconds < 0 ||
		c.Session.HeartbeatSeconds < 0 {
		return errors.New("E4002").WithDetail("session timeouts must not be negative")
	}
	if c.Session.MaxMessageBytes < 0 {
		return errors.New("E4002").WithDetail("maxMessageBytes must not be negative")
	}
	if c.Session.OutboxSize < 0 {
		return errors.New("E4002").WithDetail("outboxSize must not be negative")
	}
	return nil
}

// Path returns where the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

// ReadTimeout returns the read timeout as a duration.
func (c *SessionConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (c *SessionConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// HeartbeatInterval returns the ping interval as a duration.
func (c *SessionConfig) HeartbeatInterval() time.Duration {
	return time.Duration(c.HeartbeatSeconds) * time.Second
}
