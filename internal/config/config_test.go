package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lumaui/luma/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return dir
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Address != DefaultAddress {
		t.Errorf("Address = %q, want %q", cfg.Address, DefaultAddress)
	}
	if cfg.Session.OutboxSize != DefaultOutboxSize {
		t.Errorf("OutboxSize = %d, want %d", cfg.Session.OutboxSize, DefaultOutboxSize)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty for defaults", cfg.Path())
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := writeConfig(t, `{"name": "demo", "session": {"heartbeatSeconds": 5}}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q, want demo", cfg.Name)
	}
	if cfg.Session.HeartbeatSeconds != 5 {
		t.Errorf("HeartbeatSeconds = %d, want 5", cfg.Session.HeartbeatSeconds)
	}
	// Unset fields keep their defaults.
	if cfg.Session.ReadTimeoutSeconds != 60 {
		t.Errorf("ReadTimeoutSeconds = %d, want 60", cfg.Session.ReadTimeoutSeconds)
	}
	if cfg.Address != DefaultAddress {
		t.Errorf("Address = %q, want %q", cfg.Address, DefaultAddress)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := writeConfig(t, `{"name": "demo",}`)

	_, err := Load(dir)
	if !errors.IsCode(err, "E4001") {
		t.Errorf("error = %v, want E4001", err)
	}
}

func TestLoadRejectsNegativeValues(t *testing.T) {
	dir := writeConfig(t, `{"session": {"outboxSize": -1}}`)

	_, err := Load(dir)
	if !errors.IsCode(err, "E4002") {
		t.Errorf("error = %v, want E4002", err)
	}
}

func TestSessionDurations(t *testing.T) {
	s := Default().Session
	if s.ReadTimeout().Seconds() != 60 {
		t.Errorf("ReadTimeout = %v, want 60s", s.ReadTimeout())
	}
	if s.HeartbeatInterval().Seconds() != 30 {
		t.Errorf("HeartbeatInterval = %v, want 30s", s.HeartbeatInterval())
	}
}
