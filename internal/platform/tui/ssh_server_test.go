package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testSSHConfig(t *testing.T) SSHServerConfig {
	t.Helper()
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")
	return cfg
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := testSSHConfig(t)
	cfg.GameID = "bouldering"

	if _, err := NewSSHServer(cfg); err == nil || !strings.Contains(err.Error(), "bouldering") {
		t.Errorf("Expected unknown game error, got %v", err)
	}
}

func TestNewSSHServerGeneratesHostKey(t *testing.T) {
	cfg := testSSHConfig(t)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	defer srv.Shutdown()

	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("Host key should be generated: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, want %q", srv.Addr(), cfg.Address)
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("Expected no sessions, got %d", srv.ActiveSessions())
	}
}

func TestSSHServerServeStopsOnCancel(t *testing.T) {
	srv, err := NewSSHServer(testSSHConfig(t))
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() returned %v after cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve() did not stop after cancel")
	}
}
