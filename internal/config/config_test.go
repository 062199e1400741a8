package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/danmuck/mobwire/internal/transport"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
address = "mc.example.net:25565"
host_name = "mc.example.net"
username = "Alex"
read_timeout = "10s"
backoff_initial = "100ms"
max_connect_attempts = 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Address != "mc.example.net:25565" || cfg.HostName != "mc.example.net" {
		t.Fatalf("unexpected address: %+v", cfg)
	}
	if cfg.Username != "Alex" {
		t.Fatalf("unexpected username: %q", cfg.Username)
	}
	if cfg.ProtocolVersion != packet.ProtocolVersion || cfg.Port != 25565 {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
	if cfg.Transport.ReadTimeout != 10*time.Second {
		t.Fatalf("unexpected read timeout: %v", cfg.Transport.ReadTimeout)
	}
	if cfg.Transport.Backoff.InitialDelay != 100*time.Millisecond {
		t.Fatalf("unexpected backoff: %v", cfg.Transport.Backoff.InitialDelay)
	}
	if cfg.Transport.WriteTimeout != transport.DefaultConfig().WriteTimeout {
		t.Fatalf("write timeout default not kept: %v", cfg.Transport.WriteTimeout)
	}
	if cfg.Transport.MaxConnectAttempts != 3 {
		t.Fatalf("unexpected attempts: %d", cfg.Transport.MaxConnectAttempts)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"bad duration":   `read_timeout = "soon"`,
		"port range":     `port = 70000`,
		"long username":  `username = "abcdefghijklmnopq"`,
		"frame too big":  `max_frame_bytes = 4194304`,
		"unknown key":    `compression = true`,
		"empty address":  `address = "  "`,
		"negative tries": `max_connect_attempts = -1`,
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestUsernameLimitCountsCharacters(t *testing.T) {
	cfg := Default()
	cfg.Username = strings.Repeat("é", 16)
	if err := Validate(cfg); err != nil {
		t.Fatalf("16 two-byte characters should pass: %v", err)
	}
	cfg.Username = strings.Repeat("é", 17)
	if err := Validate(cfg); err == nil {
		t.Fatalf("17 characters should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "load config") {
		t.Fatalf("expected load error, got %v", err)
	}
}
