package config

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/danmuck/mobwire/internal/transport"
)

// Config is the client configuration.
type Config struct {
	Address         string
	ProtocolVersion int32
	HostName        string
	Port            uint16
	Username        string
	MetricsAddr     string
	LogLevel        string
	Transport       transport.Config
}

type fileConfig struct {
	Address            string `toml:"address"`
	ProtocolVersion    int32  `toml:"protocol_version"`
	HostName           string `toml:"host_name"`
	Port               int    `toml:"port"`
	Username           string `toml:"username"`
	MetricsAddr        string `toml:"metrics_addr"`
	LogLevel           string `toml:"log_level"`
	MaxFrameBytes      int    `toml:"max_frame_bytes"`
	ConnectTimeout     string `toml:"connect_timeout"`
	ReadTimeout        string `toml:"read_timeout"`
	WriteTimeout       string `toml:"write_timeout"`
	BackoffInitial     string `toml:"backoff_initial"`
	BackoffMax         string `toml:"backoff_max"`
	BackoffJitter      bool   `toml:"backoff_jitter"`
	MaxConnectAttempts int    `toml:"max_connect_attempts"`
}

func Default() Config {
	return Config{
		Address:         "127.0.0.1:25565",
		ProtocolVersion: packet.ProtocolVersion,
		HostName:        "127.0.0.1",
		Port:            25565,
		Username:        "mobwire",
		Transport:       transport.DefaultConfig(),
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("address") {
		cfg.Address = strings.TrimSpace(raw.Address)
	}
	if meta.IsDefined("protocol_version") {
		cfg.ProtocolVersion = raw.ProtocolVersion
	}
	if meta.IsDefined("host_name") {
		cfg.HostName = strings.TrimSpace(raw.HostName)
	}
	if meta.IsDefined("port") {
		if raw.Port <= 0 || raw.Port > 65535 {
			return Config{}, fmt.Errorf("parse port: %d out of range", raw.Port)
		}
		cfg.Port = uint16(raw.Port)
	}
	if meta.IsDefined("username") {
		cfg.Username = strings.TrimSpace(raw.Username)
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("max_frame_bytes") {
		cfg.Transport.Limits.MaxFrameBytes = raw.MaxFrameBytes
	}
	if meta.IsDefined("max_connect_attempts") {
		cfg.Transport.MaxConnectAttempts = raw.MaxConnectAttempts
	}
	if meta.IsDefined("backoff_jitter") {
		cfg.Transport.Backoff.Jitter = raw.BackoffJitter
	}

	durations := []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"connect_timeout", raw.ConnectTimeout, &cfg.Transport.ConnectTimeout},
		{"read_timeout", raw.ReadTimeout, &cfg.Transport.ReadTimeout},
		{"write_timeout", raw.WriteTimeout, &cfg.Transport.WriteTimeout},
		{"backoff_initial", raw.BackoffInitial, &cfg.Transport.Backoff.InitialDelay},
		{"backoff_max", raw.BackoffMax, &cfg.Transport.Backoff.MaxDelay},
	}
	for _, d := range durations {
		if !meta.IsDefined(d.key) {
			continue
		}
		v, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = v
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if cfg.Address == "" {
		return fmt.Errorf("config: address is required")
	}
	if n := utf8.RuneCountInString(cfg.Username); n == 0 || n > 16 {
		return fmt.Errorf("config: username must be 1-16 characters")
	}
	if cfg.Transport.Limits.MaxFrameBytes <= 0 || cfg.Transport.Limits.MaxFrameBytes > transport.MaxFrameBytes {
		return fmt.Errorf("config: max_frame_bytes must be in 1..%d", transport.MaxFrameBytes)
	}
	if cfg.Transport.MaxConnectAttempts < 0 {
		return fmt.Errorf("config: max_connect_attempts must not be negative")
	}
	return nil
}
