package transport

import "time"

// BackoffConfig defines dial retry backoff behavior.
type BackoffConfig struct {
	InitialDelay time.Duration
	Multiplier   float64
	MaxDelay     time.Duration
	Jitter       bool
}

// Limits constrains frame decode/encode memory use.
type Limits struct {
	MaxFrameBytes int
}

// Config defines connection defaults.
type Config struct {
	ConnectTimeout     time.Duration
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	MaxConnectAttempts int
	Limits             Limits
	Backoff            BackoffConfig
}

// MaxFrameBytes is the largest frame a three byte length prefix can carry.
const MaxFrameBytes = 1<<21 - 1

func DefaultLimits() Limits {
	return Limits{MaxFrameBytes: MaxFrameBytes}
}

func DefaultConfig() Config {
	return Config{
		ConnectTimeout:     5 * time.Second,
		ReadTimeout:        30 * time.Second,
		WriteTimeout:       15 * time.Second,
		MaxConnectAttempts: 5,
		Limits:             DefaultLimits(),
		Backoff: BackoffConfig{
			InitialDelay: 250 * time.Millisecond,
			Multiplier:   2.0,
			MaxDelay:     5 * time.Second,
			Jitter:       true,
		},
	}
}
