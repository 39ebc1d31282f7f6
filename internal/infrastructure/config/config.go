package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIURL    string        `env:"CIRCUITDESK_API_URL,   default=http://127.0.0.1:5000"`
	Timeout   time.Duration `env:"CIRCUITDESK_TIMEOUT,   default=10s"`
	LogLevel  string        `env:"CIRCUITDESK_LOG_LEVEL, default=info"`
	LogPretty bool          `env:"CIRCUITDESK_LOG_PRETTY, default=true"`
	// OpsAddr enables the watch-mode health/metrics listener when non-empty,
	// e.g. ":9180".
	OpsAddr string `env:"CIRCUITDESK_OPS_ADDR"`

	Session SessionConfig
}

type SessionConfig struct {
	// Backend selects where the signed-in-operator record lives: "file"
	// (default, per-user) or "redis" (shared ops desk).
	Backend string `env:"CIRCUITDESK_SESSION_BACKEND, default=file"`
	// Path of the session file; empty means ~/.circuitdesk/session.
	Path   string `env:"CIRCUITDESK_SESSION_PATH"`
	Secret string `env:"CIRCUITDESK_SESSION_SECRET, default=circuitdesk-local"`

	RedisAddr string `env:"CIRCUITDESK_REDIS_ADDR, default=localhost:6379"`
	RedisDB   int    `env:"CIRCUITDESK_REDIS_DB,   default=0"`
	Desk      string `env:"CIRCUITDESK_DESK,       default=default"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
