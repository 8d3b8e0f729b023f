package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// devFallbackSecret is only ever used when ENV is not prod and no secret is
// configured. Tokens signed with it are forgeable by anyone reading this
// source, which is why LoadConfig refuses to start production with it.
const devFallbackSecret = "dev-only-insecure-signing-secret"

type Config struct {
	Env       string `env:"ENV" envDefault:"dev"`          // Environment (dev, staging, prod)
	Port      int    `env:"PORT" envDefault:"8080"`        // HTTP server port
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`   // Log level (debug, info, warn, error)
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`  // Log format (json, text)

	DatabaseFile string `env:"BOARD_DATABASE_FILE" envDefault:"noticeboard.db"` // Path to SQLite database file

	JWTSecret string        `env:"BOARD_JWT_SECRET"`                  // Required in prod: token signing secret
	Issuer    string        `env:"BOARD_ISSUER" envDefault:"noticeboard"` // Issuer claim for tokens
	TokenTTL  time.Duration `env:"BOARD_TOKEN_TTL" envDefault:"24h"`  // Access token lifetime

	HashCost int `env:"BOARD_HASH_COST" envDefault:"12"` // bcrypt work factor

	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"` // Graceful shutdown timeout

	// UsingFallbackSecret is set when the dev fallback secret was
	// substituted, so the app can log a loud warning.
	UsingFallbackSecret bool `env:"-"`
}

// LoadConfig parses the environment and validates the result. A missing
// signing secret is a startup error in production rather than a silent
// fallback.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "prod" {
			return Config{}, errors.New("BOARD_JWT_SECRET is required when ENV=prod")
		}
		cfg.JWTSecret = devFallbackSecret
		cfg.UsingFallbackSecret = true
	}

	if cfg.TokenTTL <= 0 {
		return Config{}, errors.New("BOARD_TOKEN_TTL must be positive")
	}

	return cfg, nil
}
