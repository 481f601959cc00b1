// Package config loads portal configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix is the prefix for environment overrides. Nesting uses a double
// underscore, e.g. PORTAL_SERVER__PORT=9090 overrides server.port.
const envPrefix = "PORTAL_"

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	CORS    CORSConfig    `koanf:"cors"`
	Session SessionConfig `koanf:"session"`
	Auth    AuthConfig    `koanf:"auth"`
	Chat    ChatConfig    `koanf:"chat"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port"`
	MetricsPort       string        `koanf:"metrics_port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// CORSConfig contains CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// SessionConfig contains session store settings.
type SessionConfig struct {
	// RecordPath is the file holding the single persisted session record.
	RecordPath string `koanf:"record_path"`
}

// AuthConfig contains settings for the simulated credential check.
type AuthConfig struct {
	// CheckDelay is the artificial latency of the mocked identity provider.
	CheckDelay time.Duration `koanf:"check_delay"`
}

// ChatConfig contains health assistant settings.
type ChatConfig struct {
	// TypingDelay is presentation-only latency before a reply is returned.
	TypingDelay time.Duration `koanf:"typing_delay"`
	// RateLimit is the per-second reply budget; RateBurst is the burst size.
	RateLimit float64 `koanf:"rate_limit"`
	RateBurst int     `koanf:"rate_burst"`
}

// Default returns the configuration defaults used when a key is absent from
// both the file and the environment.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              "8080",
			MetricsPort:       "9090",
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Session: SessionConfig{
			RecordPath: "data/session.json",
		},
		Auth: AuthConfig{
			CheckDelay: time.Second,
		},
		Chat: ChatConfig{
			TypingDelay: 0,
			RateLimit:   2,
			RateBurst:   5,
		},
	}
}

// Load reads configuration from the given YAML file (optional; pass "" to
// skip) and applies PORTAL_* environment overrides on top of defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("load config file %s: %w", path, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env overrides: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	if c.Session.RecordPath == "" {
		return fmt.Errorf("session.record_path must not be empty")
	}
	if c.Auth.CheckDelay < 0 {
		return fmt.Errorf("auth.check_delay must not be negative")
	}
	return nil
}
