package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ServerConfig configures the host server.
type ServerConfig struct {
	Port        int    `env:"HANGMAN_PORT"         envDefault:"8080"`
	StaticDir   string `env:"HANGMAN_STATIC_DIR"   envDefault:"./web"`
	AllowOrigin string `env:"HANGMAN_ALLOW_ORIGIN" envDefault:"*"`
	LogLevel    string `env:"HANGMAN_LOG_LEVEL"    envDefault:"info"`
	TLSCertFile string `env:"HANGMAN_TLS_CERT_FILE"`
	TLSKeyFile  string `env:"HANGMAN_TLS_KEY_FILE"`

	WordSource WordSourceConfig
}

// WordSourceConfig configures the upstream word service.
type WordSourceConfig struct {
	URL            string        `env:"HANGMAN_WORD_SOURCE_URL"     envDefault:"https://hangman-micro-service.herokuapp.com/"`
	Timeout        time.Duration `env:"HANGMAN_FETCH_TIMEOUT"       envDefault:"5s"`
	MaxAttempts    uint          `env:"HANGMAN_FETCH_ATTEMPTS"      envDefault:"3"`
	InitialBackoff time.Duration `env:"HANGMAN_FETCH_INITIAL_DELAY" envDefault:"250ms"`
}

// LoadServerConfig reads the server configuration from the environment.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.WordSource.MaxAttempts == 0 {
		return nil, fmt.Errorf("fetch attempts must be at least 1")
	}
	return cfg, nil
}

// TLSEnabled reports whether both a certificate and a key were configured.
func (c *ServerConfig) TLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}
