package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the diary REST API
	// (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientDB contains local session database settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path holding the persisted client session
	// (token plus cached user identity).
	// Env: CLIENT_SESSION_DB
	DSN string `env:"SESSION_DB"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local session database settings.
	DB ClientDB
}

// ClientConfig is the top-level configuration for the terminal client.
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter `envPrefix:"CLIENT_"`
	// Storage contains client session storage settings.
	Storage ClientStorage `envPrefix:"CLIENT_"`
}

// GetClientConfig loads and validates the terminal client configuration from
// environment variables, applying sensible defaults: localhost server, 15s
// timeout, and a session database file next to the executable.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := env.Parse(clientCfg); err != nil {
		return nil, err
	}

	if clientCfg.Adapter.ServerURL == "" {
		clientCfg.Adapter.ServerURL = "http://localhost:8080"
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if clientCfg.Storage.DB.DSN == "" {
		execPath, _ := os.Executable()
		clientCfg.Storage.DB.DSN = filepath.Join(filepath.Dir(execPath), "diary-session.db")
	}

	return clientCfg, clientCfg.validate()
}
