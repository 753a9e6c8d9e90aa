package config

import (
	"fmt"
	"time"
)

// ClientConfig is the subset of [StructuredConfig] the terminal client uses.
type ClientConfig struct {
	// Version is shown on the build info overlay.
	Version string

	Adapter ClientAdapter
	Storage ClientStorage

	// LogFile receives the client log; stdout belongs to the UI.
	LogFile string
}

// ClientAdapter locates the companion server.
type ClientAdapter struct {
	// HTTPAddress is "host:port" or a full URL. Empty means offline: every
	// suggestion is the placeholder.
	HTTPAddress string

	// RequestTimeout bounds one request. Zero means no bound.
	RequestTimeout time.Duration
}

// ClientStorage selects the note store backend.
type ClientStorage struct {
	// DSN is a postgres:// URL, a SQLite file path, a *.json file path or
	// ":memory:".
	DSN string
}

// GetClientConfig loads the merged configuration and narrows it for the
// client.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	address := cfg.Adapter.HTTPAddress
	if cfg.Adapter.Disabled {
		address = ""
	}

	clientCfg := &ClientConfig{
		Version: cfg.App.Version,
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		LogFile: cfg.Client.LogFile,
	}

	return clientCfg, clientCfg.validate()
}
