// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// note-pilot application. It aggregates all sub-configurations and is
// populated by merging built-in defaults with values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the key-value backend that keeps the
	// saved notes and preferences.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, static asset root and timeouts of the
	// companion HTTP server. Its variables are not prefixed because PORT is
	// a well-known name.
	Server Server

	// Provider holds the credentials and model of the upstream completion
	// provider used by the proxy endpoint.
	Provider Provider `envPrefix:"OPENAI_"`

	// Adapter holds the address of the companion server as seen by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds settings used only by the terminal client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the key-value database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Port is the TCP port the HTTP server listens on when HTTPAddress is
	// not set explicitly.
	// Env: PORT
	Port int `env:"PORT"`

	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080"). Takes precedence over Port.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// StaticDir is the directory static assets are served from.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"SERVER_STATIC_DIR"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Address returns the listen address, falling back to all interfaces on Port.
func (s Server) Address() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}
	return ":" + strconv.Itoa(s.Port)
}

// Provider holds the upstream chat-completion provider settings.
type Provider struct {
	// APIKey is the bearer credential sent upstream. It is never exposed to
	// the client. Env: OPENAI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the chat model name. Env: OPENAI_MODEL
	Model string `env:"MODEL"`

	// BaseURL is the provider root, without the /v1 path.
	// Env: OPENAI_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// DB holds connection settings for the key-value backend.
type DB struct {
	// DSN selects and configures the backend: a postgres:// URL, a SQLite
	// file path, a *.json file path, or ":memory:".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the client-side view of the companion server.
type Adapter struct {
	// HTTPAddress is the address of the companion server, in "host:port"
	// format. Merging never clears it back to empty; use Disabled instead.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Disabled runs the client offline: every suggestion is the placeholder
	// whatever HTTPAddress says.
	// Env: ADAPTER_DISABLED
	Disabled bool `env:"DISABLED"`

	// RequestTimeout bounds a single outbound request. Zero means no bound.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client settings.
type Client struct {
	// LogFile is the path of the client log file. The terminal itself is
	// owned by the UI, so logs never go to stdout.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Default values applied before any other source.
const (
	DefaultPort      = 4071
	DefaultModel     = "gpt-3.5-turbo"
	DefaultBaseURL   = "https://api.openai.com"
	DefaultDSN       = "notepilot.db"
	DefaultLogFile   = "notepilot.log"
	DefaultVersion   = "dev"
	DefaultAdapter   = "localhost:4071"
	DefaultStaticDir = "."
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:      App{Version: DefaultVersion},
		Storage:  Storage{DB: DB{DSN: DefaultDSN}},
		Server:   Server{Port: DefaultPort, StaticDir: DefaultStaticDir},
		Provider: Provider{Model: DefaultModel, BaseURL: DefaultBaseURL},
		Adapter:  Adapter{HTTPAddress: DefaultAdapter},
		Client:   Client{LogFile: DefaultLogFile},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags (os.Args)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
