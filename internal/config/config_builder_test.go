package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that a config with no
// sources at all does not pass validation.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_DefaultsOnly verifies the built-in defaults form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, ":4071", cfg.Server.Address())
	assert.Equal(t, DefaultModel, cfg.Provider.Model)
	assert.Equal(t, DefaultBaseURL, cfg.Provider.BaseURL)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Provider.APIKey)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// sources win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{Port: 5000}, Provider: Provider{Model: "gpt-4o"}},
		&StructuredConfig{Provider: Provider{APIKey: "sk"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "gpt-4o", cfg.Provider.Model)
	assert.Equal(t, "sk", cfg.Provider.APIKey)
	assert.Equal(t, DefaultBaseURL, cfg.Provider.BaseURL)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidArgsRecordError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-port", "x"})
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "flags:")
	assert.Empty(t, b.configs)
}

func TestBuild_ReportsEveryFailedSource(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-port", "x"})
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flags:")
	assert.Contains(t, err.Error(), "json /does/not/exist.json:")
}

func TestWithJSON_NotSpecified(t *testing.T) {
	b := newConfigBuilder().withDefaults().withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	_, err := b.withJSON().build()
	require.Error(t, err)
}

// ── loadStructuredConfig ──────────────────────────────────────────────────────

func TestLoadStructuredConfig_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"provider": map[string]any{"model": "from-json"},
		"server":   map[string]any{"request_timeout": "3s"},
	})
	setEnvVars(t, map[string]string{
		"PORT":           "6000",
		"OPENAI_MODEL":   "from-env",
		"OPENAI_API_KEY": "sk-env",
	})

	cfg, err := loadStructuredConfig([]string{"-port", "7000", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "from-json", cfg.Provider.Model)
	assert.Equal(t, "sk-env", cfg.Provider.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Server.RequestTimeout)
}

func TestNewClientConfig(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultDSN, clientCfg.Storage.DSN)
	assert.Equal(t, DefaultVersion, clientCfg.Version)
	assert.Equal(t, DefaultAdapter, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultLogFile, clientCfg.LogFile)
}

func TestNewClientConfig_Offline(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
		json map[string]any
	}{
		{
			name: "env",
			env:  map[string]string{"ADAPTER_DISABLED": "true"},
		},
		{
			name: "flag",
			args: []string{"-offline"},
		},
		{
			name: "flag wins over an explicit address",
			env:  map[string]string{"ADAPTER_ADDRESS": "example.com:9000"},
			args: []string{"-server", "localhost:5000", "-offline"},
		},
		{
			name: "json",
			json: map[string]any{"adapter": map[string]any{"disabled": true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)
			args := tt.args
			if tt.json != nil {
				args = append(args, "-c", writeTempJSONConfig(t, tt.json))
			}

			cfg, err := loadStructuredConfig(args)
			require.NoError(t, err)
			assert.True(t, cfg.Adapter.Disabled)

			clientCfg, err := newClientConfig(cfg)
			require.NoError(t, err)
			assert.Empty(t, clientCfg.Adapter.HTTPAddress, "offline client has no companion address")
		})
	}
}

func TestNewClientConfig_OnlineByDefault(t *testing.T) {
	clearEnvVars(t)

	cfg, err := loadStructuredConfig(nil)
	require.NoError(t, err)

	clientCfg, err := newClientConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, DefaultAdapter, clientCfg.Adapter.HTTPAddress)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := ClientConfig{Storage: ClientStorage{DSN: "x.db"}, LogFile: "x.log"}

	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "no adapter address is allowed", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }},
		{name: "empty dsn", mutate: func(c *ClientConfig) { c.Storage.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "negative timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no log file", mutate: func(c *ClientConfig) { c.LogFile = "" }, wantErr: ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "defaults", mutate: func(c *StructuredConfig) {}},
		{name: "explicit address ignores port", mutate: func(c *StructuredConfig) { c.Server.Port = 0; c.Server.HTTPAddress = "localhost:1" }},
		{name: "bad port", mutate: func(c *StructuredConfig) { c.Server.Port = 70000 }, wantErr: ErrInvalidServerConfigs},
		{name: "no static dir", mutate: func(c *StructuredConfig) { c.Server.StaticDir = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no model", mutate: func(c *StructuredConfig) { c.Provider.Model = "" }, wantErr: ErrInvalidProviderConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.mutate(c)
			err := c.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
