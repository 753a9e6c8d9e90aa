// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged server settings. A missing provider key is
// not an error: the proxy endpoint answers 500 per request instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.StaticDir == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Provider.Model == "" || cfg.Provider.BaseURL == "" {
		return ErrInvalidProviderConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.LogFile == "" {
		return ErrInvalidClientConfigs
	}

	return nil
}
