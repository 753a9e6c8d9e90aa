package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an out-of-range port or empty static directory).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidProviderConfigs indicates an incomplete upstream provider
	// section (empty model or base URL).
	ErrInvalidProviderConfigs = errors.New("invalid provider configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidClientConfigs indicates missing terminal client settings.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
