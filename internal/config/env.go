// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment.
func parseEnv(cfg *StructuredConfig) error {
	return parseEnvFrom(cfg, env.ToMap(os.Environ()))
}

// parseEnvFrom fills cfg from vars using the `env` and `envPrefix` tags of
// [StructuredConfig]. The provider key is trimmed: keys pasted into a shell
// export often carry a trailing newline, which the upstream rejects.
func parseEnvFrom(cfg *StructuredConfig, vars map[string]string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.Provider.APIKey = strings.TrimSpace(cfg.Provider.APIKey)

	return nil
}
