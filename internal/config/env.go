// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv holds the unprefixed variable names read by earlier deployments
// of the gateway.
type legacyEnv struct {
	AllowedOrigins  []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	SupabaseURL     string   `env:"SUPABASE_URL"`
	SupabaseAnonKey string   `env:"SUPABASE_ANON_KEY"`
	NodeEnv         string   `env:"NODE_ENV"`
}

// applyLegacyEnv fills fields still empty after parseEnv from the
// unprefixed names. The prefixed names always win.
func applyLegacyEnv(cfg *StructuredConfig) error {
	var legacy legacyEnv
	if err := env.Parse(&legacy); err != nil {
		return fmt.Errorf("error getting legacy env configs: %w", err)
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = legacy.AllowedOrigins
	}
	if cfg.Storage.Supabase.URL == "" {
		cfg.Storage.Supabase.URL = legacy.SupabaseURL
	}
	if cfg.Storage.Supabase.AnonKey == "" {
		cfg.Storage.Supabase.AnonKey = legacy.SupabaseAnonKey
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = legacy.NodeEnv
	}

	return nil
}
