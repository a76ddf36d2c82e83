// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultPort              = 3000
	DefaultEnvironment       = "development"
	DefaultProbeTimeout      = 2 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultHealthTable       = "health_check"
	DefaultMetricsExporter   = "prometheus"

	// ProductionEnvironment is the deployment name of the production
	// configuration.
	ProductionEnvironment = "production"

	// MaxBodyBytes is the fixed ceiling for JSON and form request bodies.
	MaxBodyBytes int64 = 10 << 20
)

// DefaultAllowedOrigins is used when no CORS origins are configured.
var DefaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

var supportedExporters = map[string]struct{}{
	"prometheus": {},
	"stdout":     {},
	"otlp":       {},
	"none":       {},
}

// applyDefaults fills every field that is still zero after merging all
// sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		port := cfg.Port
		if port == 0 {
			port = DefaultPort
		}
		cfg.Server.HTTPAddress = ":" + strconv.Itoa(port)
	}

	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = append([]string(nil), DefaultAllowedOrigins...)
	}
	cfg.Server.AllowedOrigins = trimOrigins(cfg.Server.AllowedOrigins)

	if cfg.Server.ReadHeaderTimeout == 0 {
		cfg.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if strings.TrimSpace(cfg.App.Environment) == "" {
		cfg.App.Environment = DefaultEnvironment
	}

	if cfg.Health.ProbeTimeout == 0 {
		cfg.Health.ProbeTimeout = DefaultProbeTimeout
	}
	if cfg.Health.Table == "" {
		cfg.Health.Table = DefaultHealthTable
	}

	// a bare host means https, as for the Supabase client
	if raw := strings.TrimSpace(cfg.Storage.Supabase.URL); raw != "" && !strings.Contains(raw, "://") {
		cfg.Storage.Supabase.URL = "https://" + raw
	}

	if cfg.Metrics.Exporter == "" {
		cfg.Metrics.Exporter = DefaultMetricsExporter
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Health.ProbeTimeout < 0 {
		return fmt.Errorf("%w: probe timeout must be positive", ErrInvalidHealthConfigs)
	}

	if !isIdentifier(cfg.Health.Table) {
		return fmt.Errorf("%w: table %q is not a plain identifier", ErrInvalidHealthConfigs, cfg.Health.Table)
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs)
	}

	if raw := cfg.Storage.Supabase.URL; raw != "" {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: supabase url %q must include scheme and host", ErrInvalidStorageConfigs, raw)
		}
	}

	if _, ok := supportedExporters[cfg.Metrics.Exporter]; !ok {
		return fmt.Errorf("%w: unknown exporter %q", ErrInvalidMetricsConfigs, cfg.Metrics.Exporter)
	}

	return nil
}

func trimOrigins(origins []string) []string {
	trimmed := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			trimmed = append(trimmed, origin)
		}
	}

	return trimmed
}

// isIdentifier reports whether s is a bare SQL identifier ([A-Za-z_][A-Za-z0-9_]*).
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
