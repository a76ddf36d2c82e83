// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// api-gateway. It aggregates all sub-configurations and is populated by
// merging environment variables, command-line flags and an optional config
// file. It is built once at startup and treated as read-only afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds deployment metadata: environment name and service version.
	App App `envPrefix:"APP_"`

	// Server holds listener addresses, CORS origins and lifecycle timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds the downstream dependency endpoints probed by /health.
	Storage Storage `envPrefix:"STORAGE_"`

	// Health holds probe settings.
	Health Health `envPrefix:"HEALTH_"`

	// Metrics selects the metrics exporter.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Port is the bare listening port used when Server.HTTPAddress is empty.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is the deployment configuration name ("development",
	// "staging", "production", ...). Production suppresses diagnostic
	// details in error responses.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the service version reported by /health. When empty the
	// build metadata is used instead.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// IsProduction reports whether the application runs in the production
// configuration.
func (a App) IsProduction() bool {
	return strings.EqualFold(strings.TrimSpace(a.Environment), ProductionEnvironment)
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables the gRPC listener.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// ReadHeaderTimeout bounds the time spent reading request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`

	// ShutdownTimeout bounds how long in-flight requests are drained after a
	// termination signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the downstream dependency endpoints. Exactly one of them is
// probed: DB when its DSN is set, Supabase otherwise.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Supabase holds the REST endpoint and credential of the hosted database.
	Supabase Supabase `envPrefix:"SUPABASE_"`
}

// DB holds connection settings for the SQL probe backend.
type DB struct {
	// DSN is a PostgreSQL URL (postgres://...) or an SQLite DSN
	// (sqlite://path, file:path).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// AutoMigrate runs the embedded goose migrations on startup.
	// Env: STORAGE_DB_AUTO_MIGRATE
	AutoMigrate bool `env:"AUTO_MIGRATE"`
}

// Supabase holds the REST (PostgREST) endpoint and anon key.
type Supabase struct {
	// URL is the project URL, e.g. "https://xyz.supabase.co".
	// Env: STORAGE_SUPABASE_URL
	URL string `env:"URL"`

	// AnonKey is sent as both the apikey header and the bearer token.
	// Env: STORAGE_SUPABASE_ANON_KEY
	AnonKey string `env:"ANON_KEY"`
}

// Health holds settings of the dependency probe.
type Health struct {
	// ProbeTimeout is the deadline of a single dependency probe.
	// Env: HEALTH_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// Table is the resource queried by the probe.
	// Env: HEALTH_TABLE
	Table string `env:"TABLE"`
}

// Metrics selects where metrics are exported.
type Metrics struct {
	// Exporter is one of "prometheus", "stdout", "otlp" or "none".
	// Env: METRICS_EXPORTER
	Exporter string `env:"EXPORTER"`
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration. For every field the first non-zero value wins in this
// order:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
