// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns the connections to the downstream data dependency that
// the health report describes.
//
// The single abstraction exposed upward is [DependencyProber]. Concrete
// probers are chosen by [NewStorages] from configuration:
//   - a SQL database (PostgreSQL through pgx, or SQLite) when a DSN is set;
//   - a Supabase REST endpoint (see package adapter) when only its URL is set;
//   - an always-failing prober when nothing is configured.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DependencyProber performs one lightweight read against the data dependency.
// A nil error means the dependency is reachable and answered the read.
// Implementations must honour ctx cancellation and deadlines.
type DependencyProber interface {
	Probe(ctx context.Context) error
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
