// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer clients for the downstream
// dependencies the gateway reports on.
//
// The package currently ships a Supabase (PostgREST) implementation of
// [RemoteProber] ([NewSupabaseProber]). It satisfies store.DependencyProber so
// the health service can probe a hosted database without a SQL driver.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_prober_mock.go -package=mock

// RemoteProber performs a single lightweight read against a remote dependency.
type RemoteProber interface {
	// Probe returns nil when the dependency answered the read successfully.
	// The call honours ctx cancellation and deadlines.
	Probe(ctx context.Context) error
}
