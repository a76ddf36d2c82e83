package server

import "context"

// Server defines the lifecycle contract for the transport servers managed by
// this package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or a listener fails,
	// then shuts down. It returns the listener failure, if any.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server within the shutdown timeout.
	Shutdown()
}
