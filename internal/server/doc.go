// Package server wires and runs the application's transport servers.
//
// It binds the HTTP and gRPC listeners, runs them until a termination signal
// (or a listener failure) and then drains in-flight requests within the
// configured shutdown timeout.
package server
