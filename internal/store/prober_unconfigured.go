package store

import "context"

// unconfiguredProber reports the dependency as unreachable on every call.
type unconfiguredProber struct{}

// NewUnconfiguredProber returns a [DependencyProber] that always fails with
// [ErrDependencyNotConfigured].
func NewUnconfiguredProber() DependencyProber {
	return unconfiguredProber{}
}

func (unconfiguredProber) Probe(ctx context.Context) error {
	return ErrDependencyNotConfigured
}
