package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener or lifecycle settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unusable dependency endpoint.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidHealthConfigs indicates invalid probe settings.
	ErrInvalidHealthConfigs = errors.New("invalid health configuration")
	// ErrInvalidMetricsConfigs indicates an unsupported metrics exporter.
	ErrInvalidMetricsConfigs = errors.New("invalid metrics configuration")
)
