package models

// HealthStatus is the composite status reported by /health.
type HealthStatus string

const (
	// HealthStatusOK means every checked signal is healthy.
	HealthStatusOK HealthStatus = "OK"
	// HealthStatusDegraded means the service runs but the dependency probe failed.
	HealthStatusDegraded HealthStatus = "DEGRADED"
	// HealthStatusError means the health check itself failed.
	HealthStatusError HealthStatus = "ERROR"
)

// DependencyStatus is the outcome of the dependency probe.
type DependencyStatus string

const (
	DependencyConnected    DependencyStatus = "connected"
	DependencyDisconnected DependencyStatus = "disconnected"
)

// HealthCheckFailedMessage is the fixed error text of [HealthFailure].
const HealthCheckFailedMessage = "Internal server error during health check"

// HealthReport is the full health envelope. It is built fresh for every
// probe request and never mutated afterwards.
type HealthReport struct {
	Status           HealthStatus     `json:"status"`
	Timestamp        string           `json:"timestamp"`
	Version          string           `json:"version"`
	Environment      string           `json:"environment"`
	DependencyStatus DependencyStatus `json:"database"`

	// UptimeSeconds is the time since process start, in seconds.
	UptimeSeconds float64 `json:"uptime"`

	Memory MemoryUsage `json:"memory"`
}

// MemoryUsage reports heap usage in whole megabytes. UsedMB ≤ TotalMB.
type MemoryUsage struct {
	UsedMB  float64 `json:"used"`
	TotalMB float64 `json:"total"`
}

// HealthFailure is the minimal envelope returned when the health check
// itself fails. It deliberately differs from [HealthReport].
type HealthFailure struct {
	Status    HealthStatus `json:"status"`
	Timestamp string       `json:"timestamp"`
	Error     string       `json:"error"`
}

// NewHealthFailure builds the minimal failure envelope stamped with timestamp.
func NewHealthFailure(timestamp string) HealthFailure {
	return HealthFailure{
		Status:    HealthStatusError,
		Timestamp: timestamp,
		Error:     HealthCheckFailedMessage,
	}
}
