package service

import (
	"math"
	"runtime"
	"time"

	"github.com/MKhiriev/api-gateway/models"
)

const bytesInMB = 1024 * 1024

// processStart approximates the process start time.
var processStart = time.Now()

type runtimeIntrospector struct {
	started time.Time
}

// NewRuntimeIntrospector returns an [Introspector] backed by the Go runtime.
// Uptime is measured from package initialisation.
func NewRuntimeIntrospector() Introspector {
	return &runtimeIntrospector{started: processStart}
}

func (r *runtimeIntrospector) Uptime() time.Duration {
	return time.Since(r.started)
}

// Memory reports the live heap (HeapAlloc) against the heap obtained from
// the OS (HeapSys).
func (r *runtimeIntrospector) Memory() (models.MemoryUsage, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return memoryUsage(m.HeapAlloc, m.HeapSys), nil
}

// memoryUsage rounds both values to whole megabytes and clamps used to total.
func memoryUsage(usedBytes, totalBytes uint64) models.MemoryUsage {
	used := math.Round(float64(usedBytes) / bytesInMB)
	total := math.Round(float64(totalBytes) / bytesInMB)
	if used > total {
		used = total
	}

	return models.MemoryUsage{UsedMB: used, TotalMB: total}
}
