// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the gateway's business logic behind the transport
// handlers: application metadata and the composite health check.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/api-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AppInfoService exposes the deployment metadata reported by /health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetEnvironment(ctx context.Context) string
	IsProduction(ctx context.Context) bool
}

// HealthService builds the composite health report.
type HealthService interface {
	// Check probes the data dependency once and assembles a fresh report.
	// A probe failure is not an error: it yields a DEGRADED report. An error
	// is returned only when the report itself cannot be built.
	Check(ctx context.Context) (models.HealthReport, error)
}

// Introspector reads process-level signals.
type Introspector interface {
	// Uptime is the time elapsed since the process started.
	Uptime() time.Duration
	// Memory reports heap usage rounded to whole megabytes.
	Memory() (models.MemoryUsage, error)
}
