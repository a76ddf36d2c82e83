package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/store"
	"github.com/MKhiriev/api-gateway/internal/utils"
	"github.com/MKhiriev/api-gateway/models"
)

type healthService struct {
	prober       store.DependencyProber
	appInfo      AppInfoService
	introspector Introspector
	recorder     metrics.Recorder

	probeTimeout time.Duration
	now          func() time.Time

	logger *logger.Logger
}

// NewHealthService constructs a [HealthService]. A non-positive
// cfg.ProbeTimeout falls back to [config.DefaultProbeTimeout].
func NewHealthService(
	prober store.DependencyProber,
	appInfo AppInfoService,
	introspector Introspector,
	recorder metrics.Recorder,
	cfg config.Health,
	logger *logger.Logger,
) HealthService {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = config.DefaultProbeTimeout
	}

	return &healthService{
		prober:       prober,
		appInfo:      appInfo,
		introspector: introspector,
		recorder:     recorder,
		probeTimeout: timeout,
		now:          time.Now,
		logger:       logger,
	}
}

// Check implements [HealthService].
func (s *healthService) Check(ctx context.Context) (models.HealthReport, error) {
	timestamp := utils.FormatTimestamp(s.now())

	dependency := models.DependencyDisconnected
	if s.probe(ctx) {
		dependency = models.DependencyConnected
	}

	memory, err := s.introspector.Memory()
	if err != nil {
		return models.HealthReport{}, fmt.Errorf("%w: %w", ErrIntrospectionFailed, err)
	}

	status := models.HealthStatusDegraded
	if dependency == models.DependencyConnected {
		status = models.HealthStatusOK
	}

	return models.HealthReport{
		Status:           status,
		Timestamp:        timestamp,
		Version:          s.appInfo.GetAppVersion(ctx),
		Environment:      s.appInfo.GetEnvironment(ctx),
		DependencyStatus: dependency,
		UptimeSeconds:    s.introspector.Uptime().Seconds(),
		Memory:           memory,
	}, nil
}

// probe runs one bounded dependency probe. Any failure, including a panic
// or a prober that ignores its deadline, counts as disconnected.
func (s *healthService) probe(ctx context.Context) bool {
	log := logger.FromContextOr(ctx, s.logger)

	probeCtx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	start := time.Now()
	err := s.runProbe(probeCtx)
	duration := time.Since(start)

	s.recorder.RecordProbe(ctx, err == nil, duration)

	if err != nil {
		log.Warn().
			Err(err).
			Dur("timeout", s.probeTimeout).
			Dur("duration", duration).
			Msg("dependency probe failed")
		return false
	}

	return true
}

func (s *healthService) runProbe(ctx context.Context) error {
	result := make(chan error, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				result <- fmt.Errorf("%w: %v", ErrProbePanicked, r)
			}
		}()
		result <- s.prober.Probe(ctx)
	}()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s: %w", ErrProbeTimedOut, s.probeTimeout, ctx.Err())
	}
}
