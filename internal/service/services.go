package service

import (
	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/internal/metrics"
	"github.com/MKhiriev/api-gateway/internal/store"
	"github.com/MKhiriev/api-gateway/models"
)

type Services struct {
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, recorder metrics.Recorder, logger *logger.Logger) *Services {
	appInfo := NewAppInfoService(cfg.App, build, logger)

	return &Services{
		AppInfoService: appInfo,
		HealthService:  NewHealthService(storages.Prober, appInfo, NewRuntimeIntrospector(), recorder, cfg.Health, logger),
	}
}
