package service

import (
	"context"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/api-gateway/internal/config"
	"github.com/MKhiriev/api-gateway/internal/logger"
	"github.com/MKhiriev/api-gateway/models"
)

// DefaultVersion is reported when no version source is available.
const DefaultVersion = "1.0.0"

type appInfoService struct {
	appVersion  string
	environment string
	production  bool

	logger *logger.Logger
}

// NewAppInfoService resolves the reported version once with [ResolveVersion].
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) AppInfoService {
	version := ResolveVersion(cfg, build)

	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = config.DefaultEnvironment
	}

	logger.Debug().Str("version", version).Str("environment", environment).Msg("app info resolved")

	return &appInfoService{
		appVersion:  version,
		environment: environment,
		production:  cfg.IsProduction(),
		logger:      logger,
	}
}

// ResolveVersion returns the service version, first non-empty wins:
//  1. cfg.Version (APP_VERSION)
//  2. the linker-injected build version
//  3. the main module version recorded by the Go toolchain
//  4. [DefaultVersion]
func ResolveVersion(cfg config.App, build models.AppBuildInfo) string {
	return resolveVersion(cfg.Version, build.BuildVersion(), readModuleVersion)
}

func resolveVersion(configured, linked string, module func() string) string {
	for _, candidate := range []string{configured, linked} {
		if v := strings.TrimSpace(candidate); v != "" {
			return v
		}
	}

	if v := module(); v != "" {
		return v
	}

	return DefaultVersion
}

// readModuleVersion returns the main module version, or "" for development
// builds where the toolchain records "(devel)".
func readModuleVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	v := info.Main.Version
	if v == "" || v == "(devel)" {
		return ""
	}

	return strings.TrimPrefix(v, "v")
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetEnvironment(ctx context.Context) string {
	return s.environment
}

func (s *appInfoService) IsProduction(ctx context.Context) bool {
	return s.production
}
