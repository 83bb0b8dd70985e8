package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
)

// appInfoService exposes build information shown in the page footer.
type appInfoService struct {
	appVersion string
	appMode    string

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		appMode:    cfg.Mode,
		logger:     logger,
	}, nil
}

// GetAppVersion returns the configured version, suffixed with the mode for
// non-production deployments (e.g. "1.2.0 (development)").
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	if s.appMode == "" || s.appMode == config.ModeProduction {
		return s.appVersion
	}
	return s.appVersion + " (" + s.appMode + ")"
}
