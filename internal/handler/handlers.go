package handler

import (
	"fmt"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/handler/http"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/view"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	views, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("error loading page templates: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, views, cfg, logger),
	}, nil
}
