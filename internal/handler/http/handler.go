package http

import (
	"time"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/service"
	"github.com/MKhiriev/go-motors/internal/validators"
	"github.com/MKhiriev/go-motors/internal/view"
)

type Handler struct {
	services *service.Services
	views    *view.Renderer
	flashes  *flashStore

	forms forms

	secureCookies  bool
	requestTimeout time.Duration

	logger *logger.Logger
}

// forms holds one rule-set per submitted form.
type forms struct {
	registration      validators.FormValidator
	login             validators.FormValidator
	accountUpdate     validators.FormValidator
	passwordUpdate    validators.FormValidator
	addClassification validators.FormValidator
	addInventory      validators.FormValidator
}

func NewHandler(services *service.Services, views *view.Renderer, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	secure := !cfg.App.IsDevelopment()

	logger.Info().Bool("secure_cookies", secure).Msg("http handler created")
	return &Handler{
		services: services,
		views:    views,
		flashes:  &flashStore{key: cfg.Auth.FlashSignKey, secure: secure},
		forms: forms{
			registration:      validators.NewRegistrationValidator(services.AccountService),
			login:             validators.NewLoginValidator(),
			accountUpdate:     validators.NewAccountUpdateValidator(),
			passwordUpdate:    validators.NewPasswordUpdateValidator(),
			addClassification: validators.NewClassificationValidator(),
			addInventory:      validators.NewInventoryValidator(),
		},
		secureCookies:  secure,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
