package service

import (
	"fmt"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/store"
)

type Services struct {
	AuthService      AuthService
	AccountService   AccountService
	InventoryService InventoryService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:      NewAuthService(storages.AccountRepository, storages.RevocationStore, cfg.Auth, logger),
		AccountService:   NewAccountService(storages.AccountRepository, cfg.Auth, logger),
		InventoryService: NewInventoryService(storages.InventoryRepository, logger),
		AppInfoService:   appInfoService,
	}, nil
}
