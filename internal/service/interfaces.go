package service

import (
	"context"

	"github.com/MKhiriev/go-motors/models"
)

type AuthService interface {
	RegisterAccount(ctx context.Context, account models.Account) (models.Account, error)
	Login(ctx context.Context, email, password string) (models.Account, error)
	CreateToken(ctx context.Context, account models.Account) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	RevokeToken(ctx context.Context, token models.Token) error
}

type AccountService interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	GetAccount(ctx context.Context, accountID int64) (models.Account, error)
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, password string) error
	SetDarkMode(ctx context.Context, accountID int64, darkMode bool) error
}

type InventoryService interface {
	GetClassifications(ctx context.Context) ([]models.Classification, error)
	AddClassification(ctx context.Context, name string) (models.Classification, error)

	// GetClassificationVehicles returns the classification together with its
	// vehicles. An existing classification with no vehicles is not an error.
	GetClassificationVehicles(ctx context.Context, classificationID int64) (models.Classification, []models.Vehicle, error)
	GetVehicle(ctx context.Context, invID int64) (models.Vehicle, error)
	AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
