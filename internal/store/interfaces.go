package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-motors/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts in the "account" table.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (models.Account, error)
	FindAccountByID(ctx context.Context, accountID int64) (models.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdatePassword(ctx context.Context, accountID int64, passwordHash string) error
	UpdateDarkMode(ctx context.Context, accountID int64, darkMode bool) error
}

// InventoryRepository persists classifications and vehicles.
type InventoryRepository interface {
	GetClassifications(ctx context.Context) ([]models.Classification, error)
	GetClassificationByID(ctx context.Context, classificationID int64) (models.Classification, error)
	AddClassification(ctx context.Context, name string) (models.Classification, error)
	GetVehiclesByClassificationID(ctx context.Context, classificationID int64) ([]models.Vehicle, error)
	GetVehicleByID(ctx context.Context, invID int64) (models.Vehicle, error)
	AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
}

// RevocationStore remembers revoked session token ids until the token would
// have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
