package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/mock"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestInventoryService(t *testing.T) (InventoryService, *mock.MockInventoryRepository) {
	t.Helper()
	repo := mock.NewMockInventoryRepository(gomock.NewController(t))
	return NewInventoryService(repo, logger.Nop()), repo
}

func testVehicle() models.Vehicle {
	return models.Vehicle{
		ClassificationID: 2,
		Make:             "Chevy",
		Model:            "Camaro",
		Year:             2018,
		Description:      "If you want to look cool this is the car you need!",
		Image:            "/images/vehicles/camaro.jpg",
		Thumbnail:        "/images/vehicles/camaro-tn.jpg",
		Price:            25000,
		Miles:            101222,
		Color:            "Silver",
	}
}

// ─────────────────────────────────────────────
// Classifications
// ─────────────────────────────────────────────

func TestGetClassifications(t *testing.T) {
	svc, repo := newTestInventoryService(t)
	want := []models.Classification{{ClassificationID: 1, Name: "Custom"}, {ClassificationID: 2, Name: "Sport"}}

	repo.EXPECT().GetClassifications(gomock.Any()).Return(want, nil)

	got, err := svc.GetClassifications(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetClassifications_StoreError(t *testing.T) {
	svc, repo := newTestInventoryService(t)
	dbErr := errors.New("db is down")

	repo.EXPECT().GetClassifications(gomock.Any()).Return(nil, dbErr)

	_, err := svc.GetClassifications(context.Background())

	assert.ErrorIs(t, err, dbErr)
}

func TestAddClassification(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	repo.EXPECT().AddClassification(gomock.Any(), "Electric").Return(models.Classification{ClassificationID: 6, Name: "Electric"}, nil)
	repo.EXPECT().AddClassification(gomock.Any(), "Sport").Return(models.Classification{}, store.ErrClassificationAlreadyExists)

	got, err := svc.AddClassification(context.Background(), "Electric")
	require.NoError(t, err)
	assert.Equal(t, int64(6), got.ClassificationID)

	_, err = svc.AddClassification(context.Background(), "Sport")
	assert.ErrorIs(t, err, store.ErrClassificationAlreadyExists)

	_, err = svc.AddClassification(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ─────────────────────────────────────────────
// Vehicles
// ─────────────────────────────────────────────

func TestGetClassificationVehicles(t *testing.T) {
	svc, repo := newTestInventoryService(t)
	classification := models.Classification{ClassificationID: 2, Name: "Sport"}
	vehicles := []models.Vehicle{testVehicle()}

	gomock.InOrder(
		repo.EXPECT().GetClassificationByID(gomock.Any(), int64(2)).Return(classification, nil),
		repo.EXPECT().GetVehiclesByClassificationID(gomock.Any(), int64(2)).Return(vehicles, nil),
	)

	gotClassification, gotVehicles, err := svc.GetClassificationVehicles(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, classification, gotClassification)
	assert.Equal(t, vehicles, gotVehicles)
}

func TestGetClassificationVehicles_UnknownClassification(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	repo.EXPECT().GetClassificationByID(gomock.Any(), int64(99)).Return(models.Classification{}, store.ErrClassificationNotFound)

	_, _, err := svc.GetClassificationVehicles(context.Background(), 99)

	assert.ErrorIs(t, err, store.ErrClassificationNotFound)
}

func TestGetClassificationVehicles_Empty(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	repo.EXPECT().GetClassificationByID(gomock.Any(), int64(3)).Return(models.Classification{ClassificationID: 3, Name: "Truck"}, nil)
	repo.EXPECT().GetVehiclesByClassificationID(gomock.Any(), int64(3)).Return([]models.Vehicle{}, nil)

	_, vehicles, err := svc.GetClassificationVehicles(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, vehicles)
}

func TestGetVehicle_NotFound(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	repo.EXPECT().GetVehicleByID(gomock.Any(), int64(404)).Return(models.Vehicle{}, store.ErrVehicleNotFound)

	_, err := svc.GetVehicle(context.Background(), 404)

	assert.ErrorIs(t, err, store.ErrVehicleNotFound)
}

func TestAddVehicle(t *testing.T) {
	svc, repo := newTestInventoryService(t)
	input := testVehicle()
	stored := input
	stored.InvID = 15

	repo.EXPECT().AddVehicle(gomock.Any(), input).Return(stored, nil)

	got, err := svc.AddVehicle(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, int64(15), got.InvID)
}

func TestAddVehicle_Errors(t *testing.T) {
	svc, repo := newTestInventoryService(t)

	invalid := testVehicle()
	invalid.ClassificationID = 0
	_, err := svc.AddVehicle(context.Background(), invalid)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().AddVehicle(gomock.Any(), gomock.Any()).Return(models.Vehicle{}, store.ErrClassificationNotFound)

	_, err = svc.AddVehicle(context.Background(), testVehicle())
	assert.ErrorIs(t, err, store.ErrClassificationNotFound)
}
