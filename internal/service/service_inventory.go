// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/internal/store"
	"github.com/MKhiriev/go-motors/models"
)

// inventoryService is the concrete implementation of InventoryService.
// Input has already passed the request validation pipeline, so only the
// invariants the store relies on are rechecked here.
type inventoryService struct {
	inventoryRepository store.InventoryRepository

	logger *logger.Logger
}

// NewInventoryService constructs an InventoryService backed by the given
// repository.
func NewInventoryService(inventoryRepository store.InventoryRepository, logger *logger.Logger) InventoryService {
	return &inventoryService{
		inventoryRepository: inventoryRepository,
		logger:              logger,
	}
}

// GetClassifications returns every classification ordered by name. The
// result feeds the site navigation and the add-inventory select.
func (s *inventoryService) GetClassifications(ctx context.Context) ([]models.Classification, error) {
	classifications, err := s.inventoryRepository.GetClassifications(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("classification listing failed")
		return nil, fmt.Errorf("classification listing failed: %w", err)
	}
	return classifications, nil
}

// AddClassification creates a classification with the given name.
//
// Returns ErrInvalidDataProvided for an empty name, or a wrapped
// store.ErrClassificationAlreadyExists for a duplicate.
func (s *inventoryService) AddClassification(ctx context.Context, name string) (models.Classification, error) {
	log := logger.FromContext(ctx)

	if name == "" {
		log.Error().Msg("empty classification name provided")
		return models.Classification{}, ErrInvalidDataProvided
	}

	classification, err := s.inventoryRepository.AddClassification(ctx, name)
	if err != nil {
		log.Err(err).Str("name", name).Msg("classification creation failed")
		return models.Classification{}, fmt.Errorf("classification creation failed: %w", err)
	}
	return classification, nil
}

// GetClassificationVehicles resolves the classification first so an unknown
// id is reported as store.ErrClassificationNotFound, while a known
// classification without vehicles yields an empty slice.
func (s *inventoryService) GetClassificationVehicles(ctx context.Context, classificationID int64) (models.Classification, []models.Vehicle, error) {
	log := logger.FromContext(ctx)

	classification, err := s.inventoryRepository.GetClassificationByID(ctx, classificationID)
	if err != nil {
		log.Err(err).Int64("classification_id", classificationID).Msg("classification search failed")
		return models.Classification{}, nil, fmt.Errorf("classification search failed: %w", err)
	}

	vehicles, err := s.inventoryRepository.GetVehiclesByClassificationID(ctx, classificationID)
	if err != nil {
		log.Err(err).Int64("classification_id", classificationID).Msg("vehicle listing failed")
		return models.Classification{}, nil, fmt.Errorf("vehicle listing failed: %w", err)
	}

	return classification, vehicles, nil
}

func (s *inventoryService) GetVehicle(ctx context.Context, invID int64) (models.Vehicle, error) {
	vehicle, err := s.inventoryRepository.GetVehicleByID(ctx, invID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("inv_id", invID).Msg("vehicle search failed")
		return models.Vehicle{}, fmt.Errorf("vehicle search failed: %w", err)
	}
	return vehicle, nil
}

// AddVehicle stores a new vehicle. The classification must exist; otherwise
// a wrapped store.ErrClassificationNotFound is returned.
func (s *inventoryService) AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	if vehicle.ClassificationID <= 0 || vehicle.Make == "" || vehicle.Model == "" {
		log.Error().Any("vehicle", vehicle).Msg("invalid vehicle data provided")
		return models.Vehicle{}, ErrInvalidDataProvided
	}

	added, err := s.inventoryRepository.AddVehicle(ctx, vehicle)
	if err != nil {
		log.Err(err).Str("make", vehicle.Make).Str("model", vehicle.Model).Msg("vehicle creation failed")
		return models.Vehicle{}, fmt.Errorf("vehicle creation failed: %w", err)
	}
	return added, nil
}
