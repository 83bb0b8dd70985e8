package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/MKhiriev/go-motors/models"
	"github.com/jackc/pgerrcode"
)

// inventoryRepository is the PostgreSQL-backed implementation of
// [InventoryRepository] over the "classification" and "inventory" tables.
type inventoryRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewInventoryRepository constructs an [InventoryRepository] backed by the
// provided database connection and logger.
func NewInventoryRepository(db *DB, logger *logger.Logger) InventoryRepository {
	logger.Debug().Msg("creating inventory repository")
	return &inventoryRepository{
		db:     db,
		logger: logger,
	}
}

// GetClassifications returns all classifications ordered by name.
// Returns an empty slice when there are none.
func (r *inventoryRepository) GetClassifications(ctx context.Context) ([]models.Classification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClassificationsQuery()
	if err != nil {
		return nil, err
	}

	var results []models.Classification
	err = r.db.retry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		results = make([]models.Classification, 0, 8)
		for rows.Next() {
			var c models.Classification
			if err := rows.Scan(&c.ClassificationID, &c.Name); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			results = append(results, c)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*inventoryRepository.GetClassifications").Msg("failed to get classifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return results, nil
}

// GetClassificationByID returns one classification or [ErrClassificationNotFound].
func (r *inventoryRepository) GetClassificationByID(ctx context.Context, classificationID int64) (models.Classification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClassificationByIDQuery(classificationID)
	if err != nil {
		return models.Classification{}, err
	}

	var c models.Classification
	err = r.db.retry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&c.ClassificationID, &c.Name)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Classification{}, ErrClassificationNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*inventoryRepository.GetClassificationByID").
			Int64("classification_id", classificationID).
			Msg("failed to get classification")
		return models.Classification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return c, nil
}

// AddClassification inserts a classification and returns it with its id.
// A duplicate name yields [ErrClassificationAlreadyExists].
func (r *inventoryRepository) AddClassification(ctx context.Context, name string) (models.Classification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertClassificationQuery(name)
	if err != nil {
		return models.Classification{}, err
	}

	var c models.Classification
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ClassificationID, &c.Name); err != nil {
		log.Err(err).
			Str("func", "*inventoryRepository.AddClassification").
			Str("classification_name", name).
			Msg("failed to insert classification")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Classification{}, ErrClassificationAlreadyExists
		default:
			return models.Classification{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return c, nil
}

// GetVehiclesByClassificationID returns the vehicles of one classification,
// each carrying the classification name.
func (r *inventoryRepository) GetVehiclesByClassificationID(ctx context.Context, classificationID int64) ([]models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVehiclesByClassificationQuery(classificationID)
	if err != nil {
		return nil, err
	}

	var results []models.Vehicle
	err = r.db.retry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		results = make([]models.Vehicle, 0, 16)
		for rows.Next() {
			v, err := scanVehicle(rows)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			results = append(results, v)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*inventoryRepository.GetVehiclesByClassificationID").
			Int64("classification_id", classificationID).
			Msg("failed to get vehicles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return results, nil
}

// GetVehicleByID returns a single vehicle or [ErrVehicleNotFound].
func (r *inventoryRepository) GetVehicleByID(ctx context.Context, invID int64) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectVehicleByIDQuery(invID)
	if err != nil {
		return models.Vehicle{}, err
	}

	var v models.Vehicle
	err = r.db.retry(ctx, func() error {
		var scanErr error
		v, scanErr = scanVehicle(r.db.QueryRowContext(ctx, query, args...))
		return scanErr
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Vehicle{}, ErrVehicleNotFound
	case err != nil:
		log.Err(err).Str("func", "*inventoryRepository.GetVehicleByID").Int64("inv_id", invID).Msg("failed to get vehicle")
		return models.Vehicle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return v, nil
}

// AddVehicle inserts a vehicle and returns it with its id. An unknown
// classification yields [ErrClassificationNotFound].
func (r *inventoryRepository) AddVehicle(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVehicleQuery(vehicle)
	if err != nil {
		return models.Vehicle{}, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&vehicle.InvID); err != nil {
		log.Err(err).
			Str("func", "*inventoryRepository.AddVehicle").
			Int64("classification_id", vehicle.ClassificationID).
			Msg("failed to insert vehicle")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Vehicle{}, ErrClassificationNotFound
		default:
			return models.Vehicle{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return vehicle, nil
}

func scanVehicle(row interface{ Scan(dest ...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.InvID,
		&v.ClassificationID,
		&v.ClassificationName,
		&v.Make,
		&v.Model,
		&v.Year,
		&v.Description,
		&v.Image,
		&v.Thumbnail,
		&v.Price,
		&v.Miles,
		&v.Color,
	)
	return v, err
}
