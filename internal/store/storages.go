package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every persistence component of the server.
type Storages struct {
	AccountRepository   AccountRepository
	InventoryRepository InventoryRepository
	RevocationStore     RevocationStore

	// MemoryRevocations is set when the in-process revocation list is used,
	// so the pruner worker can be started for it.
	MemoryRevocations *MemoryRevocationStore

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL, applies migrations and selects the
// revocation list backend: Redis when an address is configured, otherwise an
// in-process list.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		db.Close()
		return nil, err
	}

	s := &Storages{
		AccountRepository:   NewAccountRepository(db, log),
		InventoryRepository: NewInventoryRepository(db, log),
		db:                  db,
	}

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		s.redis = client
		s.RevocationStore = NewRedisRevocationStore(client)
	} else {
		log.Info().Str("func", "NewStorages").Msg("redis address is not set, using in-process revocation list")
		s.MemoryRevocations = NewMemoryRevocationStore()
		s.RevocationStore = s.MemoryRevocations
	}

	return s, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var err error
	if s.redis != nil {
		err = errors.Join(err, s.redis.Close())
	}
	if s.db != nil {
		err = errors.Join(err, s.db.Close())
	}
	return err
}
