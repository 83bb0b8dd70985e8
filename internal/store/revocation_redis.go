package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-motors/internal/config"
	"github.com/MKhiriev/go-motors/internal/logger"
	"github.com/redis/go-redis/v9"
)

const revokedTokenKeyPrefix = "motors:revoked:"

// redisRevocationStore keeps revoked token ids as Redis keys whose TTL ends
// when the token would have expired.
type redisRevocationStore struct {
	client *redis.Client
}

// NewRedisClient creates a Redis client and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisRevocationStore constructs a Redis-backed [RevocationStore].
func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		// already expired, nothing to remember
		return nil
	}

	if err := s.client.Set(ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStore.Revoke").Msg("failed to revoke token")
		return fmt.Errorf("%w: %w", ErrRevocationList, err)
	}
	return nil
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}

	n, err := s.client.Exists(ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisRevocationStore.IsRevoked").Msg("failed to check token")
		return false, fmt.Errorf("%w: %w", ErrRevocationList, err)
	}
	return n > 0, nil
}
