package store

import (
	"context"
	"sync"
	"time"
)

// MemoryRevocationStore is an in-process [RevocationStore] used when no Redis
// address is configured. Expired entries are dropped by Prune, which the
// revocation pruner worker calls periodically.
type MemoryRevocationStore struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevocationStore constructs an empty in-process revocation list.
func NewMemoryRevocationStore() *MemoryRevocationStore {
	return &MemoryRevocationStore{
		revoked: make(map[string]time.Time),
		now:     time.Now,
	}
}

func (s *MemoryRevocationStore) Revoke(_ context.Context, tokenID string, until time.Time) error {
	if tokenID == "" {
		return ErrEmptyTokenID
	}
	if !until.After(s.now()) {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.revoked[tokenID]; !ok || until.After(prev) {
		s.revoked[tokenID] = until
	}
	return nil
}

func (s *MemoryRevocationStore) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, ErrEmptyTokenID
	}

	s.mu.RLock()
	until, ok := s.revoked[tokenID]
	s.mu.RUnlock()

	return ok && until.After(s.now()), nil
}

// Prune removes entries whose tokens have expired and returns how many were
// removed.
func (s *MemoryRevocationStore) Prune(_ context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, until := range s.revoked {
		if !until.After(now) {
			delete(s.revoked, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of remembered token ids.
func (s *MemoryRevocationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.revoked)
}
