package mem

import (
	"sync"
	"time"
)

// RevocationStore tracks, per account, the moment its sessions were last
// revoked. Tokens issued before that moment must be rejected.
//
// The hot path is a process-local map; the durable copy lives on the account
// row. On a cache miss the loader pulls the durable stamp, so a restart does
// not resurrect tokens that were revoked before the process came up.
type RevocationStore interface {
	Revoke(accountID string, at time.Time)
	RevokedAt(accountID string) (time.Time, bool)
	Seed(accountID string, at time.Time)
}

// StampLoader fetches the durable revocation stamp for an account. A zero
// time with a nil error means the account has never been revoked.
type StampLoader func(accountID string) (time.Time, error)

type RevocationCache struct {
	mu     sync.RWMutex
	data   map[string]time.Time
	loader StampLoader
}

// NewRevocationCache builds a cache backed by loader. A nil loader keeps the
// cache purely in-memory, which suits tests.
func NewRevocationCache(loader StampLoader) *RevocationCache {
	return &RevocationCache{
		data:   make(map[string]time.Time),
		loader: loader,
	}
}

func (s *RevocationCache) Revoke(accountID string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.data[accountID]; ok && existing.After(at) {
		return
	}
	s.data[accountID] = at
}

// RevokedAt consults the cache first and falls back to the durable stamp on
// a miss. A loader error is not cached, so the next lookup retries;
// never-revoked accounts are cached with a zero stamp to keep them off the
// database.
func (s *RevocationCache) RevokedAt(accountID string) (time.Time, bool) {
	s.mu.RLock()
	at, ok := s.data[accountID]
	s.mu.RUnlock()

	if !ok && s.loader != nil {
		loaded, err := s.loader(accountID)
		if err != nil {
			return time.Time{}, false
		}
		s.Seed(accountID, loaded)
		at = loaded
	}

	if at.IsZero() {
		return time.Time{}, false
	}
	return at, true
}

// Seed loads a revocation stamp read from the database without advancing it.
func (s *RevocationCache) Seed(accountID string, at time.Time) {
	s.Revoke(accountID, at)
}
