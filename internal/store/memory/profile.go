// Package memory provides the in-process fallback profile cache used when
// no Redis address is configured. Semantics match the Redis store: 24h TTL,
// case-insensitive usernames, wholesale overwrite.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"
)

type profileEntry struct {
	uuid      string
	fetchedAt time.Time
}

// ProfileStore is a mutex-guarded username -> UUID cache.
type ProfileStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   func() time.Time
	entries map[string]profileEntry
}

// NewProfileStore creates a store with the given TTL. A nil clock means
// time.Now.
func NewProfileStore(ttl time.Duration, clock func() time.Time) *ProfileStore {
	if clock == nil {
		clock = time.Now
	}
	return &ProfileStore{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]profileEntry),
	}
}

// GetProfile retrieves a cached UUID for a username. A miss returns "".
func (s *ProfileStore) GetProfile(_ context.Context, username string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[strings.ToLower(username)]
	if !ok || s.clock().Sub(e.fetchedAt) >= s.ttl {
		return "", nil
	}
	return e.uuid, nil
}

// SaveProfile stores a username -> UUID resolution.
func (s *ProfileStore) SaveProfile(_ context.Context, username, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[strings.ToLower(username)] = profileEntry{
		uuid:      uuid,
		fetchedAt: s.clock(),
	}
	return nil
}
