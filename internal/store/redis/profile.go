package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultProfileTTL is how long a resolved username -> UUID mapping lives.
// Mojang accounts rename rarely; a day keeps us well under their rate limits.
const DefaultProfileTTL = 24 * time.Hour

// Store handles Redis operations for the profile cache.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a Redis-backed profile store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultProfileTTL,
	}
}

// GetProfile retrieves a cached UUID for a username. A miss returns "".
func (s *Store) GetProfile(ctx context.Context, username string) (string, error) {
	uuid, err := s.client.Get(ctx, ProfileKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil // cache miss
		}
		return "", fmt.Errorf("failed to get cached profile: %w", err)
	}
	return uuid, nil
}

// SaveProfile stores a username -> UUID resolution.
func (s *Store) SaveProfile(ctx context.Context, username, uuid string) error {
	if err := s.client.Set(ctx, ProfileKey(username), uuid, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache profile: %w", err)
	}
	return nil
}
