// Package cache provides a read-through Redis cache for assembled profiles.
// The store remains the source of truth; every write path invalidates before
// saving so a stale entry can never outlive a reconciliation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	id "clauseguard/pkg/domain"

	"clauseguard/internal/profile/models"
)

// ErrMiss is returned when the profile is not cached.
var ErrMiss = errors.New("profile cache miss")

// ProfileCache caches profile documents keyed by user.
type ProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a profile cache. A nil client disables caching; every lookup
// then reports a miss and writes become no-ops.
func New(client *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{client: client, ttl: ttl}
}

func key(userID id.UserID) string {
	return "profile:" + userID.String()
}

// Get returns the cached profile or ErrMiss.
func (c *ProfileCache) Get(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error) {
	if c.client == nil {
		return nil, ErrMiss
	}
	raw, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	var profile models.UserPersonalizationProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		// A corrupt entry behaves like a miss; the store copy is authoritative.
		return nil, ErrMiss
	}
	return &profile, nil
}

// Set stores the profile with the configured TTL.
func (c *ProfileCache) Set(ctx context.Context, profile *models.UserPersonalizationProfile) error {
	if c.client == nil {
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(profile.UserID), raw, c.ttl).Err()
}

// Invalidate drops the cached profile.
func (c *ProfileCache) Invalidate(ctx context.Context, userID id.UserID) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, key(userID)).Err()
}
