package store

import (
	"context"
	"encoding/json"
	"sync"

	id "clauseguard/pkg/domain"
	"clauseguard/pkg/platform/sentinel"

	"clauseguard/internal/profile/models"
)

// InMemoryStore keeps profiles in a map. It intentionally favors clarity over
// performance; production deployments use PostgresStore.
type InMemoryStore struct {
	mu       sync.RWMutex
	profiles map[id.UserID][]byte
}

// NewInMemory creates an empty in-memory profile store.
func NewInMemory() *InMemoryStore {
	return &InMemoryStore{profiles: make(map[id.UserID][]byte)}
}

// Save stores a deep copy of the profile. Documents are kept JSON-encoded so
// callers can never mutate stored state through a retained pointer.
func (s *InMemoryStore) Save(_ context.Context, profile *models.UserPersonalizationProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = raw
	return nil
}

func (s *InMemoryStore) Get(_ context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error) {
	s.mu.RLock()
	raw, ok := s.profiles[userID]
	s.mu.RUnlock()
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	var profile models.UserPersonalizationProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *InMemoryStore) Delete(_ context.Context, userID id.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[userID]; !ok {
		return sentinel.ErrNotFound
	}
	delete(s.profiles, userID)
	return nil
}
