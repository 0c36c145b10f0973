package store

import (
	"context"

	id "clauseguard/pkg/domain"

	"clauseguard/internal/profile/models"
)

// Store persists whole UserPersonalizationProfile documents keyed by user.
// The document is the unit of atomicity: there are no partial writes, so a
// reconciliation is always read-modify-write over the full profile.
//
// Stores are interface-driven to keep the domain logic testable and to allow
// swapping in-memory and PostgreSQL persistence without rewiring business code.
// Stores return pkg/platform/sentinel errors for infrastructure facts.
type Store interface {
	Save(ctx context.Context, profile *models.UserPersonalizationProfile) error
	Get(ctx context.Context, userID id.UserID) (*models.UserPersonalizationProfile, error)
	Delete(ctx context.Context, userID id.UserID) error
}
