package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"clauseguard/internal/profile/models"
	id "clauseguard/pkg/domain"
	"clauseguard/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func (s *MemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) newProfile(userID string) *models.UserPersonalizationProfile {
	return &models.UserPersonalizationProfile{
		UserID:      id.UserID(userID),
		Version:     id.SchemaVersionV1,
		CompletedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Demographics: models.Demographics{
			AgeRange:           models.Age25To34,
			OccupationCategory: models.OccupationTechnology,
			TechSophistication: models.TechSophistication{ComfortLevel: models.ComfortAdvanced},
			Jurisdiction:       models.Jurisdiction{PrimaryCountry: "US"},
		},
		ComputedProfile: &models.DerivedProfile{
			RiskTolerance:    models.RiskTolerance{Privacy: 4.2, Financial: 5.1, Legal: 3.9, Overall: 4.4},
			ExplanationStyle: models.StyleBalancedPractical,
			ProfileTags:      []string{"tech-savvy"},
			WeightsVersion:   "1.0",
		},
	}
}

func (s *MemoryStoreSuite) TestSaveAndGet() {
	s.Run("round-trips a profile", func() {
		profile := s.newProfile("alice@example.com")
		s.Require().NoError(s.store.Save(s.ctx, profile))

		got, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().NoError(err)
		s.Equal(profile, got)
	})

	s.Run("returns ErrNotFound for unknown user", func() {
		_, err := s.store.Get(s.ctx, id.UserID("nobody@example.com"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("save replaces the whole document", func() {
		profile := s.newProfile("bob@example.com")
		s.Require().NoError(s.store.Save(s.ctx, profile))

		profile.Demographics.AgeRange = models.Age45To54
		profile.ComputedProfile = nil
		s.Require().NoError(s.store.Save(s.ctx, profile))

		got, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().NoError(err)
		s.Equal(models.Age45To54, got.Demographics.AgeRange)
		s.Nil(got.ComputedProfile)
	})
}

func (s *MemoryStoreSuite) TestIsolation() {
	s.Run("mutating a saved profile does not alter stored state", func() {
		profile := s.newProfile("carol@example.com")
		s.Require().NoError(s.store.Save(s.ctx, profile))

		profile.Demographics.AgeRange = models.Age65Plus
		profile.ComputedProfile.ProfileTags[0] = "mutated"

		got, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().NoError(err)
		s.Equal(models.Age25To34, got.Demographics.AgeRange)
		s.Equal([]string{"tech-savvy"}, got.ComputedProfile.ProfileTags)
	})

	s.Run("mutating a fetched profile does not alter stored state", func() {
		profile := s.newProfile("dave@example.com")
		s.Require().NoError(s.store.Save(s.ctx, profile))

		first, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().NoError(err)
		first.Demographics.OccupationCategory = models.OccupationOther

		second, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().NoError(err)
		s.Equal(models.OccupationTechnology, second.Demographics.OccupationCategory)
	})
}

func (s *MemoryStoreSuite) TestDelete() {
	s.Run("removes a stored profile", func() {
		profile := s.newProfile("erin@example.com")
		s.Require().NoError(s.store.Save(s.ctx, profile))
		s.Require().NoError(s.store.Delete(s.ctx, profile.UserID))

		_, err := s.store.Get(s.ctx, profile.UserID)
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deleting an absent profile is ErrNotFound", func() {
		s.Require().ErrorIs(s.store.Delete(s.ctx, id.UserID("ghost@example.com")), sentinel.ErrNotFound)
	})
}
