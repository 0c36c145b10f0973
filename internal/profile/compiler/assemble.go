package compiler

import (
	id "clauseguard/pkg/domain"

	"clauseguard/internal/profile/models"
)

// Assemble composes a validated QuizResponse and its derived output into the
// persisted profile shape. The schema version is stamped (defaulting empty
// input to the current revision) and CompletedAt is carried over from the
// submission; later partial updates must never overwrite it.
//
// Assemble assumes ValidateQuiz has passed: version and userId parse errors
// cannot occur here.
func Assemble(q *models.QuizResponse, derived *models.DerivedProfile) *models.UserPersonalizationProfile {
	version, _ := id.ParseSchemaVersion(q.Version)
	userID, _ := id.ParseUserID(q.UserID)
	return &models.UserPersonalizationProfile{
		UserID:            userID,
		Version:           version,
		CompletedAt:       q.CompletedAt,
		Demographics:      *q.Demographics,
		DigitalBehavior:   *q.DigitalBehavior,
		RiskPreferences:   *q.RiskPreferences,
		ContextualFactors: *q.ContextualFactors,
		ComputedProfile:   derived,
	}
}
