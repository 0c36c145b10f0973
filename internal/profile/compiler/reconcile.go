package compiler

import (
	"encoding/json"

	id "clauseguard/pkg/domain"
	dErrors "clauseguard/pkg/domain-errors"

	"clauseguard/internal/profile/models"
)

// ReconcileRequest is a single-section edit against a stored profile.
// Recompute defaults to true at the transport layer; a false value leaves the
// previous ComputedProfile in place, stale.
type ReconcileRequest struct {
	Section   id.QuizSection
	Data      json.RawMessage
	Recompute bool
}

// Reconcile validates the edited section in isolation and replaces the
// corresponding top-level key of the stored profile wholesale. All other
// sections, CompletedAt, and Version are untouched. The update is
// all-or-nothing: on any failure the prior profile is returned unmodified.
//
// The prior profile is never mutated; callers get a fresh document. Serializing
// concurrent reconciliations for one user is the caller's job (the service
// holds a per-user lock around the read-modify-write).
func Reconcile(prior *models.UserPersonalizationProfile, req ReconcileRequest, w *Weights) (*models.UserPersonalizationProfile, error) {
	if prior == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "reconcile requires a stored profile")
	}

	decoded, err := DecodeSection(req.Section, req.Data)
	if err != nil {
		return nil, err
	}
	if err := ValidateSection(req.Section, decoded); err != nil {
		return nil, err
	}

	updated := *prior
	switch s := decoded.(type) {
	case *models.Demographics:
		updated.Demographics = *s
	case *models.DigitalBehavior:
		updated.DigitalBehavior = *s
	case *models.RiskPreferences:
		updated.RiskPreferences = *s
	case *models.ContextualFactors:
		updated.ContextualFactors = *s
	}

	if req.Recompute {
		derived, err := Derive(updated.QuizView(), w)
		if err != nil {
			return nil, err
		}
		updated.ComputedProfile = derived
	}
	return &updated, nil
}
