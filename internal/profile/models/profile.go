package models

import (
	"time"

	id "clauseguard/pkg/domain"
)

// RiskTolerance holds the per-axis tolerance scores, each in [0,10].
// 10 is maximally risk-tolerant; 0 wants maximum protection.
type RiskTolerance struct {
	Privacy   float64 `json:"privacy"`
	Financial float64 `json:"financial"`
	Legal     float64 `json:"legal"`
	Overall   float64 `json:"overall"`
}

// AlertThresholds holds per-category alert cut-offs in [0,10]. A clause whose
// severity meets or exceeds the threshold triggers an alert, so lower values
// are stricter.
type AlertThresholds struct {
	Privacy     float64 `json:"privacy"`
	Liability   float64 `json:"liability"`
	Termination float64 `json:"termination"`
	Payment     float64 `json:"payment"`
	Overall     float64 `json:"overall"`
}

// DerivedProfile is the Derivation Engine's output: the compact, comparable
// summary the risk-analysis engine consumes instead of the raw answers.
//
// Invariants:
//   - every score lies in [0,10]
//   - ProfileTags is sorted and duplicate-free
//   - identical input documents always produce identical output
type DerivedProfile struct {
	RiskTolerance    RiskTolerance    `json:"riskTolerance"`
	AlertThresholds  AlertThresholds  `json:"alertThresholds"`
	ExplanationStyle ExplanationStyle `json:"explanationStyle"`
	ProfileTags      []string         `json:"profileTags"`
	WeightsVersion   string           `json:"weightsVersion"`
}

// UserPersonalizationProfile is the persisted document: validated raw sections
// plus the derived output.
//
// Lifecycle: created once from a completed quiz; mutated only by whole-section
// replacement; ComputedProfile is nil until derivation has run and is always
// recomputed in full, never patched.
type UserPersonalizationProfile struct {
	UserID            id.UserID         `json:"userId"`
	Version           id.SchemaVersion  `json:"version"`
	CompletedAt       time.Time         `json:"completedAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	Demographics      Demographics      `json:"demographics"`
	DigitalBehavior   DigitalBehavior   `json:"digitalBehavior"`
	RiskPreferences   RiskPreferences   `json:"riskPreferences"`
	ContextualFactors ContextualFactors `json:"contextualFactors"`
	ComputedProfile   *DerivedProfile   `json:"computedProfile,omitempty"`
}

// QuizView reassembles the stored sections into a QuizResponse so the
// derivation engine can be replayed over the full document after a partial
// update. Section structs are copied, not aliased.
func (p *UserPersonalizationProfile) QuizView() *QuizResponse {
	demographics := p.Demographics
	behavior := p.DigitalBehavior
	prefs := p.RiskPreferences
	contextual := p.ContextualFactors
	return &QuizResponse{
		Version:           p.Version.String(),
		UserID:            p.UserID.String(),
		CompletedAt:       p.CompletedAt,
		Demographics:      &demographics,
		DigitalBehavior:   &behavior,
		RiskPreferences:   &prefs,
		ContextualFactors: &contextual,
	}
}
