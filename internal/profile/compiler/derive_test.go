package compiler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"

	"clauseguard/internal/profile/models"
	dErrors "clauseguard/pkg/domain-errors"
)

type DeriveSuite struct {
	suite.Suite
	weights *Weights
}

func (s *DeriveSuite) SetupTest() {
	s.weights = DefaultWeights()
}

func TestDeriveSuite(t *testing.T) {
	suite.Run(t, new(DeriveSuite))
}

// TestDeterminism verifies identical input always yields identical output,
// down to the serialized bytes.
func (s *DeriveSuite) TestDeterminism() {
	s.Run("same quiz derives the same profile twice", func() {
		for _, quiz := range []*models.QuizResponse{cautiousQuiz(), relaxedQuiz(), guardianQuiz()} {
			first, err := Derive(quiz, s.weights)
			s.Require().NoError(err)
			second, err := Derive(quiz, s.weights)
			s.Require().NoError(err)

			s.Equal(first, second)

			firstJSON, err := json.Marshal(first)
			s.Require().NoError(err)
			secondJSON, err := json.Marshal(second)
			s.Require().NoError(err)
			s.Equal(firstJSON, secondJSON)
		}
	})

	s.Run("tag order is stable regardless of answer order", func() {
		a := guardianQuiz()
		b := guardianQuiz()
		b.ContextualFactors.SpecialCircumstances = []models.SpecialCircumstance{
			models.CircumstanceHandlesClientData,
			models.CircumstanceElderlyVulnerable,
		}

		da, err := Derive(a, s.weights)
		s.Require().NoError(err)
		db, err := Derive(b, s.weights)
		s.Require().NoError(err)
		s.Equal(da.ProfileTags, db.ProfileTags)
	})

	s.Run("sensitive data ties do not flip the result", func() {
		a := cautiousQuiz()
		b := cautiousQuiz()
		// Same entries, different order; the two priority-9 entries tie.
		b.DigitalBehavior.SensitiveDataTypes = []models.SensitiveDataEntry{
			{DataType: models.DataGovernmentID, PriorityLevel: 9},
			{DataType: models.DataFinancialDetails, PriorityLevel: 10},
			{DataType: models.DataHealthRecords, PriorityLevel: 9},
		}

		da, err := Derive(a, s.weights)
		s.Require().NoError(err)
		db, err := Derive(b, s.weights)
		s.Require().NoError(err)
		s.Equal(da.RiskTolerance, db.RiskTolerance)
	})
}

// TestScoreBounds verifies every derived score lands in [0,10] even at the
// extremes of the answer space.
func (s *DeriveSuite) TestScoreBounds() {
	for _, tc := range []struct {
		name string
		quiz *models.QuizResponse
	}{
		{"maximally cautious respondent", cautiousQuiz()},
		{"maximally relaxed respondent", relaxedQuiz()},
		{"guardian with stacked modifiers", guardianQuiz()},
	} {
		s.Run(tc.name, func() {
			derived, err := Derive(tc.quiz, s.weights)
			s.Require().NoError(err)

			inRange := func(name string, v float64) {
				s.GreaterOrEqual(v, 0.0, name)
				s.LessOrEqual(v, 10.0, name)
			}
			inRange("tolerance.privacy", derived.RiskTolerance.Privacy)
			inRange("tolerance.financial", derived.RiskTolerance.Financial)
			inRange("tolerance.legal", derived.RiskTolerance.Legal)
			inRange("tolerance.overall", derived.RiskTolerance.Overall)
			inRange("thresholds.privacy", derived.AlertThresholds.Privacy)
			inRange("thresholds.liability", derived.AlertThresholds.Liability)
			inRange("thresholds.termination", derived.AlertThresholds.Termination)
			inRange("thresholds.payment", derived.AlertThresholds.Payment)
			inRange("thresholds.overall", derived.AlertThresholds.Overall)
		})
	}
}

// TestCautiousRespondent pins the behavior for a respondent who answered
// extremely_important, very_cautious, and strongly_prefer_courts with the rest
// of the answers consistently protective.
func (s *DeriveSuite) TestCautiousRespondent() {
	derived, err := Derive(cautiousQuiz(), s.weights)
	s.Require().NoError(err)

	s.Run("overall tolerance is low", func() {
		s.LessOrEqual(derived.RiskTolerance.Overall, 3.0)
	})

	s.Run("explanation style is protective", func() {
		s.Contains(
			[]models.ExplanationStyle{models.StyleSimpleProtective, models.StyleComprehensiveCautious},
			derived.ExplanationStyle,
		)
	})

	s.Run("thresholds are stricter than the relaxed respondent's", func() {
		relaxed, err := Derive(relaxedQuiz(), s.weights)
		s.Require().NoError(err)
		s.Less(derived.AlertThresholds.Privacy, relaxed.AlertThresholds.Privacy)
		s.Less(derived.AlertThresholds.Payment, relaxed.AlertThresholds.Payment)
		s.Less(derived.AlertThresholds.Liability, relaxed.AlertThresholds.Liability)
		s.Less(derived.AlertThresholds.Overall, relaxed.AlertThresholds.Overall)
	})

	s.Run("low-tolerance tags fire", func() {
		s.Contains(derived.ProfileTags, "privacy-first")
		s.Contains(derived.ProfileTags, "cost-guarded")
		s.Contains(derived.ProfileTags, "litigation-aware")
		s.Contains(derived.ProfileTags, "adaptive-alerts")
	})
}

// TestRelaxedRespondent pins the opposite corner of the answer space.
func (s *DeriveSuite) TestRelaxedRespondent() {
	derived, err := Derive(relaxedQuiz(), s.weights)
	s.Require().NoError(err)

	s.Run("overall tolerance is high", func() {
		s.GreaterOrEqual(derived.RiskTolerance.Overall, 6.5)
	})

	s.Run("expert with high tolerance gets technical style", func() {
		s.Equal(models.StyleTechnicalEfficient, derived.ExplanationStyle)
	})

	s.Run("behavioral tags fire", func() {
		s.Contains(derived.ProfileTags, "tech-savvy")
		s.Contains(derived.ProfileTags, "high-exposure")
		s.NotContains(derived.ProfileTags, "privacy-first")
	})
}

// TestContextualModifiers verifies dependents and special circumstances pull
// overall tolerance down without touching the per-axis scores.
func (s *DeriveSuite) TestContextualModifiers() {
	base := relaxedQuiz()
	baseline, err := Derive(base, s.weights)
	s.Require().NoError(err)

	s.Run("dependents lower overall tolerance", func() {
		q := relaxedQuiz()
		q.ContextualFactors.DependentStatus = models.DependentsBoth
		derived, err := Derive(q, s.weights)
		s.Require().NoError(err)

		s.Less(derived.RiskTolerance.Overall, baseline.RiskTolerance.Overall)
		s.Equal(baseline.RiskTolerance.Privacy, derived.RiskTolerance.Privacy)
		s.Equal(baseline.RiskTolerance.Financial, derived.RiskTolerance.Financial)
		s.Equal(baseline.RiskTolerance.Legal, derived.RiskTolerance.Legal)
		s.Contains(derived.ProfileTags, "guardian")
	})

	s.Run("circumstance modifiers stack", func() {
		q := relaxedQuiz()
		q.ContextualFactors.SpecialCircumstances = []models.SpecialCircumstance{
			models.CircumstanceElderlyVulnerable,
			models.CircumstancePublicFigure,
		}
		derived, err := Derive(q, s.weights)
		s.Require().NoError(err)

		s.InDelta(baseline.RiskTolerance.Overall-2.0, derived.RiskTolerance.Overall, 0.011)
		s.Contains(derived.ProfileTags, "enhanced-protection")
		s.Contains(derived.ProfileTags, "public-profile")
	})
}

// TestTopFactorAdjustments verifies a top-three decision factor sharpens its
// axis while a bottom-ranked one does not.
func (s *DeriveSuite) TestTopFactorAdjustments() {
	s.Run("top-ranked privacy factor lowers privacy tolerance", func() {
		withTop := guardianQuiz()
		withTop.RiskPreferences.DecisionMakingPriorities = []models.DecisionPriorityEntry{
			{Factor: models.FactorPrivacyProtection, Priority: 1},
			{Factor: models.FactorServiceReliability, Priority: 2},
			{Factor: models.FactorCommunityRep, Priority: 3},
			{Factor: models.FactorCostValue, Priority: 4},
			{Factor: models.FactorFlexibilityToLeave, Priority: 5},
			{Factor: models.FactorTransparency, Priority: 6},
			{Factor: models.FactorDataControl, Priority: 7},
			{Factor: models.FactorConvenienceSpeed, Priority: 8},
			{Factor: models.FactorLegalRecourse, Priority: 9},
		}
		withBottom := guardianQuiz()
		withBottom.RiskPreferences.DecisionMakingPriorities = []models.DecisionPriorityEntry{
			{Factor: models.FactorServiceReliability, Priority: 1},
			{Factor: models.FactorCommunityRep, Priority: 2},
			{Factor: models.FactorFlexibilityToLeave, Priority: 3},
			{Factor: models.FactorCostValue, Priority: 4},
			{Factor: models.FactorTransparency, Priority: 5},
			{Factor: models.FactorDataControl, Priority: 6},
			{Factor: models.FactorConvenienceSpeed, Priority: 7},
			{Factor: models.FactorLegalRecourse, Priority: 8},
			{Factor: models.FactorPrivacyProtection, Priority: 9},
		}

		top, err := Derive(withTop, s.weights)
		s.Require().NoError(err)
		bottom, err := Derive(withBottom, s.weights)
		s.Require().NoError(err)

		s.Less(top.RiskTolerance.Privacy, bottom.RiskTolerance.Privacy)
	})
}

// TestAlertPreferenceShifts verifies interruption timing and the alert budget
// shift thresholds in the documented direction.
func (s *DeriveSuite) TestAlertPreferenceShifts() {
	s.Run("immediate interrupters get lower thresholds than critical-only", func() {
		immediate := guardianQuiz()
		immediate.ContextualFactors.AlertPreferences.InterruptionTiming = models.InterruptImmediate
		critical := guardianQuiz()
		critical.ContextualFactors.AlertPreferences.InterruptionTiming = models.InterruptOnlyCritical

		di, err := Derive(immediate, s.weights)
		s.Require().NoError(err)
		dc, err := Derive(critical, s.weights)
		s.Require().NoError(err)

		s.Less(di.AlertThresholds.Overall, dc.AlertThresholds.Overall)
	})

	s.Run("tight alert budget raises thresholds", func() {
		tight := guardianQuiz()
		tight.ContextualFactors.AlertPreferences.AlertFrequencyLimit = 3
		loose := guardianQuiz()
		loose.ContextualFactors.AlertPreferences.AlertFrequencyLimit = 25

		dt, err := Derive(tight, s.weights)
		s.Require().NoError(err)
		dl, err := Derive(loose, s.weights)
		s.Require().NoError(err)

		s.Greater(dt.AlertThresholds.Overall, dl.AlertThresholds.Overall)
	})
}

// TestExplanationStyleTable pins the comfort x tolerance decision table,
// including the protective boundary reading.
func (s *DeriveSuite) TestExplanationStyleTable() {
	for _, tc := range []struct {
		name    string
		comfort models.ComfortLevel
		overall float64
		want    models.ExplanationStyle
	}{
		{"beginner with low tolerance", models.ComfortBeginner, 2.0, models.StyleSimpleProtective},
		{"basic at the low boundary", models.ComfortBasic, 3.5, models.StyleSimpleProtective},
		{"basic with mid tolerance", models.ComfortBasic, 5.0, models.StyleSimpleProtective},
		{"beginner with high tolerance", models.ComfortBeginner, 8.0, models.StyleBalancedPractical},
		{"intermediate with low tolerance", models.ComfortIntermediate, 2.0, models.StyleComprehensiveCautious},
		{"intermediate with mid tolerance", models.ComfortIntermediate, 5.0, models.StyleBalancedPractical},
		{"intermediate at the high boundary", models.ComfortIntermediate, 6.5, models.StyleBalancedPractical},
		{"expert with low tolerance", models.ComfortExpert, 1.0, models.StyleComprehensiveCautious},
		{"advanced with mid tolerance", models.ComfortAdvanced, 4.0, models.StyleBalancedPractical},
		{"expert with high tolerance", models.ComfortExpert, 9.0, models.StyleTechnicalEfficient},
	} {
		s.Run(tc.name, func() {
			s.Equal(tc.want, chooseStyle(tc.comfort, tc.overall, s.weights))
		})
	}
}

func (s *DeriveSuite) TestSensitiveDataScore() {
	s.Run("empty ranking is neutral", func() {
		s.InDelta(5.0, sensitiveDataScore(nil), 0.001)
	})

	s.Run("only the top three entries count", func() {
		entries := []models.SensitiveDataEntry{
			{DataType: models.DataFinancialDetails, PriorityLevel: 10},
			{DataType: models.DataHealthRecords, PriorityLevel: 10},
			{DataType: models.DataGovernmentID, PriorityLevel: 10},
			{DataType: models.DataBrowsingHistory, PriorityLevel: 1},
		}
		s.InDelta(1.0, sensitiveDataScore(entries), 0.001)
	})

	s.Run("duplicate data types are tolerated", func() {
		entries := []models.SensitiveDataEntry{
			{DataType: models.DataFinancialDetails, PriorityLevel: 8},
			{DataType: models.DataFinancialDetails, PriorityLevel: 8},
		}
		s.InDelta(3.0, sensitiveDataScore(entries), 0.001)
	})
}

func (s *DeriveSuite) TestDeriveRejectsIncompleteInput() {
	s.Run("nil quiz", func() {
		_, err := Derive(nil, s.weights)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("missing section", func() {
		q := cautiousQuiz()
		q.RiskPreferences = nil
		_, err := Derive(q, s.weights)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

// TestInvariantGuard verifies the output guard that protects the downstream
// engine from a profile it cannot interpret.
func (s *DeriveSuite) TestInvariantGuard() {
	s.Run("well-formed profile passes", func() {
		derived, err := Derive(guardianQuiz(), s.weights)
		s.Require().NoError(err)
		s.NoError(checkInvariants(derived))
	})

	s.Run("score above the scale is rejected", func() {
		derived, err := Derive(guardianQuiz(), s.weights)
		s.Require().NoError(err)
		derived.RiskTolerance.Overall = 10.5

		err = checkInvariants(derived)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("unknown explanation style is rejected", func() {
		derived, err := Derive(guardianQuiz(), s.weights)
		s.Require().NoError(err)
		derived.ExplanationStyle = models.ExplanationStyle("verbose_legalese")

		err = checkInvariants(derived)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}
