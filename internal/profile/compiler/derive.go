package compiler

import (
	"fmt"
	"sort"

	dErrors "clauseguard/pkg/domain-errors"

	"clauseguard/internal/profile/models"
)

// scale bounds for every derived score.
const (
	scoreMin = 0
	scoreMax = 10
)

// sensitiveTopN is how many of the highest-ranked sensitive data entries feed
// the privacy axis. Beyond the top three the ranking tail carries little
// signal and would dilute the user's strongest concerns.
const sensitiveTopN = 3

// Derive computes a DerivedProfile from a validated QuizResponse using the
// given weight table. The input must already have passed ValidateQuiz; Derive
// trusts enum membership and only re-checks its own output invariants.
//
// Derivation is deterministic: no clock, no randomness, no hidden state.
func Derive(q *models.QuizResponse, w *Weights) (*models.DerivedProfile, error) {
	if q == nil || q.Demographics == nil || q.DigitalBehavior == nil ||
		q.RiskPreferences == nil || q.ContextualFactors == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "derive requires a complete quiz response")
	}

	privacy := privacyTolerance(q, w)
	financial := financialTolerance(q, w)
	legal := legalTolerance(q, w)

	// Top-ranked decision factors sharpen the axis they speak to.
	var overallAdj float64
	for _, p := range q.RiskPreferences.DecisionMakingPriorities {
		if p.Priority > w.Overall.TopFactorRankCutoff {
			continue
		}
		adj, ok := w.Overall.TopFactorAdjustments[p.Factor]
		if !ok {
			continue
		}
		switch adj.Axis {
		case "privacy":
			privacy += adj.Delta
		case "financial":
			financial += adj.Delta
		case "legal":
			legal += adj.Delta
		case "overall":
			overallAdj += adj.Delta
		}
	}
	privacy = clamp(privacy)
	financial = clamp(financial)
	legal = clamp(legal)

	overall := w.Overall.AxisWeights["privacy"]*privacy +
		w.Overall.AxisWeights["financial"]*financial +
		w.Overall.AxisWeights["legal"]*legal +
		overallAdj
	overall += w.Overall.DependentModifiers[q.ContextualFactors.DependentStatus]
	for _, c := range q.ContextualFactors.SpecialCircumstances {
		overall += w.Overall.CircumstanceModifiers[c]
	}
	overall = clamp(overall)

	tolerance := models.RiskTolerance{
		Privacy:   round2(privacy),
		Financial: round2(financial),
		Legal:     round2(legal),
		Overall:   round2(overall),
	}

	thresholds := alertThresholds(tolerance, q.ContextualFactors.AlertPreferences, w)
	style := chooseStyle(q.Demographics.TechSophistication.ComfortLevel, tolerance.Overall, w)
	tags := profileTags(q, tolerance)

	derived := &models.DerivedProfile{
		RiskTolerance:    tolerance,
		AlertThresholds:  thresholds,
		ExplanationStyle: style,
		ProfileTags:      tags,
		WeightsVersion:   w.Version,
	}
	if err := checkInvariants(derived); err != nil {
		return nil, err
	}
	return derived, nil
}

// privacyTolerance mixes stated privacy posture with observed privacy
// behavior (tool adoption, sensitive data ranking).
func privacyTolerance(q *models.QuizResponse, w *Weights) float64 {
	pw := w.Privacy
	fw := pw.FieldWeights

	importance := pw.OverallImportance[q.RiskPreferences.Privacy.OverallImportance]
	sharing := pw.DataSharingComfort[q.RiskPreferences.Privacy.DataSharingComfort]
	tools := toolScore(q.Demographics.TechSophistication.PrivacyToolsUsed, pw.ToolBuckets)
	sensitive := sensitiveDataScore(q.DigitalBehavior.SensitiveDataTypes)

	return fw["overallImportance"]*importance +
		fw["dataSharingComfort"]*sharing +
		fw["privacyTools"]*tools +
		fw["sensitiveData"]*sensitive
}

func financialTolerance(q *models.QuizResponse, w *Weights) float64 {
	fin := q.RiskPreferences.Financial
	fw := w.Financial.FieldWeights
	return fw["paymentApproach"]*w.Financial.PaymentApproach[fin.PaymentApproach] +
		fw["feeSensitivity"]*w.Financial.FeeSensitivity[fin.FeeSensitivity] +
		fw["autoRenewalComfort"]*w.Financial.AutoRenewalComfort[fin.AutoRenewalComfort]
}

func legalTolerance(q *models.QuizResponse, w *Weights) float64 {
	leg := q.RiskPreferences.Legal
	fw := w.Legal.FieldWeights
	return fw["arbitrationComfort"]*w.Legal.ArbitrationComfort[leg.ArbitrationComfort] +
		fw["liabilityWaiverApproach"]*w.Legal.LiabilityWaiverApproach[leg.LiabilityWaiverApproach] +
		fw["classActionImportance"]*w.Legal.ClassActionImportance[leg.ClassActionImportance]
}

// toolScore buckets distinct privacy tools in use. "none" entries do not
// count as a tool.
func toolScore(tools []models.PrivacyTool, buckets ToolBuckets) float64 {
	distinct := make(map[models.PrivacyTool]struct{}, len(tools))
	for _, t := range tools {
		if t != models.ToolNone {
			distinct[t] = struct{}{}
		}
	}
	switch n := len(distinct); {
	case n == 0:
		return buckets.None
	case n <= 2:
		return buckets.Light
	default:
		return buckets.Heavy
	}
}

// sensitiveDataScore inverts the mean priority of the top-ranked sensitive
// data entries: the more the user prioritizes protecting data, the lower the
// privacy tolerance contribution. Ties and duplicate dataTypes are fine; the
// sort is stabilized on dataType so the result stays deterministic.
func sensitiveDataScore(entries []models.SensitiveDataEntry) float64 {
	if len(entries) == 0 {
		return (scoreMax + scoreMin) / 2
	}
	sorted := make([]models.SensitiveDataEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].PriorityLevel != sorted[j].PriorityLevel {
			return sorted[i].PriorityLevel > sorted[j].PriorityLevel
		}
		return sorted[i].DataType < sorted[j].DataType
	})
	n := min(sensitiveTopN, len(sorted))
	var sum float64
	for _, e := range sorted[:n] {
		sum += float64(e.PriorityLevel)
	}
	mean := sum / float64(n)
	return clamp(float64(models.MaxPriorityLevel+1) - mean)
}

// alertThresholds derives per-category alert cut-offs from tolerance. A lower
// tolerance produces a lower (stricter) threshold; interruption timing and the
// alert budget then shift all thresholds together.
func alertThresholds(t models.RiskTolerance, prefs models.AlertPreferences, w *Weights) models.AlertThresholds {
	tw := w.Thresholds
	shift := tw.TimingAdjustments[prefs.InterruptionTiming] + frequencyDelta(prefs.AlertFrequencyLimit, tw)

	derive := func(base float64) float64 {
		return round2(clamp(base*tw.ToleranceScale + shift))
	}
	termBase := tw.TerminationMix*t.Legal + (1-tw.TerminationMix)*t.Overall
	return models.AlertThresholds{
		Privacy:     derive(t.Privacy),
		Liability:   derive(t.Legal),
		Termination: derive(termBase),
		Payment:     derive(t.Financial),
		Overall:     derive(t.Overall),
	}
}

func frequencyDelta(limit int, tw ThresholdWeights) float64 {
	for _, band := range tw.FrequencyBands {
		if limit <= band.MaxLimit {
			return band.Delta
		}
	}
	return tw.OverflowDelta
}

// chooseStyle picks the explanation style from tech comfort x overall
// tolerance. The table prefers the more protective style on boundaries: a
// score exactly at LowToleranceMax is still "low".
func chooseStyle(comfort models.ComfortLevel, overall float64, w *Weights) models.ExplanationStyle {
	var tolBucket int // 0 low, 1 mid, 2 high
	switch {
	case overall <= w.Style.LowToleranceMax:
		tolBucket = 0
	case overall >= w.Style.HighToleranceMin:
		tolBucket = 2
	default:
		tolBucket = 1
	}

	var comfortBucket int // 0 low, 1 mid, 2 high
	switch comfort {
	case models.ComfortBeginner, models.ComfortBasic:
		comfortBucket = 0
	case models.ComfortIntermediate:
		comfortBucket = 1
	case models.ComfortAdvanced, models.ComfortExpert:
		comfortBucket = 2
	}

	// Rows are comfort (low, mid, high); columns are tolerance (low, mid, high).
	table := [3][3]models.ExplanationStyle{
		{models.StyleSimpleProtective, models.StyleSimpleProtective, models.StyleBalancedPractical},
		{models.StyleComprehensiveCautious, models.StyleBalancedPractical, models.StyleBalancedPractical},
		{models.StyleComprehensiveCautious, models.StyleBalancedPractical, models.StyleTechnicalEfficient},
	}
	return table[comfortBucket][tolBucket]
}

// profileTags applies predicate rules over answers and derived tolerances.
// The result is sorted and duplicate-free so recomputation from the same
// input is byte-identical.
func profileTags(q *models.QuizResponse, t models.RiskTolerance) []string {
	set := make(map[string]struct{})
	add := func(tag string) { set[tag] = struct{}{} }

	for _, c := range q.ContextualFactors.SpecialCircumstances {
		switch c {
		case models.CircumstanceElderlyVulnerable:
			add("enhanced-protection")
		case models.CircumstanceSmallBusinessOwner:
			add("business-user")
		case models.CircumstanceContentCreator:
			add("creator")
		case models.CircumstanceFrequentTraveler:
			add("traveler")
		case models.CircumstancePublicFigure:
			add("public-profile")
		case models.CircumstanceHandlesClientData:
			add("data-steward")
		}
	}
	if q.ContextualFactors.DependentStatus != models.DependentsNone {
		add("guardian")
	}
	if q.ContextualFactors.AlertPreferences.LearningMode {
		add("adaptive-alerts")
	}
	if len(q.Demographics.Jurisdiction.MultipleJurisdictions) > 0 {
		add("multi-jurisdiction")
	}
	switch q.Demographics.TechSophistication.ComfortLevel {
	case models.ComfortAdvanced, models.ComfortExpert:
		add("tech-savvy")
	}
	switch q.DigitalBehavior.UsagePatterns.AccountCreationFrequency {
	case models.AccountsWeekly, models.AccountsDaily:
		add("high-exposure")
	}
	if t.Privacy <= 3 {
		add("privacy-first")
	}
	if t.Financial <= 3 {
		add("cost-guarded")
	}
	if t.Legal <= 3 {
		add("litigation-aware")
	}

	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// checkInvariants guards against weight table bugs: any score outside [0,10]
// means the table produced something the downstream engine cannot interpret.
func checkInvariants(d *models.DerivedProfile) error {
	scores := map[string]float64{
		"riskTolerance.privacy":       d.RiskTolerance.Privacy,
		"riskTolerance.financial":     d.RiskTolerance.Financial,
		"riskTolerance.legal":         d.RiskTolerance.Legal,
		"riskTolerance.overall":       d.RiskTolerance.Overall,
		"alertThresholds.privacy":     d.AlertThresholds.Privacy,
		"alertThresholds.liability":   d.AlertThresholds.Liability,
		"alertThresholds.termination": d.AlertThresholds.Termination,
		"alertThresholds.payment":     d.AlertThresholds.Payment,
		"alertThresholds.overall":     d.AlertThresholds.Overall,
	}
	for name, score := range scores {
		if score < scoreMin || score > scoreMax {
			return dErrors.New(dErrors.CodeInvariantViolation,
				fmt.Sprintf("derived score %s out of range: %.2f", name, score))
		}
	}
	if !d.ExplanationStyle.IsValid() {
		return dErrors.New(dErrors.CodeInvariantViolation, "derived explanation style is not a known style")
	}
	return nil
}

func clamp(v float64) float64 {
	if v < scoreMin {
		return scoreMin
	}
	if v > scoreMax {
		return scoreMax
	}
	return v
}

// round2 keeps scores stable across platforms; two decimals is plenty of
// resolution for threshold comparison.
func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
