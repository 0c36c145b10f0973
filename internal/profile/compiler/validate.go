// Package compiler implements the personalization profile compiler: schema
// validation of quiz documents, the derivation engine that turns answers into
// comparable scores, whole-section reconciliation, and final profile assembly.
//
// Everything here is a pure function over immutable inputs. No I/O, no clocks,
// no randomness; identical input always yields identical output.
package compiler

import (
	"bytes"
	"encoding/json"
	"fmt"

	id "clauseguard/pkg/domain"
	dErrors "clauseguard/pkg/domain-errors"

	"clauseguard/internal/profile/models"
)

// violations accumulates schema violations so a single validation pass reports
// every problem, never just the first.
type violations struct {
	fields []dErrors.FieldViolation
}

func (v *violations) add(field, format string, args ...any) {
	v.fields = append(v.fields, dErrors.FieldViolation{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *violations) err(context string) error {
	if len(v.fields) == 0 {
		return nil
	}
	return dErrors.NewValidation(context, v.fields)
}

// ValidateQuiz checks a full QuizResponse against the schema. The version is
// checked first: a document from an unknown schema revision is rejected
// outright (CodeVersionMismatch) because its field catalog cannot be trusted.
// Everything else is accumulated into one CodeValidation error.
//
// Validation is idempotent: running it again over an already-valid document is
// a no-op that reports nothing.
func ValidateQuiz(q *models.QuizResponse) error {
	if q == nil {
		return dErrors.New(dErrors.CodeBadRequest, "quiz response is required")
	}
	if _, err := id.ParseSchemaVersion(q.Version); err != nil {
		return dErrors.Wrap(err, dErrors.CodeVersionMismatch, "unsupported quiz schema version")
	}

	var v violations
	if _, err := id.ParseUserID(q.UserID); err != nil {
		v.add("userId", "must be a UUID or an email address")
	}
	if q.CompletedAt.IsZero() {
		v.add("completedAt", "is required")
	}

	if q.Demographics == nil {
		v.add("demographics", "section is required")
	} else {
		validateDemographics(q.Demographics, &v)
	}
	if q.DigitalBehavior == nil {
		v.add("digitalBehavior", "section is required")
	} else {
		validateDigitalBehavior(q.DigitalBehavior, &v)
	}
	if q.RiskPreferences == nil {
		v.add("riskPreferences", "section is required")
	} else {
		validateRiskPreferences(q.RiskPreferences, &v)
	}
	if q.ContextualFactors == nil {
		v.add("contextualFactors", "section is required")
	} else {
		validateContextualFactors(q.ContextualFactors, &v)
	}

	return v.err("quiz response failed schema validation")
}

// DecodeSection strictly decodes raw JSON into the named section's struct.
// Unknown fields are rejected at this boundary so a partial update cannot
// smuggle unrecognized keys into the stored document.
func DecodeSection(section id.QuizSection, raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var (
		target any
		err    error
	)
	switch section {
	case id.SectionDemographics:
		var s models.Demographics
		err, target = dec.Decode(&s), &s
	case id.SectionDigitalBehavior:
		var s models.DigitalBehavior
		err, target = dec.Decode(&s), &s
	case id.SectionRiskPreferences:
		var s models.RiskPreferences
		err, target = dec.Decode(&s), &s
	case id.SectionContextualFactors:
		var s models.ContextualFactors
		err, target = dec.Decode(&s), &s
	default:
		return nil, dErrors.New(dErrors.CodeUnknownSection, "unknown quiz section: "+section.String())
	}
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeBadRequest, "malformed "+section.String()+" payload")
	}
	return target, nil
}

// ValidateSection validates one decoded section in isolation, as used by
// partial updates. The decoded value must come from DecodeSection.
func ValidateSection(section id.QuizSection, decoded any) error {
	var v violations
	switch s := decoded.(type) {
	case *models.Demographics:
		validateDemographics(s, &v)
	case *models.DigitalBehavior:
		validateDigitalBehavior(s, &v)
	case *models.RiskPreferences:
		validateRiskPreferences(s, &v)
	case *models.ContextualFactors:
		validateContextualFactors(s, &v)
	default:
		return dErrors.New(dErrors.CodeUnknownSection, "unknown quiz section: "+section.String())
	}
	return v.err(section.String() + " failed schema validation")
}

func validateDemographics(d *models.Demographics, v *violations) {
	if !d.AgeRange.IsValid() {
		v.add("demographics.ageRange", "unknown value %q", d.AgeRange)
	}
	if !d.OccupationCategory.IsValid() {
		v.add("demographics.occupationCategory", "unknown value %q", d.OccupationCategory)
	}
	if !d.TechSophistication.ComfortLevel.IsValid() {
		v.add("demographics.techSophistication.comfortLevel", "unknown value %q", d.TechSophistication.ComfortLevel)
	}
	for i, tool := range d.TechSophistication.PrivacyToolsUsed {
		if !tool.IsValid() {
			v.add(fmt.Sprintf("demographics.techSophistication.privacyToolsUsed[%d]", i), "unknown value %q", tool)
		}
	}
	if _, err := id.ParseCountryCode(d.Jurisdiction.PrimaryCountry); err != nil {
		v.add("demographics.jurisdiction.primaryCountry", "must be exactly two uppercase letters")
	}
	for i, c := range d.Jurisdiction.MultipleJurisdictions {
		if _, err := id.ParseCountryCode(c); err != nil {
			v.add(fmt.Sprintf("demographics.jurisdiction.multipleJurisdictions[%d]", i), "must be exactly two uppercase letters")
		}
	}
}

func validateDigitalBehavior(d *models.DigitalBehavior, v *violations) {
	activities := d.UsagePatterns.PrimaryActivities
	if len(activities) < models.MinPrimaryActivities || len(activities) > models.MaxPrimaryActivities {
		v.add("digitalBehavior.usagePatterns.primaryActivities",
			"must contain between %d and %d entries, got %d",
			models.MinPrimaryActivities, models.MaxPrimaryActivities, len(activities))
	}
	seen := make(map[models.PrimaryActivity]struct{}, len(activities))
	for i, a := range activities {
		if !a.IsValid() {
			v.add(fmt.Sprintf("digitalBehavior.usagePatterns.primaryActivities[%d]", i), "unknown value %q", a)
			continue
		}
		if _, dup := seen[a]; dup {
			v.add(fmt.Sprintf("digitalBehavior.usagePatterns.primaryActivities[%d]", i), "duplicate value %q", a)
		}
		seen[a] = struct{}{}
	}
	if !d.UsagePatterns.AccountCreationFrequency.IsValid() {
		v.add("digitalBehavior.usagePatterns.accountCreationFrequency", "unknown value %q", d.UsagePatterns.AccountCreationFrequency)
	}

	entries := d.SensitiveDataTypes
	if len(entries) < models.MinSensitiveDataEntries || len(entries) > models.MaxSensitiveDataEntries {
		v.add("digitalBehavior.sensitiveDataTypes",
			"must contain between %d and %d entries, got %d",
			models.MinSensitiveDataEntries, models.MaxSensitiveDataEntries, len(entries))
	}
	// Duplicate dataType values and tied priorityLevels are allowed: the
	// published schema never constrained them and downstream derivation copes
	// with ties, so the lenient reading is preserved.
	for i, e := range entries {
		if !e.DataType.IsValid() {
			v.add(fmt.Sprintf("digitalBehavior.sensitiveDataTypes[%d].dataType", i), "unknown value %q", e.DataType)
		}
		if e.PriorityLevel < models.MinPriorityLevel || e.PriorityLevel > models.MaxPriorityLevel {
			v.add(fmt.Sprintf("digitalBehavior.sensitiveDataTypes[%d].priorityLevel", i),
				"must be between %d and %d, got %d", models.MinPriorityLevel, models.MaxPriorityLevel, e.PriorityLevel)
		}
	}
}

func validateRiskPreferences(r *models.RiskPreferences, v *violations) {
	if !r.Privacy.OverallImportance.IsValid() {
		v.add("riskPreferences.privacy.overallImportance", "unknown value %q", r.Privacy.OverallImportance)
	}
	if !r.Privacy.DataSharingComfort.IsValid() {
		v.add("riskPreferences.privacy.dataSharingComfort", "unknown value %q", r.Privacy.DataSharingComfort)
	}
	if !r.Financial.PaymentApproach.IsValid() {
		v.add("riskPreferences.financial.paymentApproach", "unknown value %q", r.Financial.PaymentApproach)
	}
	if !r.Financial.FeeSensitivity.IsValid() {
		v.add("riskPreferences.financial.feeSensitivity", "unknown value %q", r.Financial.FeeSensitivity)
	}
	if !r.Financial.AutoRenewalComfort.IsValid() {
		v.add("riskPreferences.financial.autoRenewalComfort", "unknown value %q", r.Financial.AutoRenewalComfort)
	}
	if !r.Legal.ArbitrationComfort.IsValid() {
		v.add("riskPreferences.legal.arbitrationComfort", "unknown value %q", r.Legal.ArbitrationComfort)
	}
	if !r.Legal.LiabilityWaiverApproach.IsValid() {
		v.add("riskPreferences.legal.liabilityWaiverApproach", "unknown value %q", r.Legal.LiabilityWaiverApproach)
	}
	if !r.Legal.ClassActionImportance.IsValid() {
		v.add("riskPreferences.legal.classActionImportance", "unknown value %q", r.Legal.ClassActionImportance)
	}

	priorities := r.DecisionMakingPriorities
	if len(priorities) != models.DecisionPriorityCount {
		v.add("riskPreferences.decisionMakingPriorities",
			"must contain exactly %d entries, one per decision factor, got %d",
			models.DecisionPriorityCount, len(priorities))
	}
	seen := make(map[models.DecisionFactor]struct{}, len(priorities))
	for i, p := range priorities {
		if !p.Factor.IsValid() {
			v.add(fmt.Sprintf("riskPreferences.decisionMakingPriorities[%d].factor", i), "unknown value %q", p.Factor)
			continue
		}
		if _, dup := seen[p.Factor]; dup {
			v.add(fmt.Sprintf("riskPreferences.decisionMakingPriorities[%d].factor", i), "duplicate factor %q", p.Factor)
		}
		seen[p.Factor] = struct{}{}
		if p.Priority < models.MinDecisionPriority || p.Priority > models.MaxDecisionPriority {
			v.add(fmt.Sprintf("riskPreferences.decisionMakingPriorities[%d].priority", i),
				"must be between %d and %d, got %d", models.MinDecisionPriority, models.MaxDecisionPriority, p.Priority)
		}
	}
	if len(priorities) == models.DecisionPriorityCount && len(seen) < len(models.DecisionFactors) {
		for _, factor := range models.DecisionFactors {
			if _, ok := seen[factor]; !ok {
				v.add("riskPreferences.decisionMakingPriorities", "missing factor %q", factor)
			}
		}
	}
}

func validateContextualFactors(c *models.ContextualFactors, v *violations) {
	if !c.DependentStatus.IsValid() {
		v.add("contextualFactors.dependentStatus", "unknown value %q", c.DependentStatus)
	}
	for i, s := range c.SpecialCircumstances {
		if !s.IsValid() {
			v.add(fmt.Sprintf("contextualFactors.specialCircumstances[%d]", i), "unknown value %q", s)
		}
	}
	if !c.AlertPreferences.InterruptionTiming.IsValid() {
		v.add("contextualFactors.alertPreferences.interruptionTiming", "unknown value %q", c.AlertPreferences.InterruptionTiming)
	}
	limit := c.AlertPreferences.AlertFrequencyLimit
	if limit < models.MinAlertFrequencyLimit || limit > models.MaxAlertFrequencyLimit {
		v.add("contextualFactors.alertPreferences.alertFrequencyLimit",
			"must be between %d and %d, got %d", models.MinAlertFrequencyLimit, models.MaxAlertFrequencyLimit, limit)
	}
}
