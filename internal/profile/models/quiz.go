package models

import (
	"time"
)

// Schema bounds enforced by the validator. Kept as named constants so the
// limits read the same in validation code, tests, and error messages.
const (
	MinPrimaryActivities = 1
	MaxPrimaryActivities = 5

	MinSensitiveDataEntries = 1
	MaxSensitiveDataEntries = 20
	MinPriorityLevel        = 1
	MaxPriorityLevel        = 10

	DecisionPriorityCount = 9
	MinDecisionPriority   = 1
	MaxDecisionPriority   = 9

	MinAlertFrequencyLimit = 1
	MaxAlertFrequencyLimit = 50
)

// QuizResponse is the raw self-report questionnaire as submitted. Sections are
// pointers so the validator can distinguish a missing section from an empty one.
//
// Invariants (enforced by compiler.ValidateQuiz, not by construction):
//   - every enumerated field belongs to its closed value set
//   - ranked lists respect their length and range bounds
//   - DecisionMakingPriorities covers all nine factors exactly once
type QuizResponse struct {
	Version           string             `json:"version,omitempty"`
	UserID            string             `json:"userId"`
	CompletedAt       time.Time          `json:"completedAt"`
	Demographics      *Demographics      `json:"demographics"`
	DigitalBehavior   *DigitalBehavior   `json:"digitalBehavior"`
	RiskPreferences   *RiskPreferences   `json:"riskPreferences"`
	ContextualFactors *ContextualFactors `json:"contextualFactors"`
}

// Demographics covers who the respondent is and where they are subject to law.
type Demographics struct {
	AgeRange           AgeRange           `json:"ageRange"`
	OccupationCategory OccupationCategory `json:"occupationCategory"`
	TechSophistication TechSophistication `json:"techSophistication"`
	Jurisdiction       Jurisdiction       `json:"jurisdiction"`
}

// TechSophistication captures self-assessed comfort plus the privacy tools in use.
type TechSophistication struct {
	ComfortLevel     ComfortLevel  `json:"comfortLevel"`
	PrivacyToolsUsed []PrivacyTool `json:"privacyToolsUsed"`
}

// Jurisdiction captures the primary legal venue plus any additional ones.
type Jurisdiction struct {
	PrimaryCountry        string   `json:"primaryCountry"`
	MultipleJurisdictions []string `json:"multipleJurisdictions,omitempty"`
}

// DigitalBehavior covers what the respondent does online and which data they
// consider sensitive.
type DigitalBehavior struct {
	UsagePatterns      UsagePatterns        `json:"usagePatterns"`
	SensitiveDataTypes []SensitiveDataEntry `json:"sensitiveDataTypes"`
}

// UsagePatterns captures the dominant online activities.
type UsagePatterns struct {
	PrimaryActivities        []PrimaryActivity        `json:"primaryActivities"`
	AccountCreationFrequency AccountCreationFrequency `json:"accountCreationFrequency"`
}

// SensitiveDataEntry ranks one data category. The schema intentionally allows
// duplicate DataType values and tied PriorityLevels (see ValidateQuiz).
type SensitiveDataEntry struct {
	DataType      SensitiveDataType `json:"dataType"`
	PriorityLevel int               `json:"priorityLevel"`
}

// RiskPreferences covers the respondent's stated tolerance per risk axis plus
// the full ranking of decision-making factors.
type RiskPreferences struct {
	Privacy                  PrivacyPreferences      `json:"privacy"`
	Financial                FinancialPreferences    `json:"financial"`
	Legal                    LegalPreferences        `json:"legal"`
	DecisionMakingPriorities []DecisionPriorityEntry `json:"decisionMakingPriorities"`
}

// PrivacyPreferences captures stated privacy posture.
type PrivacyPreferences struct {
	OverallImportance  ImportanceLevel    `json:"overallImportance"`
	DataSharingComfort DataSharingComfort `json:"dataSharingComfort"`
}

// FinancialPreferences captures stated financial caution.
type FinancialPreferences struct {
	PaymentApproach    PaymentApproach    `json:"paymentApproach"`
	FeeSensitivity     FeeSensitivity     `json:"feeSensitivity"`
	AutoRenewalComfort AutoRenewalComfort `json:"autoRenewalComfort"`
}

// LegalPreferences captures stated appetite for legal exposure.
type LegalPreferences struct {
	ArbitrationComfort      ArbitrationComfort      `json:"arbitrationComfort"`
	LiabilityWaiverApproach LiabilityWaiverApproach `json:"liabilityWaiverApproach"`
	ClassActionImportance   ClassActionImportance   `json:"classActionImportance"`
}

// DecisionPriorityEntry ranks one decision factor, 1 = most important.
type DecisionPriorityEntry struct {
	Factor   DecisionFactor `json:"factor"`
	Priority int            `json:"priority"`
}

// ContextualFactors covers life circumstances and alerting preferences.
type ContextualFactors struct {
	DependentStatus      DependentStatus       `json:"dependentStatus"`
	SpecialCircumstances []SpecialCircumstance `json:"specialCircumstances"`
	AlertPreferences     AlertPreferences      `json:"alertPreferences"`
}

// AlertPreferences tunes how and how often the analysis engine may alert.
type AlertPreferences struct {
	InterruptionTiming  InterruptionTiming `json:"interruptionTiming"`
	AlertFrequencyLimit int                `json:"alertFrequencyLimit"`
	LearningMode        bool               `json:"learningMode"`
}
