package compiler

import (
	"time"

	"clauseguard/internal/profile/models"
)

// cautiousQuiz is a respondent who wants maximum protection on every axis.
func cautiousQuiz() *models.QuizResponse {
	return &models.QuizResponse{
		Version:     "1.0",
		UserID:      "550e8400-e29b-41d4-a716-446655440000",
		CompletedAt: time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		Demographics: &models.Demographics{
			AgeRange:           models.Age65Plus,
			OccupationCategory: models.OccupationRetired,
			TechSophistication: models.TechSophistication{
				ComfortLevel:     models.ComfortBasic,
				PrivacyToolsUsed: []models.PrivacyTool{models.ToolVPN, models.ToolPasswordManager, models.ToolAdBlocker},
			},
			Jurisdiction: models.Jurisdiction{PrimaryCountry: "US"},
		},
		DigitalBehavior: &models.DigitalBehavior{
			UsagePatterns: models.UsagePatterns{
				PrimaryActivities:        []models.PrimaryActivity{models.ActivityBankingFinance},
				AccountCreationFrequency: models.AccountsRarely,
			},
			SensitiveDataTypes: []models.SensitiveDataEntry{
				{DataType: models.DataFinancialDetails, PriorityLevel: 10},
				{DataType: models.DataHealthRecords, PriorityLevel: 9},
				{DataType: models.DataGovernmentID, PriorityLevel: 9},
			},
		},
		RiskPreferences: &models.RiskPreferences{
			Privacy: models.PrivacyPreferences{
				OverallImportance:  models.ImportanceExtremely,
				DataSharingComfort: models.SharingVeryUncomfortable,
			},
			Financial: models.FinancialPreferences{
				PaymentApproach:    models.PaymentVeryCautious,
				FeeSensitivity:     models.FeesSevere,
				AutoRenewalComfort: models.RenewalWantApproval,
			},
			Legal: models.LegalPreferences{
				ArbitrationComfort:      models.ArbitrationPreferCourts,
				LiabilityWaiverApproach: models.WaiverRefuseUnfair,
				ClassActionImportance:   models.ClassActionEssential,
			},
			DecisionMakingPriorities: []models.DecisionPriorityEntry{
				{Factor: models.FactorPrivacyProtection, Priority: 1},
				{Factor: models.FactorLegalRecourse, Priority: 2},
				{Factor: models.FactorCostValue, Priority: 3},
				{Factor: models.FactorDataControl, Priority: 4},
				{Factor: models.FactorTransparency, Priority: 5},
				{Factor: models.FactorServiceReliability, Priority: 6},
				{Factor: models.FactorFlexibilityToLeave, Priority: 7},
				{Factor: models.FactorConvenienceSpeed, Priority: 8},
				{Factor: models.FactorCommunityRep, Priority: 9},
			},
		},
		ContextualFactors: &models.ContextualFactors{
			DependentStatus:      models.DependentsNone,
			SpecialCircumstances: []models.SpecialCircumstance{},
			AlertPreferences: models.AlertPreferences{
				InterruptionTiming:  models.InterruptImmediate,
				AlertFrequencyLimit: 10,
				LearningMode:        true,
			},
		},
	}
}

// relaxedQuiz is a respondent comfortable with risk everywhere.
func relaxedQuiz() *models.QuizResponse {
	return &models.QuizResponse{
		Version:     "1.0",
		UserID:      "dev@example.com",
		CompletedAt: time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC),
		Demographics: &models.Demographics{
			AgeRange:           models.Age25To34,
			OccupationCategory: models.OccupationTechnology,
			TechSophistication: models.TechSophistication{
				ComfortLevel:     models.ComfortExpert,
				PrivacyToolsUsed: []models.PrivacyTool{models.ToolNone},
			},
			Jurisdiction: models.Jurisdiction{PrimaryCountry: "DE"},
		},
		DigitalBehavior: &models.DigitalBehavior{
			UsagePatterns: models.UsagePatterns{
				PrimaryActivities: []models.PrimaryActivity{
					models.ActivitySocialMedia, models.ActivityGaming, models.ActivityStreaming,
				},
				AccountCreationFrequency: models.AccountsDaily,
			},
			SensitiveDataTypes: []models.SensitiveDataEntry{
				{DataType: models.DataBrowsingHistory, PriorityLevel: 2},
			},
		},
		RiskPreferences: &models.RiskPreferences{
			Privacy: models.PrivacyPreferences{
				OverallImportance:  models.ImportanceNot,
				DataSharingComfort: models.SharingComfortable,
			},
			Financial: models.FinancialPreferences{
				PaymentApproach:    models.PaymentRelaxed,
				FeeSensitivity:     models.FeesNegligible,
				AutoRenewalComfort: models.RenewalFine,
			},
			Legal: models.LegalPreferences{
				ArbitrationComfort:      models.ArbitrationFullyComfortable,
				LiabilityWaiverApproach: models.WaiverAccept,
				ClassActionImportance:   models.ClassActionNotImportant,
			},
			DecisionMakingPriorities: []models.DecisionPriorityEntry{
				{Factor: models.FactorConvenienceSpeed, Priority: 1},
				{Factor: models.FactorServiceReliability, Priority: 2},
				{Factor: models.FactorCommunityRep, Priority: 3},
				{Factor: models.FactorCostValue, Priority: 4},
				{Factor: models.FactorFlexibilityToLeave, Priority: 5},
				{Factor: models.FactorTransparency, Priority: 6},
				{Factor: models.FactorDataControl, Priority: 7},
				{Factor: models.FactorPrivacyProtection, Priority: 8},
				{Factor: models.FactorLegalRecourse, Priority: 9},
			},
		},
		ContextualFactors: &models.ContextualFactors{
			DependentStatus:      models.DependentsNone,
			SpecialCircumstances: []models.SpecialCircumstance{models.CircumstanceNone},
			AlertPreferences: models.AlertPreferences{
				InterruptionTiming:  models.InterruptOnlyCritical,
				AlertFrequencyLimit: 50,
				LearningMode:        false,
			},
		},
	}
}

// guardianQuiz is a moderate respondent with dependents and special
// circumstances, exercising the contextual modifiers and tag predicates.
func guardianQuiz() *models.QuizResponse {
	q := relaxedQuiz()
	q.UserID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	q.Demographics.TechSophistication.ComfortLevel = models.ComfortIntermediate
	q.Demographics.Jurisdiction.MultipleJurisdictions = []string{"FR", "GB"}
	q.RiskPreferences.Privacy.OverallImportance = models.ImportanceSomewhat
	q.RiskPreferences.Financial.PaymentApproach = models.PaymentStandard
	q.RiskPreferences.Legal.ArbitrationComfort = models.ArbitrationSomewhatComfortable
	q.ContextualFactors.DependentStatus = models.DependentsChildren
	q.ContextualFactors.SpecialCircumstances = []models.SpecialCircumstance{
		models.CircumstanceElderlyVulnerable,
		models.CircumstanceHandlesClientData,
	}
	return q
}
