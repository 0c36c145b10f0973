package models

// Closed value sets for every categorical quiz field. Each enum is a string
// type with an IsValid check so the validator can enumerate violations and the
// derivation tables get compile-time exhaustiveness from the typed keys.

// AgeRange buckets the respondent's age.
type AgeRange string

const (
	Age18To24 AgeRange = "18_24"
	Age25To34 AgeRange = "25_34"
	Age35To44 AgeRange = "35_44"
	Age45To54 AgeRange = "45_54"
	Age55To64 AgeRange = "55_64"
	Age65Plus AgeRange = "65_plus"
)

var validAgeRanges = map[AgeRange]struct{}{
	Age18To24: {}, Age25To34: {}, Age35To44: {}, Age45To54: {}, Age55To64: {}, Age65Plus: {},
}

func (a AgeRange) IsValid() bool { _, ok := validAgeRanges[a]; return ok }

// OccupationCategory is a coarse occupation bucket.
type OccupationCategory string

const (
	OccupationTechnology OccupationCategory = "technology"
	OccupationHealthcare OccupationCategory = "healthcare"
	OccupationFinance    OccupationCategory = "finance"
	OccupationLegal      OccupationCategory = "legal"
	OccupationEducation  OccupationCategory = "education"
	OccupationCreative   OccupationCategory = "creative"
	OccupationTrades     OccupationCategory = "trades"
	OccupationStudent    OccupationCategory = "student"
	OccupationRetired    OccupationCategory = "retired"
	OccupationOther      OccupationCategory = "other"
)

var validOccupations = map[OccupationCategory]struct{}{
	OccupationTechnology: {}, OccupationHealthcare: {}, OccupationFinance: {},
	OccupationLegal: {}, OccupationEducation: {}, OccupationCreative: {},
	OccupationTrades: {}, OccupationStudent: {}, OccupationRetired: {}, OccupationOther: {},
}

func (o OccupationCategory) IsValid() bool { _, ok := validOccupations[o]; return ok }

// ComfortLevel is the respondent's self-assessed technical comfort.
type ComfortLevel string

const (
	ComfortBeginner     ComfortLevel = "beginner"
	ComfortBasic        ComfortLevel = "basic"
	ComfortIntermediate ComfortLevel = "intermediate"
	ComfortAdvanced     ComfortLevel = "advanced"
	ComfortExpert       ComfortLevel = "expert"
)

var validComfortLevels = map[ComfortLevel]struct{}{
	ComfortBeginner: {}, ComfortBasic: {}, ComfortIntermediate: {},
	ComfortAdvanced: {}, ComfortExpert: {},
}

func (c ComfortLevel) IsValid() bool { _, ok := validComfortLevels[c]; return ok }

// PrivacyTool is a privacy tool the respondent already uses.
type PrivacyTool string

const (
	ToolVPN                PrivacyTool = "vpn"
	ToolPasswordManager    PrivacyTool = "password_manager"
	ToolAdBlocker          PrivacyTool = "ad_blocker"
	ToolEncryptedMessaging PrivacyTool = "encrypted_messaging"
	ToolPrivacyBrowser     PrivacyTool = "privacy_browser"
	ToolNone               PrivacyTool = "none"
)

var validPrivacyTools = map[PrivacyTool]struct{}{
	ToolVPN: {}, ToolPasswordManager: {}, ToolAdBlocker: {},
	ToolEncryptedMessaging: {}, ToolPrivacyBrowser: {}, ToolNone: {},
}

func (p PrivacyTool) IsValid() bool { _, ok := validPrivacyTools[p]; return ok }

// PrimaryActivity is an online activity category.
type PrimaryActivity string

const (
	ActivitySocialMedia    PrimaryActivity = "social_media"
	ActivityOnlineShopping PrimaryActivity = "online_shopping"
	ActivityBankingFinance PrimaryActivity = "banking_finance"
	ActivityWork           PrimaryActivity = "work_productivity"
	ActivityStreaming      PrimaryActivity = "entertainment_streaming"
	ActivityGaming         PrimaryActivity = "gaming"
	ActivityResearch       PrimaryActivity = "research_education"
	ActivityCloudStorage   PrimaryActivity = "cloud_storage"
)

var validPrimaryActivities = map[PrimaryActivity]struct{}{
	ActivitySocialMedia: {}, ActivityOnlineShopping: {}, ActivityBankingFinance: {},
	ActivityWork: {}, ActivityStreaming: {}, ActivityGaming: {},
	ActivityResearch: {}, ActivityCloudStorage: {},
}

func (p PrimaryActivity) IsValid() bool { _, ok := validPrimaryActivities[p]; return ok }

// AccountCreationFrequency captures how often new service accounts appear.
type AccountCreationFrequency string

const (
	AccountsRarely  AccountCreationFrequency = "rarely"
	AccountsMonthly AccountCreationFrequency = "monthly"
	AccountsWeekly  AccountCreationFrequency = "weekly"
	AccountsDaily   AccountCreationFrequency = "daily"
)

var validAccountFrequencies = map[AccountCreationFrequency]struct{}{
	AccountsRarely: {}, AccountsMonthly: {}, AccountsWeekly: {}, AccountsDaily: {},
}

func (a AccountCreationFrequency) IsValid() bool { _, ok := validAccountFrequencies[a]; return ok }

// SensitiveDataType names a category of personal data.
type SensitiveDataType string

const (
	DataFinancialDetails  SensitiveDataType = "financial_details"
	DataHealthRecords     SensitiveDataType = "health_records"
	DataBiometric         SensitiveDataType = "biometric_data"
	DataLocationHistory   SensitiveDataType = "location_history"
	DataBrowsingHistory   SensitiveDataType = "browsing_history"
	DataCommunications    SensitiveDataType = "personal_communications"
	DataGovernmentID      SensitiveDataType = "government_id"
	DataFamilyInformation SensitiveDataType = "family_information"
	DataEmploymentRecords SensitiveDataType = "employment_records"
	DataPurchaseHistory   SensitiveDataType = "purchase_history"
)

var validSensitiveDataTypes = map[SensitiveDataType]struct{}{
	DataFinancialDetails: {}, DataHealthRecords: {}, DataBiometric: {},
	DataLocationHistory: {}, DataBrowsingHistory: {}, DataCommunications: {},
	DataGovernmentID: {}, DataFamilyInformation: {}, DataEmploymentRecords: {},
	DataPurchaseHistory: {},
}

func (s SensitiveDataType) IsValid() bool { _, ok := validSensitiveDataTypes[s]; return ok }

// ImportanceLevel is the shared not/somewhat/very/extremely scale.
type ImportanceLevel string

const (
	ImportanceNot       ImportanceLevel = "not_important"
	ImportanceSomewhat  ImportanceLevel = "somewhat_important"
	ImportanceVery      ImportanceLevel = "very_important"
	ImportanceExtremely ImportanceLevel = "extremely_important"
)

var validImportanceLevels = map[ImportanceLevel]struct{}{
	ImportanceNot: {}, ImportanceSomewhat: {}, ImportanceVery: {}, ImportanceExtremely: {},
}

func (i ImportanceLevel) IsValid() bool { _, ok := validImportanceLevels[i]; return ok }

// DataSharingComfort captures comfort with services sharing personal data.
type DataSharingComfort string

const (
	SharingComfortable       DataSharingComfort = "comfortable"
	SharingNeutral           DataSharingComfort = "neutral"
	SharingUncomfortable     DataSharingComfort = "uncomfortable"
	SharingVeryUncomfortable DataSharingComfort = "very_uncomfortable"
)

var validDataSharingComforts = map[DataSharingComfort]struct{}{
	SharingComfortable: {}, SharingNeutral: {}, SharingUncomfortable: {}, SharingVeryUncomfortable: {},
}

func (d DataSharingComfort) IsValid() bool { _, ok := validDataSharingComforts[d]; return ok }

// PaymentApproach captures attitude toward stored payment methods and charges.
type PaymentApproach string

const (
	PaymentRelaxed      PaymentApproach = "relaxed"
	PaymentStandard     PaymentApproach = "standard"
	PaymentCautious     PaymentApproach = "cautious"
	PaymentVeryCautious PaymentApproach = "very_cautious"
)

var validPaymentApproaches = map[PaymentApproach]struct{}{
	PaymentRelaxed: {}, PaymentStandard: {}, PaymentCautious: {}, PaymentVeryCautious: {},
}

func (p PaymentApproach) IsValid() bool { _, ok := validPaymentApproaches[p]; return ok }

// FeeSensitivity captures how much unexpected fees matter.
type FeeSensitivity string

const (
	FeesNegligible  FeeSensitivity = "negligible"
	FeesNoticeable  FeeSensitivity = "noticeable"
	FeesSignificant FeeSensitivity = "significant"
	FeesSevere      FeeSensitivity = "severe"
)

var validFeeSensitivities = map[FeeSensitivity]struct{}{
	FeesNegligible: {}, FeesNoticeable: {}, FeesSignificant: {}, FeesSevere: {},
}

func (f FeeSensitivity) IsValid() bool { _, ok := validFeeSensitivities[f]; return ok }

// AutoRenewalComfort captures attitude toward automatic subscription renewal.
type AutoRenewalComfort string

const (
	RenewalFine           AutoRenewalComfort = "fine"
	RenewalPreferReminder AutoRenewalComfort = "prefer_reminder"
	RenewalWantApproval   AutoRenewalComfort = "want_approval"
)

var validAutoRenewalComforts = map[AutoRenewalComfort]struct{}{
	RenewalFine: {}, RenewalPreferReminder: {}, RenewalWantApproval: {},
}

func (a AutoRenewalComfort) IsValid() bool { _, ok := validAutoRenewalComforts[a]; return ok }

// ArbitrationComfort captures comfort with mandatory arbitration clauses.
type ArbitrationComfort string

const (
	ArbitrationFullyComfortable    ArbitrationComfort = "fully_comfortable"
	ArbitrationSomewhatComfortable ArbitrationComfort = "somewhat_comfortable"
	ArbitrationSomewhatConcerned   ArbitrationComfort = "somewhat_concerned"
	ArbitrationPreferCourts        ArbitrationComfort = "strongly_prefer_courts"
)

var validArbitrationComforts = map[ArbitrationComfort]struct{}{
	ArbitrationFullyComfortable: {}, ArbitrationSomewhatComfortable: {},
	ArbitrationSomewhatConcerned: {}, ArbitrationPreferCourts: {},
}

func (a ArbitrationComfort) IsValid() bool { _, ok := validArbitrationComforts[a]; return ok }

// LiabilityWaiverApproach captures how liability waivers are handled.
type LiabilityWaiverApproach string

const (
	WaiverAccept       LiabilityWaiverApproach = "accept"
	WaiverSkim         LiabilityWaiverApproach = "skim"
	WaiverReadCareful  LiabilityWaiverApproach = "read_carefully"
	WaiverRefuseUnfair LiabilityWaiverApproach = "refuse_unfair"
)

var validWaiverApproaches = map[LiabilityWaiverApproach]struct{}{
	WaiverAccept: {}, WaiverSkim: {}, WaiverReadCareful: {}, WaiverRefuseUnfair: {},
}

func (l LiabilityWaiverApproach) IsValid() bool { _, ok := validWaiverApproaches[l]; return ok }

// ClassActionImportance captures how much class-action rights matter.
type ClassActionImportance string

const (
	ClassActionNotImportant      ClassActionImportance = "not_important"
	ClassActionSomewhatImportant ClassActionImportance = "somewhat_important"
	ClassActionVeryImportant     ClassActionImportance = "very_important"
	ClassActionEssential         ClassActionImportance = "essential"
)

var validClassActionImportances = map[ClassActionImportance]struct{}{
	ClassActionNotImportant: {}, ClassActionSomewhatImportant: {},
	ClassActionVeryImportant: {}, ClassActionEssential: {},
}

func (c ClassActionImportance) IsValid() bool { _, ok := validClassActionImportances[c]; return ok }

// DecisionFactor names one of the nine ranked decision-making factors.
// Every submission ranks all nine, exactly once each.
type DecisionFactor string

const (
	FactorPrivacyProtection  DecisionFactor = "privacy_protection"
	FactorCostValue          DecisionFactor = "cost_value"
	FactorConvenienceSpeed   DecisionFactor = "convenience_speed"
	FactorDataControl        DecisionFactor = "data_control"
	FactorLegalRecourse      DecisionFactor = "legal_recourse"
	FactorServiceReliability DecisionFactor = "service_reliability"
	FactorTransparency       DecisionFactor = "transparency"
	FactorFlexibilityToLeave DecisionFactor = "flexibility_to_leave"
	FactorCommunityRep       DecisionFactor = "community_reputation"
)

// DecisionFactors lists all nine factors; DecisionMakingPriorities must cover
// this set exactly.
var DecisionFactors = []DecisionFactor{
	FactorPrivacyProtection, FactorCostValue, FactorConvenienceSpeed,
	FactorDataControl, FactorLegalRecourse, FactorServiceReliability,
	FactorTransparency, FactorFlexibilityToLeave, FactorCommunityRep,
}

var validDecisionFactors = map[DecisionFactor]struct{}{
	FactorPrivacyProtection: {}, FactorCostValue: {}, FactorConvenienceSpeed: {},
	FactorDataControl: {}, FactorLegalRecourse: {}, FactorServiceReliability: {},
	FactorTransparency: {}, FactorFlexibilityToLeave: {}, FactorCommunityRep: {},
}

func (d DecisionFactor) IsValid() bool { _, ok := validDecisionFactors[d]; return ok }

// DependentStatus captures who else is affected by the respondent's agreements.
type DependentStatus string

const (
	DependentsNone     DependentStatus = "none"
	DependentsChildren DependentStatus = "children"
	DependentsElderly  DependentStatus = "elderly_dependents"
	DependentsBoth     DependentStatus = "both"
)

var validDependentStatuses = map[DependentStatus]struct{}{
	DependentsNone: {}, DependentsChildren: {}, DependentsElderly: {}, DependentsBoth: {},
}

func (d DependentStatus) IsValid() bool { _, ok := validDependentStatuses[d]; return ok }

// SpecialCircumstance flags a situation warranting adjusted protection.
type SpecialCircumstance string

const (
	CircumstanceNone               SpecialCircumstance = "none"
	CircumstanceElderlyVulnerable  SpecialCircumstance = "elderly_or_vulnerable"
	CircumstanceSmallBusinessOwner SpecialCircumstance = "small_business_owner"
	CircumstanceContentCreator     SpecialCircumstance = "content_creator"
	CircumstanceFrequentTraveler   SpecialCircumstance = "frequent_traveler"
	CircumstancePublicFigure       SpecialCircumstance = "public_figure"
	CircumstanceHandlesClientData  SpecialCircumstance = "handles_client_data"
)

var validSpecialCircumstances = map[SpecialCircumstance]struct{}{
	CircumstanceNone: {}, CircumstanceElderlyVulnerable: {}, CircumstanceSmallBusinessOwner: {},
	CircumstanceContentCreator: {}, CircumstanceFrequentTraveler: {},
	CircumstancePublicFigure: {}, CircumstanceHandlesClientData: {},
}

func (s SpecialCircumstance) IsValid() bool { _, ok := validSpecialCircumstances[s]; return ok }

// InterruptionTiming captures when alerts may interrupt the user.
type InterruptionTiming string

const (
	InterruptImmediate     InterruptionTiming = "immediate"
	InterruptDailyDigest   InterruptionTiming = "daily_digest"
	InterruptWeeklySummary InterruptionTiming = "weekly_summary"
	InterruptOnlyCritical  InterruptionTiming = "only_critical"
)

var validInterruptionTimings = map[InterruptionTiming]struct{}{
	InterruptImmediate: {}, InterruptDailyDigest: {}, InterruptWeeklySummary: {}, InterruptOnlyCritical: {},
}

func (i InterruptionTiming) IsValid() bool { _, ok := validInterruptionTimings[i]; return ok }

// ExplanationStyle labels the tone and depth of downstream risk explanations.
// Derived, never submitted.
type ExplanationStyle string

const (
	StyleSimpleProtective      ExplanationStyle = "simple_protective"
	StyleComprehensiveCautious ExplanationStyle = "comprehensive_cautious"
	StyleBalancedPractical     ExplanationStyle = "balanced_practical"
	StyleTechnicalEfficient    ExplanationStyle = "technical_efficient"
)

var validExplanationStyles = map[ExplanationStyle]struct{}{
	StyleSimpleProtective: {}, StyleComprehensiveCautious: {},
	StyleBalancedPractical: {}, StyleTechnicalEfficient: {},
}

func (e ExplanationStyle) IsValid() bool { _, ok := validExplanationStyles[e]; return ok }
