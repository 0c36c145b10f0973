package compiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"clauseguard/internal/profile/models"
)

// Weights is the full derivation rule table. Every categorical answer maps to
// a contribution on the 0..10 tolerance scale (10 = maximally risk-tolerant),
// and per-axis field weights say how much each answer counts. The table is
// process-wide read-only configuration: loaded once at startup, never mutated
// per request, and versioned so behavior changes are auditable alongside the
// quiz schema version.
type Weights struct {
	Version    string           `yaml:"version"`
	Privacy    PrivacyWeights   `yaml:"privacy"`
	Financial  FinancialWeights `yaml:"financial"`
	Legal      LegalWeights     `yaml:"legal"`
	Overall    OverallWeights   `yaml:"overall"`
	Thresholds ThresholdWeights `yaml:"thresholds"`
	Style      StyleWeights     `yaml:"style"`
}

// PrivacyWeights drives the privacy tolerance axis.
type PrivacyWeights struct {
	OverallImportance  map[models.ImportanceLevel]float64    `yaml:"overallImportance"`
	DataSharingComfort map[models.DataSharingComfort]float64 `yaml:"dataSharingComfort"`
	// Privacy tool usage is bucketed by how many distinct tools are in use;
	// heavier tooling signals a privacy-conscious user, hence a lower score.
	ToolBuckets  ToolBuckets  `yaml:"toolBuckets"`
	FieldWeights FieldWeights `yaml:"fieldWeights"`
}

// ToolBuckets scores privacy tool adoption: none, one or two, three or more.
type ToolBuckets struct {
	None  float64 `yaml:"none"`
	Light float64 `yaml:"light"`
	Heavy float64 `yaml:"heavy"`
}

// FieldWeights are the per-field mixing weights for one axis; they must sum to 1.
type FieldWeights map[string]float64

// FinancialWeights drives the financial tolerance axis.
type FinancialWeights struct {
	PaymentApproach    map[models.PaymentApproach]float64    `yaml:"paymentApproach"`
	FeeSensitivity     map[models.FeeSensitivity]float64     `yaml:"feeSensitivity"`
	AutoRenewalComfort map[models.AutoRenewalComfort]float64 `yaml:"autoRenewalComfort"`
	FieldWeights       FieldWeights                          `yaml:"fieldWeights"`
}

// LegalWeights drives the legal tolerance axis.
type LegalWeights struct {
	ArbitrationComfort      map[models.ArbitrationComfort]float64      `yaml:"arbitrationComfort"`
	LiabilityWaiverApproach map[models.LiabilityWaiverApproach]float64 `yaml:"liabilityWaiverApproach"`
	ClassActionImportance   map[models.ClassActionImportance]float64   `yaml:"classActionImportance"`
	FieldWeights            FieldWeights                               `yaml:"fieldWeights"`
}

// FactorAdjustment shifts one tolerance axis when its decision factor is
// ranked in the user's top priorities.
type FactorAdjustment struct {
	Axis  string  `yaml:"axis"` // privacy | financial | legal | overall
	Delta float64 `yaml:"delta"`
}

// OverallWeights mixes the three axes into the overall score and applies
// contextual modifiers.
type OverallWeights struct {
	AxisWeights           FieldWeights                               `yaml:"axisWeights"`
	DependentModifiers    map[models.DependentStatus]float64         `yaml:"dependentModifiers"`
	CircumstanceModifiers map[models.SpecialCircumstance]float64     `yaml:"circumstanceModifiers"`
	TopFactorAdjustments  map[models.DecisionFactor]FactorAdjustment `yaml:"topFactorAdjustments"`
	TopFactorRankCutoff   int                                        `yaml:"topFactorRankCutoff"`
}

// FrequencyBand raises or lowers thresholds based on the user's alert budget:
// a tight budget means only the worst findings should fire, so the threshold
// goes up.
type FrequencyBand struct {
	MaxLimit int     `yaml:"maxLimit"`
	Delta    float64 `yaml:"delta"`
}

// ThresholdWeights derives alert thresholds from tolerances. Thresholds scale
// down from tolerance (lower tolerance, stricter alerting) and shift with the
// user's interruption preferences.
type ThresholdWeights struct {
	// TerminationMix is the share of legal vs overall tolerance in the
	// termination base. OverflowDelta applies above the last frequency band.
	ToleranceScale    float64                               `yaml:"toleranceScale"`
	TerminationMix    float64                               `yaml:"terminationMix"`
	TimingAdjustments map[models.InterruptionTiming]float64 `yaml:"timingAdjustments"`
	FrequencyBands    []FrequencyBand                       `yaml:"frequencyBands"`
	OverflowDelta     float64                               `yaml:"overflowDelta"`
}

// StyleWeights holds the tolerance bucket boundaries for explanation style
// selection. The comfort x tolerance decision table itself is fixed in code
// (see chooseStyle) so it stays exhaustive over the enum.
type StyleWeights struct {
	LowToleranceMax  float64 `yaml:"lowToleranceMax"`
	HighToleranceMin float64 `yaml:"highToleranceMin"`
}

// DefaultWeights returns the compiled-in rule table, version-stamped "1.0".
// weights.yaml in the repository root mirrors these values; Load falls back
// here when no file is configured.
func DefaultWeights() *Weights {
	return &Weights{
		Version: "1.0",
		Privacy: PrivacyWeights{
			OverallImportance: map[models.ImportanceLevel]float64{
				models.ImportanceNot:       9,
				models.ImportanceSomewhat:  6,
				models.ImportanceVery:      3,
				models.ImportanceExtremely: 1,
			},
			DataSharingComfort: map[models.DataSharingComfort]float64{
				models.SharingComfortable:       9,
				models.SharingNeutral:           6,
				models.SharingUncomfortable:     3,
				models.SharingVeryUncomfortable: 1,
			},
			ToolBuckets: ToolBuckets{None: 8, Light: 5, Heavy: 2},
			FieldWeights: FieldWeights{
				"overallImportance":  0.40,
				"dataSharingComfort": 0.30,
				"privacyTools":       0.15,
				"sensitiveData":      0.15,
			},
		},
		Financial: FinancialWeights{
			PaymentApproach: map[models.PaymentApproach]float64{
				models.PaymentRelaxed:      9,
				models.PaymentStandard:     6,
				models.PaymentCautious:     3,
				models.PaymentVeryCautious: 1,
			},
			FeeSensitivity: map[models.FeeSensitivity]float64{
				models.FeesNegligible:  9,
				models.FeesNoticeable:  6,
				models.FeesSignificant: 3,
				models.FeesSevere:      1,
			},
			AutoRenewalComfort: map[models.AutoRenewalComfort]float64{
				models.RenewalFine:           8,
				models.RenewalPreferReminder: 5,
				models.RenewalWantApproval:   2,
			},
			FieldWeights: FieldWeights{
				"paymentApproach":    0.50,
				"feeSensitivity":     0.30,
				"autoRenewalComfort": 0.20,
			},
		},
		Legal: LegalWeights{
			ArbitrationComfort: map[models.ArbitrationComfort]float64{
				models.ArbitrationFullyComfortable:    9,
				models.ArbitrationSomewhatComfortable: 6.5,
				models.ArbitrationSomewhatConcerned:   3.5,
				models.ArbitrationPreferCourts:        1,
			},
			LiabilityWaiverApproach: map[models.LiabilityWaiverApproach]float64{
				models.WaiverAccept:       8,
				models.WaiverSkim:         6,
				models.WaiverReadCareful:  3,
				models.WaiverRefuseUnfair: 1,
			},
			ClassActionImportance: map[models.ClassActionImportance]float64{
				models.ClassActionNotImportant:      9,
				models.ClassActionSomewhatImportant: 6,
				models.ClassActionVeryImportant:     3,
				models.ClassActionEssential:         1,
			},
			FieldWeights: FieldWeights{
				"arbitrationComfort":      0.50,
				"liabilityWaiverApproach": 0.30,
				"classActionImportance":   0.20,
			},
		},
		Overall: OverallWeights{
			AxisWeights: FieldWeights{
				"privacy":   0.35,
				"financial": 0.30,
				"legal":     0.35,
			},
			DependentModifiers: map[models.DependentStatus]float64{
				models.DependentsNone:     0,
				models.DependentsChildren: -0.5,
				models.DependentsElderly:  -0.75,
				models.DependentsBoth:     -1.0,
			},
			CircumstanceModifiers: map[models.SpecialCircumstance]float64{
				models.CircumstanceNone:               0,
				models.CircumstanceElderlyVulnerable:  -1.5,
				models.CircumstancePublicFigure:       -0.5,
				models.CircumstanceHandlesClientData:  -0.5,
				models.CircumstanceSmallBusinessOwner: -0.25,
				models.CircumstanceContentCreator:     -0.25,
				models.CircumstanceFrequentTraveler:   -0.25,
			},
			TopFactorAdjustments: map[models.DecisionFactor]FactorAdjustment{
				models.FactorPrivacyProtection:  {Axis: "privacy", Delta: -0.75},
				models.FactorDataControl:        {Axis: "privacy", Delta: -0.5},
				models.FactorCostValue:          {Axis: "financial", Delta: -0.75},
				models.FactorFlexibilityToLeave: {Axis: "financial", Delta: -0.25},
				models.FactorLegalRecourse:      {Axis: "legal", Delta: -0.75},
				models.FactorTransparency:       {Axis: "legal", Delta: -0.25},
				models.FactorConvenienceSpeed:   {Axis: "overall", Delta: 0.5},
			},
			TopFactorRankCutoff: 3,
		},
		Thresholds: ThresholdWeights{
			ToleranceScale: 0.9,
			TerminationMix: 0.5,
			TimingAdjustments: map[models.InterruptionTiming]float64{
				models.InterruptImmediate:     -1.0,
				models.InterruptDailyDigest:   -0.5,
				models.InterruptWeeklySummary: 0.5,
				models.InterruptOnlyCritical:  1.5,
			},
			FrequencyBands: []FrequencyBand{
				{MaxLimit: 5, Delta: 1.0},
				{MaxLimit: 15, Delta: 0.5},
				{MaxLimit: 30, Delta: 0},
			},
			OverflowDelta: -0.5,
		},
		Style: StyleWeights{
			LowToleranceMax:  3.5,
			HighToleranceMin: 6.5,
		},
	}
}

// Load reads a weight table from a YAML file. An empty path returns the
// compiled-in defaults. Loaded tables are validated for completeness so a
// partial override cannot silently zero out a contribution.
func Load(path string) (*Weights, error) {
	if path == "" {
		return DefaultWeights(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read weights file: %w", err)
	}
	var w Weights
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse weights file: %w", err)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("weights file %s: %w", path, err)
	}
	return &w, nil
}

// Validate checks the table is complete: every enum value has an entry and
// every field-weight set sums to 1. A hole in the table would make derivation
// silently treat an answer as zero, which is the bug class DerivationInvariant
// errors exist to catch, so it is rejected at load time instead.
func (w *Weights) Validate() error {
	if w.Version == "" {
		return fmt.Errorf("weights version is required")
	}
	if err := coversAll(w.Privacy.OverallImportance, "privacy.overallImportance",
		models.ImportanceNot, models.ImportanceSomewhat, models.ImportanceVery, models.ImportanceExtremely); err != nil {
		return err
	}
	if err := coversAll(w.Privacy.DataSharingComfort, "privacy.dataSharingComfort",
		models.SharingComfortable, models.SharingNeutral, models.SharingUncomfortable, models.SharingVeryUncomfortable); err != nil {
		return err
	}
	if err := coversAll(w.Financial.PaymentApproach, "financial.paymentApproach",
		models.PaymentRelaxed, models.PaymentStandard, models.PaymentCautious, models.PaymentVeryCautious); err != nil {
		return err
	}
	if err := coversAll(w.Financial.FeeSensitivity, "financial.feeSensitivity",
		models.FeesNegligible, models.FeesNoticeable, models.FeesSignificant, models.FeesSevere); err != nil {
		return err
	}
	if err := coversAll(w.Financial.AutoRenewalComfort, "financial.autoRenewalComfort",
		models.RenewalFine, models.RenewalPreferReminder, models.RenewalWantApproval); err != nil {
		return err
	}
	if err := coversAll(w.Legal.ArbitrationComfort, "legal.arbitrationComfort",
		models.ArbitrationFullyComfortable, models.ArbitrationSomewhatComfortable,
		models.ArbitrationSomewhatConcerned, models.ArbitrationPreferCourts); err != nil {
		return err
	}
	if err := coversAll(w.Legal.LiabilityWaiverApproach, "legal.liabilityWaiverApproach",
		models.WaiverAccept, models.WaiverSkim, models.WaiverReadCareful, models.WaiverRefuseUnfair); err != nil {
		return err
	}
	if err := coversAll(w.Legal.ClassActionImportance, "legal.classActionImportance",
		models.ClassActionNotImportant, models.ClassActionSomewhatImportant,
		models.ClassActionVeryImportant, models.ClassActionEssential); err != nil {
		return err
	}
	if err := coversAll(w.Overall.DependentModifiers, "overall.dependentModifiers",
		models.DependentsNone, models.DependentsChildren, models.DependentsElderly, models.DependentsBoth); err != nil {
		return err
	}
	if err := coversAll(w.Thresholds.TimingAdjustments, "thresholds.timingAdjustments",
		models.InterruptImmediate, models.InterruptDailyDigest,
		models.InterruptWeeklySummary, models.InterruptOnlyCritical); err != nil {
		return err
	}
	for _, fw := range []struct {
		name    string
		weights FieldWeights
	}{
		{"privacy.fieldWeights", w.Privacy.FieldWeights},
		{"financial.fieldWeights", w.Financial.FieldWeights},
		{"legal.fieldWeights", w.Legal.FieldWeights},
		{"overall.axisWeights", w.Overall.AxisWeights},
	} {
		if err := sumsToOne(fw.weights, fw.name); err != nil {
			return err
		}
	}
	if w.Overall.TopFactorRankCutoff < 1 || w.Overall.TopFactorRankCutoff > models.MaxDecisionPriority {
		return fmt.Errorf("overall.topFactorRankCutoff out of range")
	}
	if w.Thresholds.ToleranceScale <= 0 || w.Thresholds.ToleranceScale > 1 {
		return fmt.Errorf("thresholds.toleranceScale must be in (0,1]")
	}
	if w.Style.LowToleranceMax >= w.Style.HighToleranceMin {
		return fmt.Errorf("style bucket boundaries overlap")
	}
	return nil
}

func coversAll[K comparable](table map[K]float64, name string, keys ...K) error {
	for _, k := range keys {
		if _, ok := table[k]; !ok {
			return fmt.Errorf("%s: missing entry for %v", name, k)
		}
	}
	return nil
}

func sumsToOne(fw FieldWeights, name string) error {
	var sum float64
	for _, v := range fw {
		sum += v
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("%s must sum to 1, got %.3f", name, sum)
	}
	return nil
}
