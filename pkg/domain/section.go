package domain

import dErrors "clauseguard/pkg/domain-errors"

// QuizSection names one of the four top-level quiz sections. Partial updates
// replace exactly one section wholesale; field-level patches do not exist.
type QuizSection string

const (
	SectionDemographics      QuizSection = "demographics"
	SectionDigitalBehavior   QuizSection = "digitalBehavior"
	SectionRiskPreferences   QuizSection = "riskPreferences"
	SectionContextualFactors QuizSection = "contextualFactors"
)

// Sections lists every quiz section in document order.
var Sections = []QuizSection{
	SectionDemographics,
	SectionDigitalBehavior,
	SectionRiskPreferences,
	SectionContextualFactors,
}

// ParseQuizSection validates a section name from an untrusted path segment.
func ParseQuizSection(s string) (QuizSection, error) {
	sec := QuizSection(s)
	for _, known := range Sections {
		if sec == known {
			return sec, nil
		}
	}
	return "", dErrors.New(dErrors.CodeUnknownSection, "unknown quiz section: "+s)
}

// String returns the string representation of the section name.
func (s QuizSection) String() string { return string(s) }
