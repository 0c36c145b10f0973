package domain

import "fmt"

// CountryCode is an ISO 3166-1 alpha-2 code: exactly two uppercase ASCII letters.
// The compiler validates shape only; whether the code is assigned is left to
// the jurisdiction data downstream.
type CountryCode string

// ParseCountryCode validates and returns a CountryCode.
func ParseCountryCode(s string) (CountryCode, error) {
	if len(s) != 2 || s[0] < 'A' || s[0] > 'Z' || s[1] < 'A' || s[1] > 'Z' {
		return "", fmt.Errorf("country code must be exactly two uppercase letters, got %q", s)
	}
	return CountryCode(s), nil
}

// String returns the string representation of the country code.
func (c CountryCode) String() string { return string(c) }
