package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "clauseguard/pkg/domain-errors"
)

// UserID identifies a profile owner. The quiz flow accepts either a UUID
// (extension installs before sign-up) or an email address (signed-in users),
// so the ID is validated but never re-derived.
type UserID string

// ParseUserID validates and returns a UserID.
// Accepts a canonical UUID or an RFC-shaped email address; rejects anything else.
func ParseUserID(s string) (UserID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "userId must not be empty")
	}
	if id, err := uuid.Parse(s); err == nil {
		if id == uuid.Nil {
			return "", dErrors.New(dErrors.CodeInvalidInput, "userId must not be the nil UUID")
		}
		return UserID(id.String()), nil
	}
	if isEmail(s) {
		return UserID(strings.ToLower(s)), nil
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "userId must be a UUID or an email address")
}

// isEmail applies the same shape check the quiz frontend applies: exactly one
// "@" with a dotted, non-empty domain. Full RFC 5322 parsing is deliberately
// out of scope; the mail service is the authority on deliverability.
func isEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at != strings.LastIndexByte(s, '@') {
		return false
	}
	local, dom := s[:at], s[at+1:]
	if len(local) > 64 || len(dom) > 255 {
		return false
	}
	dot := strings.LastIndexByte(dom, '.')
	if dot <= 0 || dot == len(dom)-1 {
		return false
	}
	return !strings.ContainsAny(s, " \t\r\n")
}

// String returns the string representation of the user ID.
func (u UserID) String() string { return string(u) }

// IsNil returns true if the user ID is empty.
func (u UserID) IsNil() bool { return u == "" }
