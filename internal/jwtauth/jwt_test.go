package jwtauth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "clauseguard/pkg/domain-errors"
)

const signingKey = "test-signing-key"

var verifier = NewVerifier(signingKey)

func mintToken(t *testing.T, key string, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return token
}

func TestValidateToken_Valid(t *testing.T) {
	token := mintToken(t, signingKey, "550e8400-e29b-41d4-a716-446655440000", time.Hour)

	claims, err := verifier.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", claims.UserID)
}

func TestValidateToken_Expired(t *testing.T) {
	token := mintToken(t, signingKey, "user@example.com", -time.Hour)

	_, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
	assert.Contains(t, err.Error(), "token has expired")
}

func TestValidateToken_WrongKey(t *testing.T) {
	token := mintToken(t, "some-other-key", "user@example.com", time.Hour)

	_, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateToken_WrongAlgorithm(t *testing.T) {
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateToken_EmptySubject(t *testing.T) {
	token := mintToken(t, signingKey, "", time.Hour)

	_, err := verifier.ValidateToken(token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token claims")
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := verifier.ValidateToken("not-a-jwt")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}
