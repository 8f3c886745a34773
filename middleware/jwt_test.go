package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)

	userID, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyTokenGarbage(t *testing.T) {
	_, err := VerifyToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyTokenExpired(t *testing.T) {
	// Issued 25 hours ago, past the 24 hour validity window
	issued := time.Now().Add(-25 * time.Hour)
	claims := jwt.MapClaims{
		"userId": 42,
		"iat":    issued.Unix(),
		"exp":    issued.Add(tokenValidity).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrCredentialExpired)
}

func TestVerifyTokenWrongAlgorithm(t *testing.T) {
	// alg "none" style tokens must never verify
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"userId": 42}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}

func TestVerifyTokenMissingUserID(t *testing.T) {
	claims := jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidCredential)
}
