package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateTokenStringToUUID(t *testing.T) {
	userID := uuid.New()

	tokenString := signToken(t, jwt.MapClaims{
		"user_id": userID.String(),
		"name":    "Alice",
		"email":   "alice@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}, testSecret)

	user, err := ValidateTokenStringToUUID(tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestValidateTokenStringToUUID_BearerPrefix(t *testing.T) {
	userID := uuid.New()
	tokenString := signToken(t, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	user, err := ValidateTokenStringToUUID("Bearer "+tokenString, testSecret)
	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestValidateTokenStringToUUID_Errors(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}, testSecret)

	wrongSecret := signToken(t, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	badUserID := signToken(t, jwt.MapClaims{
		"user_id": "not-a-uuid",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}, testSecret)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{"empty", "", ErrMissingToken},
		{"garbage", "not.a.token", ErrInvalidToken},
		{"expired", expired, ErrExpiredToken},
		{"wrong_secret", wrongSecret, ErrInvalidToken},
		{"bad_user_id", badUserID, ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateTokenStringToUUID(tt.token, testSecret)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"valid", "Bearer abc123", "abc123"},
		{"empty", "", ""},
		{"no_bearer", "abc123", ""},
		{"wrong_scheme", "Basic abc123", ""},
		{"too_many_parts", "Bearer abc 123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTokenFromHeader(tt.header))
		})
	}
}
