// file: internals/features/users/auth/service/token_service_test.go
package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"madrasahku_backend/internals/configs"
)

func withTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestAccessTokenCarriesMinimalClaims(t *testing.T) {
	withTestSecrets(t)
	userID := uuid.New()

	raw, err := CreateAccessToken(userID, "ahmad")
	require.NoError(t, err)

	tok, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["sub"])
	assert.Equal(t, "ahmad", claims["user_name"])

	// role sengaja TIDAK ada di token: otorisasi selalu resolve dari DB
	_, hasRole := claims["role"]
	assert.False(t, hasRole)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	withTestSecrets(t)
	userID := uuid.New()

	raw, err := CreateRefreshToken(userID)
	require.NoError(t, err)

	got, err := ParseRefreshToken(raw)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRefreshTokenRejectsWrongSecret(t *testing.T) {
	withTestSecrets(t)

	raw, err := CreateAccessToken(uuid.New(), "ahmad")
	require.NoError(t, err)

	// access token (secret berbeda) tidak boleh lolos sebagai refresh
	_, err = ParseRefreshToken(raw)
	assert.Error(t, err)
}

func TestTokenCreationRequiresSecret(t *testing.T) {
	withTestSecrets(t)
	configs.JWTSecret = ""
	configs.JWTRefreshSecret = ""

	_, err := CreateAccessToken(uuid.New(), "x")
	assert.Error(t, err)
	_, err = CreateRefreshToken(uuid.New())
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("rahasia-banget")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-banget", hash)

	assert.True(t, CheckPassword(hash, "rahasia-banget"))
	assert.False(t, CheckPassword(hash, "salah"))
}
