// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"madrasahku_backend/internals/configs"
)

const (
	AccessTokenTTL  = 2 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// CreateAccessToken menerbitkan access JWT.
// Klaim sengaja minim: sub + user_name. Role TIDAK ikut di token supaya
// perubahan role langsung efektif (resolusi per request dari user_roles).
func CreateAccessToken(userID uuid.UUID, userName string) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":       userID.String(),
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// CreateRefreshToken menerbitkan refresh JWT dengan secret terpisah
func CreateRefreshToken(userID uuid.UUID) (string, error) {
	if configs.JWTRefreshSecret == "" {
		return "", errors.New("JWT_REFRESH_SECRET belum diset")
	}
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID.String(),
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTRefreshSecret))
}

// ParseRefreshToken memvalidasi refresh JWT dan mengembalikan user id
func ParseRefreshToken(raw string) (uuid.UUID, error) {
	if configs.JWTRefreshSecret == "" {
		return uuid.Nil, errors.New("JWT_REFRESH_SECRET belum diset")
	}
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("refresh token invalid")
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}
