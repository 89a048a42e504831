package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"confku_backend/internals/configs"
	helper "confku_backend/internals/helpers"
)

// TokenClaims: isi token yang dipakai lintas layer (sub = user id).
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// GenerateAccessToken: HS256, klaim type=access.
func GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	return generateToken(userID, role, "access", configs.JWTSecret, configs.AccessTokenTTL)
}

// GenerateRefreshToken: HS256 dengan secret terpisah, klaim type=refresh.
func GenerateRefreshToken(userID uuid.UUID, role string) (string, error) {
	return generateToken(userID, role, "refresh", configs.JWTRefreshSecret, configs.RefreshTokenTTL)
}

func generateToken(userID uuid.UUID, role, tokenType, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseRefreshToken: verifikasi signature + klaim type=refresh; semua
// kegagalan dilipat jadi Unauthorized "Invalid token".
func ParseRefreshToken(tokenString string) (*TokenClaims, error) {
	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(configs.JWTRefreshSecret), nil
	}); err != nil {
		return nil, helper.Unauthorized("Invalid token")
	}

	if typ, _ := claims["type"].(string); typ != "refresh" {
		return nil, helper.Unauthorized("Invalid token")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, helper.Unauthorized("Invalid token")
	}

	role, _ := claims["role"].(string)
	return &TokenClaims{UserID: userID, Role: role}, nil
}
