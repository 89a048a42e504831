package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confku_backend/internals/configs"
	helper "confku_backend/internals/helpers"
)

func setupSecrets(t *testing.T) {
	t.Helper()
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	configs.AccessTokenTTL = 15 * time.Minute
	configs.RefreshTokenTTL = 7 * 24 * time.Hour
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setupSecrets(t)

	userID := uuid.New()
	token, err := GenerateRefreshToken(userID, "ADMIN_ICICYTA")
	require.NoError(t, err)

	claims, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "ADMIN_ICICYTA", claims.Role)
}

func TestParseRefreshTokenRejectsAccessToken(t *testing.T) {
	setupSecrets(t)
	// access token ditandatangani secret lain dan bertipe access
	token, err := GenerateAccessToken(uuid.New(), "SUPER_ADMIN")
	require.NoError(t, err)

	_, err = ParseRefreshToken(token)
	require.Error(t, err)

	var apiErr *helper.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)
	assert.Equal(t, "Invalid token", apiErr.Message)
}

func TestParseRefreshTokenRejectsGarbage(t *testing.T) {
	setupSecrets(t)

	_, err := ParseRefreshToken("not-a-token")
	require.Error(t, err)
}

func TestParseRefreshTokenRejectsTamperedSignature(t *testing.T) {
	setupSecrets(t)

	token, err := GenerateRefreshToken(uuid.New(), "SUPER_ADMIN")
	require.NoError(t, err)

	configs.JWTRefreshSecret = "rotated-secret"
	_, err = ParseRefreshToken(token)
	require.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("Sup3rSecret!")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret!", hashed)

	assert.True(t, MatchPassword("Sup3rSecret!", hashed))
	assert.False(t, MatchPassword("wrong-password", hashed))
}
