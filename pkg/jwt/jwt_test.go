package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/pkg/jwt"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("user-1", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("user-1", "seller", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("user-1", "seller", time.Hour)
	require.NoError(t, err)

	_, err = jwt.ValidateToken(token + "x")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := jwt.GenerateToken("user-1", "seller", time.Hour)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	token, err := jwt.GenerateToken("user-1", "financial", time.Hour)
	require.NoError(t, err)

	refreshed, err := jwt.RefreshToken(token)
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(refreshed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "financial", claims.Role)
}
