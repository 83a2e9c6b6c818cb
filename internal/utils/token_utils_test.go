package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/cashclose_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func TestSessionJWT_RoundTrip(t *testing.T) {
	token, expiresAt, err := utils.GenerateSessionJWT("admin", testSecret, time.Hour, "cashclose-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseSessionJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "cashclose-test", claims.Issuer)
}

func TestSessionJWT_WrongSecret(t *testing.T) {
	token, _, err := utils.GenerateSessionJWT("staff", testSecret, time.Hour, "cashclose-test")
	require.NoError(t, err)

	_, err = utils.ParseSessionJWT(token, "another-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestSessionJWT_Expired(t *testing.T) {
	token, _, err := utils.GenerateSessionJWT("staff", testSecret, -time.Minute, "cashclose-test")
	require.NoError(t, err)

	_, err = utils.ParseSessionJWT(token, testSecret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSecretHash(t *testing.T) {
	hash, err := utils.HashSecret("venda")
	require.NoError(t, err)
	assert.True(t, utils.CheckSecretHash("venda", hash))
	assert.False(t, utils.CheckSecretHash("Venda", hash))
}
