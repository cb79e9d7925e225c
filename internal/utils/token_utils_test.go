package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("u1", "secret-key", time.Hour, "vidverse-test")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "vidverse-test", claims.Issuer)
}

func TestParseAndValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("u1", "secret-key", time.Hour, "vidverse-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "another-secret")
	assert.Error(t, err)
}

func TestParseAndValidateJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("u1", "secret-key", -time.Minute, "vidverse-test")
	require.NoError(t, err)

	_, err = ParseAndValidateJWT(token, "secret-key")
	assert.Error(t, err)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPasswordHash("secret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
