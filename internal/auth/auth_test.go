package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("senha-secreta")
	assert.NoError(t, err)
	assert.NotEqual(t, "senha-secreta", hash)
	assert.True(t, CheckPasswordHash("senha-secreta", hash))
	assert.False(t, CheckPasswordHash("senha-errada", hash))
}

func TestHashPassword_DifferentSalts(t *testing.T) {
	h1, err := HashPassword("mesma-senha")
	assert.NoError(t, err)
	h2, err := HashPassword("mesma-senha")
	assert.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("curta"))
	assert.NoError(t, ValidatePassword("senha-longa-o-bastante"))
}

func TestGenerateAndParseToken(t *testing.T) {
	Init("test-secret-key", 60)

	token, err := GenerateToken(42, "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "admin", claims.Profile)
}

func TestParseToken_RejectsWrongSecret(t *testing.T) {
	Init("secret-a", 60)
	token, err := GenerateToken(1, "employee")
	assert.NoError(t, err)

	Init("secret-b", 60)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsExpired(t *testing.T) {
	// TTL of -2 minutes is already past the 60s leeway.
	Init("test-secret-key", -2)
	token, err := GenerateToken(7, "expert")
	assert.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseToken_RejectsGarbage(t *testing.T) {
	Init("test-secret-key", 60)
	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}
