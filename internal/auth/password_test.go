package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", bcrypt.MinCost)

	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("secret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
