package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, "secret123", hash)
	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashPassword_EmptyRejected(t *testing.T) {
	t.Parallel()

	_, err := HashPassword("")
	assert.Error(t, err)
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret123")
	require.NoError(t, err)
	second, err := HashPassword("secret123")
	require.NoError(t, err)

	// Same password, different salt, different hash.
	assert.NotEqual(t, first, second)
}
