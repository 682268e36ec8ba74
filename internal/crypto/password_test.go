package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery staple"))
	assert.False(t, CheckPassword(hash, "wrong password"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "same input"))
	assert.True(t, CheckPassword(second, "same input"))
}

func TestCheckPasswordMalformedDigest(t *testing.T) {
	// A malformed digest must behave like a mismatch, never panic or error.
	assert.False(t, CheckPassword("", "anything"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
	assert.False(t, CheckPassword("$2a$garbage", "anything"))
}
