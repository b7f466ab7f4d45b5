package helpers

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSalt(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	require.Len(t, s1, SaltSize)

	s2, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2, "two salts must differ")
}

func TestDerivePasswordDeterministic(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	h1 := DerivePassword("pw", salt, 1000)
	h2 := DerivePassword("pw", salt, 1000)
	assert.Equal(t, h1, h2, "same plaintext and salt must derive the same hash")
}

func TestDerivePasswordNeverPlaintext(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	h := DerivePassword("password123", salt, 1000)
	assert.NotEqual(t, "password123", h)

	raw, err := base64.StdEncoding.DecodeString(h)
	require.NoError(t, err)
	assert.Len(t, raw, KeySize)
}

func TestDerivePasswordSaltSensitive(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, DerivePassword("pw", s1, 1000), DerivePassword("pw", s2, 1000))
}

func TestDerivePasswordIterationSensitive(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	assert.NotEqual(t, DerivePassword("pw", salt, 1000), DerivePassword("pw", salt, 2000))
}

func TestVerifyPassword(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	hash := DerivePassword("pw", salt, 1000)
	encoded := EncodeSalt(salt)

	assert.True(t, VerifyPassword("pw", encoded, hash, 1000))
	assert.False(t, VerifyPassword("wrong", encoded, hash, 1000))
	assert.False(t, VerifyPassword("pw", encoded, hash, 999))
	assert.False(t, VerifyPassword("pw", "not-base64!!", hash, 1000))
}
