package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("spirit2018")
	require.NoError(t, err)
	assert.NotEqual(t, "spirit2018", hash)
	assert.True(t, CheckPassword("spirit2018", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(42, "Lumexat")
	require.NoError(t, err)

	userID, username, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "Lumexat", username)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, _, err := ParseJWT("not.a.token")
	assert.Error(t, err)
}
