package jwthelper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	profileID := uuid.New()

	token, err := GenerateToken("test-key", profileID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParseToken("test-key", token)
	require.NoError(t, err)
	assert.Equal(t, profileID, parsed)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	token, err := GenerateToken("test-key", uuid.New())
	require.NoError(t, err)

	_, err = ParseToken("other-key", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("test-key", "not.a.token")
	assert.Error(t, err)
}
