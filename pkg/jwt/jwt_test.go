package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("secret", time.Hour)

	tok, err := m.GenerateAccessToken(42, "alice", "moderator")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "moderator", claims.Role)
	assert.Equal(t, "alice", claims.Subject)
}

func TestValidateWrongSecret(t *testing.T) {
	m := NewManager("secret", time.Hour)
	other := NewManager("different", time.Hour)

	tok, err := m.GenerateAccessToken(1, "alice", "user")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(tok)
	assert.Error(t, err)
}

func TestValidateExpiredToken(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	tok, err := m.GenerateAccessToken(1, "alice", "user")
	require.NoError(t, err)

	_, err = m.ValidateAccessToken(tok)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}
