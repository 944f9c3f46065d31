package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueVerify(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123", "jobSeeker")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", ident.UserID)
	assert.Equal(t, "jobSeeker", ident.UserType)
}

func TestTokenManager_Verify_Tampered(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Issue("user-123", "jobPoster")
	require.NoError(t, err)

	// Flip one byte in the middle of the token
	raw := []byte(token)
	mid := len(raw) / 2
	if raw[mid] == 'a' {
		raw[mid] = 'b'
	} else {
		raw[mid] = 'a'
	}

	ident, err := m.Verify(string(raw))
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, ident)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, err := m.Issue("user-123", "jobSeeker")
	require.NoError(t, err)

	ident, err := m.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, ident)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, err := issuer.Issue("user-123", "jobSeeker")
	require.NoError(t, err)

	ident, err := verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, ident)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		ident, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, ident)
	}
}
