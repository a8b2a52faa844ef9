package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	tokens := NewTokens("test-secret")

	raw, err := tokens.Issue(42, "ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, "42", claims.Subject)
}

func TestVerifyRejectsTampered(t *testing.T) {
	tokens := NewTokens("test-secret")

	raw, err := tokens.Issue(42, "ana@example.com")
	require.NoError(t, err)

	_, err = tokens.Verify(raw + "x")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Verify("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	raw, err := NewTokens("secret-a").Issue(1, "a@example.com")
	require.NoError(t, err)

	_, err = NewTokens("secret-b").Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	digest, err := HashPassword("hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2", digest)

	require.True(t, CheckPassword(digest, "hunter2"))
	require.False(t, CheckPassword(digest, "hunter3"))
	require.False(t, CheckPassword("", "hunter2"))
}
