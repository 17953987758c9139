package auth

import (
	"testing"
	"time"

	"venuehub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTCodec_IssueAndVerify(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("tal-1", "sam@example.com", []string{"talent", domain.RoleSuperAdmin}, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	actor, err := verifier.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "tal-1", actor.ID)
	assert.Equal(t, []string{"talent", domain.RoleSuperAdmin}, actor.Roles)
	assert.True(t, actor.IsSuperAdmin())
}

func TestJWTCodec_RejectsWrongSecret(t *testing.T) {
	issuer, _ := NewJWTCodec("secret-a")
	_, verifier := NewJWTCodec("secret-b")

	token, err := issuer.Issue("tal-1", "sam@example.com", nil, time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsExpiredToken(t *testing.T) {
	issuer, verifier := NewJWTCodec("test-secret")

	token, err := issuer.Issue("tal-1", "sam@example.com", nil, -time.Minute)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTCodec_RejectsGarbage(t *testing.T) {
	_, verifier := NewJWTCodec("test-secret")
	_, err := verifier.Verify("not.a.token")
	require.Error(t, err)
}
