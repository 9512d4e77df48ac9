package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/internal/infrastructure/auth"
)

func TestIssueAndValidate(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("secret-one"), "taskhive", "taskhive-api")

	token, err := issuer.IssueToken("550e8400-e29b-41d4-a716-446655440000", 3600)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", userID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("secret-one"), "taskhive", "taskhive-api")
	other := auth.NewTokenIssuer([]byte("secret-two"), "taskhive", "taskhive-api")

	token, err := issuer.IssueToken("user-1", 3600)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("secret-one"), "taskhive", "taskhive-api")

	token, err := issuer.IssueToken("user-1", -60)
	require.NoError(t, err)

	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	issuer := auth.NewTokenIssuer([]byte("secret-one"), "taskhive", "taskhive-api")
	_, err := issuer.ValidateToken("not.a.token")
	assert.Error(t, err)
}
