package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokensRequiresSecret(t *testing.T) {
	_, err := NewTokens("")
	assert.Error(t, err)
}

func TestGenerateAndValidate(t *testing.T) {
	tokens, err := NewTokens("secret")
	require.NoError(t, err)

	s, err := tokens.Generate("user-1", "ada@example.com", "Ada")
	require.NoError(t, err)

	claims, err := tokens.Validate(s)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada", claims.Name)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	a, _ := NewTokens("one")
	b, _ := NewTokens("two")

	s, err := a.Generate("user-1", "", "")
	require.NoError(t, err)
	_, err = b.Validate(s)
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	tokens, _ := NewTokens("secret")
	tokens.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	s, err := tokens.Generate("user-1", "", "")
	require.NoError(t, err)

	_, err = tokens.Validate(s)
	require.Error(t, err)
	assert.True(t, IsExpired(err))
}

func TestValidateRejectsForeignIssuer(t *testing.T) {
	tokens, _ := NewTokens("secret")
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "user-1",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = tokens.Validate(s)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
