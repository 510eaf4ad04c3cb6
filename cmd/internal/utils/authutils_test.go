package utils

import (
	"testing"

	"goldcredit/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	user := &entity.User{ID: 42, Email: "jane@goldcreditsa.com.br"}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ValidateToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, int64(42), data.UserID)
	assert.Equal(t, "jane@goldcreditsa.com.br", data.Email)
	assert.Greater(t, data.Exp, int64(0))
}

func TestValidateToken_BearerPrefix(t *testing.T) {
	user := &entity.User{ID: 7, Email: "jane@goldcreditsa.com.br"}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	data, err := ValidateToken(testSecret, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.UserID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	user := &entity.User{ID: 1, Email: "jane@goldcreditsa.com.br"}

	token, err := GenerateToken(testSecret, user)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("other-secret"), token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken(testSecret, "not.a.token")
	assert.Error(t, err)

	_, err = ValidateToken(testSecret, "")
	assert.Error(t, err)
}
