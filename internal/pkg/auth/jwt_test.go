package auth_test

import (
	"testing"
	"time"

	"github.com/palikatech/gunaso/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "gunaso.test",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken(42, "ward_admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ward_admin", claims.Role)
	assert.Equal(t, "gunaso.test", claims.Issuer)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(42, "user")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(42, "user")
	require.NoError(t, err)

	other := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "different-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "gunaso.test",
	})

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := auth.ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = auth.ExtractBearerToken("")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)

	_, err = auth.ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, auth.ErrInvalidFormat)
}
