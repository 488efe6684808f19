package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
)

func testJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "campuscore.test",
	})
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testJWTService(time.Hour)
	user := models.User{ID: "USR1", Email: "admin@campuscore.edu", Role: models.RoleAdmin}

	access, refresh, expiresIn, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, 3600, expiresIn)

	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.Equal(t, "USR1", claims.UserID)
	assert.Equal(t, "admin@campuscore.edu", claims.Email)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)
	assert.Equal(t, "campuscore.test", claims.Issuer)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testJWTService(-time.Minute)

	access, _, _, err := svc.GenerateTokenPair(models.User{ID: "USR1"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(access)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	access, _, _, err := testJWTService(time.Hour).GenerateTokenPair(models.User{ID: "USR1"})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "different-secret", AccessTokenExp: time.Hour})
	_, err = other.ValidateToken(access)
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("Token abc")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
