package services

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emirhank/campuscore/internal/app/models"
	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/auth"
	"github.com/emirhank/campuscore/internal/store"
)

func authFixture(t *testing.T) (*AuthService, *store.Store) {
	t.Helper()
	hash, err := auth.HashPassword("Admin123!")
	require.NoError(t, err)

	st := store.New(models.State{Auth: models.AuthState{Users: []models.User{
		{ID: "USR1", Email: "admin@campuscore.edu", Password: hash, Name: "System Administrator", Role: models.RoleAdmin},
	}}}, zerolog.Nop())

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campuscore.test",
	})
	return NewAuthService(st, jwtService, zerolog.Nop()), st
}

func TestLoginIssuesTokensAndSession(t *testing.T) {
	svc, st := authFixture(t)

	tokens, err := svc.Login(dto.LoginRequest{Email: "admin@campuscore.edu", Password: "Admin123!"})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "USR1", tokens.User.ID)

	state := st.State()
	assert.Equal(t, "USR1", state.Auth.CurrentUserID)
	assert.Equal(t, tokens.RefreshToken, state.Auth.SessionID)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(dto.LoginRequest{Email: "admin@campuscore.edu", Password: "not-the-password"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := authFixture(t)

	_, err := svc.Login(dto.LoginRequest{Email: "nobody@campuscore.edu", Password: "Admin123!"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestRefreshRotatesSession(t *testing.T) {
	svc, st := authFixture(t)

	tokens, err := svc.Login(dto.LoginRequest{Email: "admin@campuscore.edu", Password: "Admin123!"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)
	assert.Equal(t, rotated.RefreshToken, st.State().Auth.SessionID)

	// the old refresh token is spent
	_, err = svc.Refresh(tokens.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}

func TestChangePasswordVerifiesCurrent(t *testing.T) {
	svc, _ := authFixture(t)

	err := svc.ChangePassword("USR1", "wrong-current", "NewPassword1!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword("USR1", "Admin123!", "NewPassword1!"))

	_, err = svc.Login(dto.LoginRequest{Email: "admin@campuscore.edu", Password: "NewPassword1!"})
	assert.NoError(t, err)
}
