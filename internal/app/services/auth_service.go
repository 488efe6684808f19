package services

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/auth"
	"github.com/emirhank/campuscore/internal/store"
)

// AuthService handles login, logout and the current session.
type AuthService struct {
	store  *store.Store
	jwt    *auth.JWTService
	logger zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(st *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{store: st, jwt: jwtService, logger: logger}
}

// Login verifies credentials, issues a token pair and records the session.
func (s *AuthService) Login(req dto.LoginRequest) (dto.TokenResponse, error) {
	user, ok := store.UserByEmail(s.store.State(), req.Email)
	if !ok {
		return dto.TokenResponse{}, apperrors.ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, req.Password) {
		s.logger.Debug().Str("email", req.Email).Msg("Password mismatch")
		return dto.TokenResponse{}, apperrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, expiresIn, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return dto.TokenResponse{}, err
	}

	// The refresh token doubles as the session identifier; Refresh checks
	// presented tokens against it.
	if err := s.store.Dispatch(store.SetSession{UserID: user.ID, SessionID: refreshToken}); err != nil {
		return dto.TokenResponse{}, err
	}
	user.LastLoginAt = time.Now()
	if err := s.store.Dispatch(store.UpdateUser{Record: user}); err != nil {
		return dto.TokenResponse{}, err
	}

	s.logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    expiresIn,
		User:         dto.NewUserResponse(user),
	}, nil
}

// Refresh rotates the token pair for the session that presented a valid
// refresh token. The old refresh token is invalidated by the rotation.
func (s *AuthService) Refresh(refreshToken string) (dto.TokenResponse, error) {
	state := s.store.State()
	if state.Auth.SessionID == "" || state.Auth.SessionID != refreshToken {
		return dto.TokenResponse{}, apperrors.ErrTokenInvalid
	}
	user, ok := store.UserByID(state, state.Auth.CurrentUserID)
	if !ok {
		return dto.TokenResponse{}, apperrors.ErrTokenInvalid
	}

	accessToken, nextRefresh, expiresIn, err := s.jwt.GenerateTokenPair(user)
	if err != nil {
		return dto.TokenResponse{}, err
	}
	if err := s.store.Dispatch(store.SetSession{UserID: user.ID, SessionID: nextRefresh}); err != nil {
		return dto.TokenResponse{}, err
	}

	return dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: nextRefresh,
		ExpiresIn:    expiresIn,
		User:         dto.NewUserResponse(user),
	}, nil
}

// Logout ends the current session.
func (s *AuthService) Logout() error {
	return s.store.Dispatch(store.ClearSession{})
}

// Me returns the API view of a user by identifier, for the authenticated
// /me endpoint.
func (s *AuthService) Me(userID string) (dto.UserResponse, error) {
	user, ok := store.UserByID(s.store.State(), userID)
	if !ok {
		return dto.UserResponse{}, apperrors.ErrRecordNotFound
	}
	return dto.NewUserResponse(user), nil
}

// ChangePassword re-hashes and stores a user's password after verifying the
// current one.
func (s *AuthService) ChangePassword(userID, current, next string) error {
	user, ok := store.UserByID(s.store.State(), userID)
	if !ok {
		return apperrors.ErrRecordNotFound
	}
	if !auth.CheckPassword(user.Password, current) {
		return apperrors.ErrInvalidCredentials
	}
	if len(next) < 8 {
		return apperrors.NewValidationError("password must be at least 8 characters")
	}
	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.store.Dispatch(store.UpdateUser{Record: user})
}

// ValidateToken delegates to the JWT service, mapping its errors onto the
// application sentinels the error middleware understands.
func (s *AuthService) ValidateToken(token string) (*auth.Claims, error) {
	claims, err := s.jwt.ValidateToken(token)
	if err != nil {
		switch err {
		case auth.ErrExpiredToken:
			return nil, apperrors.ErrTokenExpired
		default:
			return nil, apperrors.ErrTokenInvalid
		}
	}
	return claims, nil
}
