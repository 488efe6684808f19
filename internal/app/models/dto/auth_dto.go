package dto

import (
	"time"

	"github.com/emirhank/campuscore/internal/app/models"
)

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest exchanges a refresh token for a fresh pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse carries a freshly issued token pair.
type TokenResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int          `json:"expiresIn"`
	User         UserResponse `json:"user"`
}

// UserResponse is the API view of an administrative user. The password hash
// never leaves the snapshot document.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// NewUserResponse maps a user record to its API view.
func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        string(u.Role),
		LastLoginAt: u.LastLoginAt,
	}
}
