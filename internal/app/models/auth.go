package models

import "time"

// UserRole represents the portal role of an administrative user.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleRegistrar UserRole = "registrar"
	RoleAccounts  UserRole = "accounts"
)

// User is an administrative login. Password holds a bcrypt hash; it is part
// of the snapshot document, so API responses must go through dto.UserResponse
// rather than serializing the record directly.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	Name        string    `json:"name"`
	Role        UserRole  `json:"role"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// EntityID implements Entity.
func (u User) EntityID() string { return u.ID }

// AuthState is the session sub-state. It is the only part of the store that
// survives a full reset.
type AuthState struct {
	Users         []User `json:"users"`
	CurrentUserID string `json:"currentUserId"`
	SessionID     string `json:"sessionId"`
}
