package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emirhank/campuscore/internal/app/models/dto"
	"github.com/emirhank/campuscore/internal/pkg/apperrors"
	"github.com/emirhank/campuscore/internal/pkg/auth"
)

// AuthMiddleware guards routes behind JWT validation and role checks.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the claims in the request
// context for downstream handlers.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			detail = detail.WithDetails("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			if errors.Is(err, auth.ErrExpiredToken) || errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
			}
			detail := dto.NewErrorDetail(code, "Authentication failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RoleRequired rejects requests whose authenticated role is not in the
// allowed set. It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			detail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(detail))
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, allowed := range roles {
				if roleStr == allowed {
					c.Next()
					return
				}
			}
		}

		detail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
		detail = detail.WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(detail))
	}
}
