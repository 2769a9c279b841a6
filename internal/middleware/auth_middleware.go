package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appauth "github.com/palikatech/gunaso/internal/app/auth"
	"github.com/palikatech/gunaso/internal/app/models"
	"github.com/palikatech/gunaso/internal/app/models/dto"
	"github.com/palikatech/gunaso/internal/pkg/auth"
)

// Context keys set by the JWT middleware.
const (
	ContextUserIDKey = "userID"
	ContextRoleKey   = "userRole"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the Bearer token and attaches the caller's identity and
// role to the request context. Requests without a valid token never reach
// the handlers.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
			return
		}

		role := models.Role(claims.Role)
		if !role.IsValid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Unknown role in token"))
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextRoleKey, role)

		c.Next()
	}
}

// RequireRoles rejects callers whose role is not in the allowed set. Must run
// after JWTAuth.
func (m *AuthMiddleware) RequireRoles(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
			return
		}

		for _, role := range roles {
			if caller.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "Permission denied"))
	}
}

// CallerFromContext rebuilds the authenticated caller stored by JWTAuth.
func CallerFromContext(c *gin.Context) (appauth.Caller, bool) {
	userID, ok := c.Get(ContextUserIDKey)
	if !ok {
		return appauth.Caller{}, false
	}
	role, ok := c.Get(ContextRoleKey)
	if !ok {
		return appauth.Caller{}, false
	}

	id, ok := userID.(int64)
	if !ok {
		return appauth.Caller{}, false
	}
	r, ok := role.(models.Role)
	if !ok {
		return appauth.Caller{}, false
	}

	return appauth.Caller{UserID: id, Role: r}, true
}
