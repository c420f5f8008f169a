package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"taskhub_backend/internal/auth"
	"taskhub_backend/internal/logger"
	"taskhub_backend/internal/models"
	"taskhub_backend/pkg/apperrors"
)

const claimsContextKey = "claims"

// AuthMiddleware authenticates the request. It accepts both
// "Authorization: Bearer <token>" and a bare token in the header, verifies
// it, and stores the typed *auth.Claims in the context. Missing, malformed
// and expired tokens all fail with 401 before any handler runs.
func AuthMiddleware(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		claims, err := tm.Parse(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID())
		c.Request = c.Request.WithContext(ctx)
		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRoles authorizes the already-authenticated request: the claim's
// role must be a member of the declared set. No declared roles means any
// authenticated caller passes.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool, len(roles))
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			abortUnauthorized(c, "Not authenticated")
			return
		}

		if len(roleSet) > 0 && !roleSet[claims.Role] {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetClaims returns the session claims set by AuthMiddleware, or nil on
// an unauthenticated request.
func GetClaims(c *gin.Context) *auth.Claims {
	val, exists := c.Get(claimsContextKey)
	if !exists {
		return nil
	}
	claims, ok := val.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func abortUnauthorized(c *gin.Context, msg string) {
	apperrors.HandleError(c, apperrors.NewUnauthorizedError(msg))
	c.Abort()
}
