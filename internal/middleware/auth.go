package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "foodgram/internal/pkg/jwt"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// RequireAuth rejects requests without a valid Bearer token and sets
// the acting user id in the context.
func RequireAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseToken(c, jwt)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Authentication required",
				},
			})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and lets
// anonymous requests through. Handlers see user id 0 for anonymous callers.
func OptionalAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseToken(c, jwt); ok {
			c.Set(UserIDKey, claims.UserID)
		}
		c.Next()
	}
}

// CurrentUserID returns the acting user id, 0 when the caller is anonymous.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(UserIDKey)
}

func parseToken(c *gin.Context, jwt *jwtsvc.Service) (*jwtsvc.Claims, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return nil, false
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if tokenStr == "" {
		return nil, false
	}

	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}
