package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// RequireRoles creates a Gin middleware handler that rejects users whose
// role is not in the allowed set. Must run after AuthMiddleware.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetUserFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}
		if !slices.Contains(allowed, user.Role) {
			GetLoggerFromCtx(c.Request.Context()).Warn("Insufficient role for operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Operation forbidden"})
			return
		}
		c.Next()
	}
}
