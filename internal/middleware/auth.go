package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/snapshare/snapshare-api/internal/apperrors"
	portssvc "github.com/snapshare/snapshare-api/internal/core/ports/services"
	"github.com/snapshare/snapshare-api/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates bearer
// access tokens. A token authenticates only if its signature, expiry and
// scope check out and it has not been blacklisted; the resolved user and
// the raw token are stored in the request context.
func AuthMiddleware(tokenSvc portssvc.TokenSvcFacade, sessionSvc portssvc.SessionSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authorization header format must be Bearer {token}"})
			return
		}

		tokenString := parts[1]

		email, err := tokenSvc.Decode(tokenString, utils.ScopeAccessToken)
		if err != nil {
			logger.Warn("Invalid access token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
			return
		}

		blacklisted, err := sessionSvc.IsBlacklisted(c.Request.Context(), tokenString)
		if err != nil {
			logger.Error("Blacklist check failed", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}
		if blacklisted {
			logger.Warn("Blacklisted token rejected", slog.String("email", email))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is blacklisted"})
			return
		}

		user, err := sessionSvc.ResolveUser(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Token subject no longer exists", slog.String("email", email))
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Could not validate credentials"})
				return
			}
			logger.Error("User resolution failed", slog.String("email", email), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
			return
		}

		enrichedLogger := logger.With(slog.String("email", email))

		ctx := context.WithValue(c.Request.Context(), currentUserKey, user)
		ctx = context.WithValue(ctx, accessTokenKey, tokenString)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
