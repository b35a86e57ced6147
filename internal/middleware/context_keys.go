package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/snapshare/snapshare-api/internal/core/domain"
)

// currentUserKey is the key used to store the authenticated user in the
// request context.
const currentUserKey = contextKey("currentUser")

// accessTokenKey is the key used to store the raw bearer token, needed
// by logout to blacklist the presented credential.
const accessTokenKey = contextKey("accessToken")

// GetUserFromContext retrieves the authenticated user from the Gin context.
// It returns the user and a boolean indicating if it was found.
func GetUserFromContext(c *gin.Context) (*domain.User, bool) {
	user, ok := c.Request.Context().Value(currentUserKey).(*domain.User)
	if !ok {
		return nil, false
	}
	return user, true
}

// GetAccessTokenFromContext retrieves the raw bearer token from the Gin context.
func GetAccessTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(accessTokenKey).(string)
	if !ok {
		return "", false
	}
	return token, true
}
