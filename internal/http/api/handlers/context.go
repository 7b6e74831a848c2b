// Package handlers implements the REST endpoints of the platform.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/monacap/trading-backend/internal/models"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

// currentUserKey is the gin context key holding the resolved caller.
const currentUserKey = "currentUser"

// SetCurrentUser stores the resolved caller on the request context.
func SetCurrentUser(c *gin.Context, user models.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the caller resolved by the session middleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// ExtractSessionToken returns the candidate session token of a request.
// The cookie wins; the Authorization bearer header is the fallback. An
// empty string means the request carries no token.
func ExtractSessionToken(c *gin.Context) string {
	if cookie, errCookie := c.Cookie(SessionCookieName); errCookie == nil {
		if token := strings.TrimSpace(cookie); token != "" {
			return token
		}
	}

	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}
