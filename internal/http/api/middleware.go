package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/http/api/handlers"
	"github.com/monacap/trading-backend/internal/models"
)

// sessionAuthMiddleware resolves the caller from a session token carried
// in the session cookie or the Authorization bearer header. Expired
// sessions are rejected but never deleted on this path.
func sessionAuthMiddleware(conn *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := handlers.ExtractSessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := c.Request.Context()

		var session models.UserSession
		if errFind := conn.WithContext(ctx).
			Where("session_token = ?", token).
			First(&session).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			return
		}

		if session.Expired(time.Now().UTC()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}

		var user models.User
		if errFind := conn.WithContext(ctx).
			Where("user_id = ?", session.UserID).
			First(&user).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
			return
		}

		user.Password = ""
		handlers.SetCurrentUser(c, user)
		c.Next()
	}
}

// adminOnlyMiddleware rejects callers whose resolved role is not admin.
// It must run after sessionAuthMiddleware.
func adminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := handlers.CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// requestLogMiddleware emits one structured access log line per request.
func requestLogMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		}).Debug("request")
	}
}
