package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/oauth"
	"github.com/monacap/trading-backend/internal/security"
)

// AuthHandler manages registration, login, OAuth exchange, and sessions.
type AuthHandler struct {
	db         *gorm.DB             // Database handle for users and sessions.
	sessionCfg config.SessionConfig // Session token expiry horizon.
	oauth      *oauth.Client        // External identity provider client.
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(db *gorm.DB, sessionCfg config.SessionConfig, oauthClient *oauth.Client) *AuthHandler {
	return &AuthHandler{db: db, sessionCfg: sessionCfg, oauth: oauthClient}
}

// registerRequest captures the payload for account creation.
type registerRequest struct {
	FullName string `json:"full_name"` // Display name.
	Email    string `json:"email"`     // Unique login email.
	Password string `json:"password"`  // Plaintext password.
}

// Register creates a user account and issues a fresh session.
func (h *AuthHandler) Register(c *gin.Context) {
	var body registerRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	fullName := strings.TrimSpace(body.FullName)
	if email == "" || fullName == "" || body.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name, email and password are required"})
		return
	}

	ctx := c.Request.Context()

	var existing models.User
	errFind := h.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if errFind == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	hash, errHash := security.HashPassword(body.Password)
	if errHash != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash password failed"})
		return
	}

	user := models.User{
		UserID:    security.GenerateUserID(),
		Email:     email,
		FullName:  fullName,
		Password:  hash,
		Role:      models.RoleUser,
		Balance:   0,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := h.db.WithContext(ctx).Create(&user).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create user failed"})
		return
	}

	token, errSession := h.issueSession(ctx, user.UserID)
	if errSession != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session failed"})
		return
	}

	log.WithField("user_id", user.UserID).Info("user registered")
	user.Password = ""
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
		"token":   token,
	})
}

// loginRequest captures the payload for password login.
type loginRequest struct {
	Email    string `json:"email"`    // Login email.
	Password string `json:"password"` // Plaintext password.
}

// Login verifies credentials and issues a fresh session. Unknown email
// and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(body.Email))
	ctx := c.Request.Context()

	var user models.User
	errFind := h.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errFind != nil || user.Password == "" || !security.CheckPassword(user.Password, body.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, errSession := h.issueSession(ctx, user.UserID)
	if errSession != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session failed"})
		return
	}

	log.WithField("user_id", user.UserID).Info("user logged in")
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
		"token":   token,
	})
}

// googleRequest captures the short-lived provider session identifier.
type googleRequest struct {
	SessionID string `json:"session_id"` // Short-lived provider session ID.
}

// Google exchanges a provider session identifier for a profile, upserts
// the local user by email, and persists the provider-issued session token.
func (h *AuthHandler) Google(c *gin.Context) {
	var body googleRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if strings.TrimSpace(body.SessionID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
		return
	}

	ctx := c.Request.Context()

	profile, errExchange := h.oauth.ExchangeSession(ctx, body.SessionID)
	if errExchange != nil {
		log.WithError(errExchange).Warn("oauth exchange failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid session ID"})
		return
	}

	email := strings.TrimSpace(strings.ToLower(profile.Email))

	var user models.User
	errFind := h.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errFind == nil:
		now := time.Now().UTC()
		updates := map[string]any{
			"full_name":  profile.Name,
			"picture":    profile.Picture,
			"updated_at": now,
		}
		if errUpdate := h.db.WithContext(ctx).Model(&models.User{}).
			Where("user_id = ?", user.UserID).
			Updates(updates).Error; errUpdate != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update user failed"})
			return
		}
		user.FullName = profile.Name
		user.Picture = profile.Picture
		user.UpdatedAt = &now
	case errors.Is(errFind, gorm.ErrRecordNotFound):
		user = models.User{
			UserID:    security.GenerateUserID(),
			Email:     email,
			FullName:  profile.Name,
			GoogleID:  profile.ID,
			Picture:   profile.Picture,
			Role:      models.RoleUser,
			Balance:   0,
			Status:    models.UserStatusActive,
			CreatedAt: time.Now().UTC(),
		}
		if errCreate := h.db.WithContext(ctx).Create(&user).Error; errCreate != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create user failed"})
			return
		}
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	// The provider-issued token becomes the local session token verbatim.
	session := models.UserSession{
		SessionToken: profile.SessionToken,
		UserID:       user.UserID,
		ExpiresAt:    time.Now().UTC().Add(h.sessionCfg.Expiry),
		CreatedAt:    time.Now().UTC(),
	}
	if errCreate := h.db.WithContext(ctx).Create(&session).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session failed"})
		return
	}

	log.WithField("user_id", user.UserID).Info("oauth login")
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Google authentication successful",
		"user":    user,
		"token":   profile.SessionToken,
	})
}

// Me returns the caller's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// Logout deletes every session row matching the presented token. A
// request without a token still succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := ExtractSessionToken(c)
	if token != "" {
		if errDelete := h.db.WithContext(c.Request.Context()).
			Where("session_token = ?", token).
			Delete(&models.UserSession{}).Error; errDelete != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// issueSession persists a fresh randomly generated session for a user and
// returns its token.
func (h *AuthHandler) issueSession(ctx context.Context, userID string) (string, error) {
	now := time.Now().UTC()
	session := models.UserSession{
		SessionToken: security.GenerateSessionToken(),
		UserID:       userID,
		ExpiresAt:    now.Add(h.sessionCfg.Expiry),
		CreatedAt:    now,
	}
	if errCreate := h.db.WithContext(ctx).Create(&session).Error; errCreate != nil {
		return "", errCreate
	}
	return session.SessionToken, nil
}
