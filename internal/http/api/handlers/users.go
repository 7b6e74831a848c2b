package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbutil "github.com/monacap/trading-backend/internal/db"
	"github.com/monacap/trading-backend/internal/models"
)

// UserHandler manages admin user-management endpoints.
type UserHandler struct {
	db *gorm.DB // Database handle for user records.
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// List returns all users, optionally filtered by a search term matching
// email or full name.
func (h *UserHandler) List(c *gin.Context) {
	searchQ := strings.TrimSpace(c.Query("search"))

	q := h.db.WithContext(c.Request.Context()).Model(&models.User{})
	if searchQ != "" {
		pattern := dbutil.NormalizeLikePattern(h.db, "%"+searchQ+"%")
		q = q.Where(
			dbutil.CaseInsensitiveLikeExpr(h.db, "email")+" OR "+
				dbutil.CaseInsensitiveLikeExpr(h.db, "full_name"),
			pattern,
			pattern,
		)
	}

	var rows []models.User
	if errFind := q.Order("created_at DESC").Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list users failed"})
		return
	}
	for i := range rows {
		rows[i].Password = ""
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": rows})
}

// updateUserRequest captures optional fields for admin user updates.
type updateUserRequest struct {
	Status  *string  `json:"status"`  // Optional account status.
	Balance *float64 `json:"balance"` // Optional balance override.
	Role    *string  `json:"role"`    // Optional role change.
}

// Update applies a partial update of status, balance, or role.
func (h *UserHandler) Update(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var body updateUserRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	updates := map[string]any{}
	if body.Status != nil {
		if *body.Status != models.UserStatusActive && *body.Status != models.UserStatusInactive {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active or inactive"})
			return
		}
		updates["status"] = *body.Status
	}
	if body.Balance != nil {
		if *body.Balance < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "balance cannot be negative"})
			return
		}
		updates["balance"] = *body.Balance
	}
	if body.Role != nil {
		if *body.Role != models.RoleUser && *body.Role != models.RoleAdmin {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be user or admin"})
			return
		}
		updates["role"] = *body.Role
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated"})
		return
	}
	updates["updated_at"] = time.Now().UTC()

	res := h.db.WithContext(c.Request.Context()).Model(&models.User{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated"})
}

// Delete removes a user along with their sessions, copy trades, and
// transactions.
func (h *UserHandler) Delete(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()

	var user models.User
	if errFind := h.db.WithContext(ctx).Where("user_id = ?", userID).First(&user).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	errTx := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errDel := tx.Where("user_id = ?", userID).Delete(&models.UserSession{}).Error; errDel != nil {
			return errDel
		}
		if errDel := tx.Where("user_id = ?", userID).Delete(&models.CopyTrade{}).Error; errDel != nil {
			return errDel
		}
		if errDel := tx.Where("user_id = ?", userID).Delete(&models.Transaction{}).Error; errDel != nil {
			return errDel
		}
		return tx.Where("user_id = ?", userID).Delete(&models.User{}).Error
	})
	if errTx != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted"})
}
