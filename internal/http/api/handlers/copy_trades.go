package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

// CopyTradeHandler manages the caller's copy-trade endpoints.
type CopyTradeHandler struct {
	db *gorm.DB // Database handle for copy-trade records.
}

// NewCopyTradeHandler constructs a CopyTradeHandler.
func NewCopyTradeHandler(db *gorm.DB) *CopyTradeHandler {
	return &CopyTradeHandler{db: db}
}

// List returns the caller's copy trades, newest first.
func (h *CopyTradeHandler) List(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var rows []models.CopyTrade
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", user.UserID).
		Order("started_at DESC").
		Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list copy trades failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "copy_trades": rows})
}

// createCopyTradeRequest captures the payload for starting a copy trade.
type createCopyTradeRequest struct {
	TraderID string  `json:"trader_id"` // Trader to copy.
	Amount   float64 `json:"amount"`    // Allocated amount.
}

// Create starts copying a trader with an allocated amount. The trader
// must exist and be active, and the amount may not exceed the caller's
// balance.
func (h *CopyTradeHandler) Create(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var body createCopyTradeRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	if body.Amount > user.Balance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
		return
	}

	ctx := c.Request.Context()

	var trader models.Trader
	if errFind := h.db.WithContext(ctx).
		Where("trader_id = ? AND is_active = ?", strings.TrimSpace(body.TraderID), true).
		First(&trader).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "trader not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	copyTrade := models.CopyTrade{
		CopyTradeID:   security.GenerateID("copy"),
		UserID:        user.UserID,
		TraderID:      trader.TraderID,
		Amount:        body.Amount,
		CurrentProfit: 0,
		Status:        models.CopyTradeStatusActive,
		StartedAt:     time.Now().UTC(),
	}

	errTx := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errCreate := tx.Create(&copyTrade).Error; errCreate != nil {
			return errCreate
		}
		return tx.Model(&models.Trader{}).
			Where("trader_id = ?", trader.TraderID).
			UpdateColumn("followers", gorm.Expr("followers + 1")).Error
	})
	if errTx != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create copy trade failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "copy_trade": copyTrade})
}

// Stop ends one of the caller's copy trades. Stopping an already stopped
// copy succeeds and refreshes the end time.
func (h *CopyTradeHandler) Stop(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	copyTradeID := strings.TrimSpace(c.Param("id"))
	if copyTradeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	now := time.Now().UTC()
	res := h.db.WithContext(c.Request.Context()).Model(&models.CopyTrade{}).
		Where("copy_trade_id = ? AND user_id = ?", copyTradeID, user.UserID).
		Updates(map[string]any{
			"status":   models.CopyTradeStatusStopped,
			"ended_at": now,
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stop copy trade failed"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "copy trade not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Copy trade stopped"})
}
