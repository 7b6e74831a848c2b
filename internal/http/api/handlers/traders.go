package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

// TraderHandler manages the trader catalog endpoints.
type TraderHandler struct {
	db *gorm.DB // Database handle for trader records.
}

// NewTraderHandler constructs a TraderHandler.
func NewTraderHandler(db *gorm.DB) *TraderHandler {
	return &TraderHandler{db: db}
}

// List returns all active traders.
func (h *TraderHandler) List(c *gin.Context) {
	var rows []models.Trader
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list traders failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "traders": rows})
}

// createTraderRequest captures the payload for trader creation.
type createTraderRequest struct {
	Name    string `json:"name"`     // Display name.
	Image   string `json:"image"`    // Avatar URL.
	Profit  string `json:"profit"`   // Display profit figure.
	Risk    string `json:"risk"`     // Risk level label.
	WinRate string `json:"win_rate"` // Display win rate.
}

// Create validates input and inserts a trader record.
func (h *TraderHandler) Create(c *gin.Context) {
	var body createTraderRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if body.Risk != models.RiskLow && body.Risk != models.RiskMedium && body.Risk != models.RiskHigh {
		c.JSON(http.StatusBadRequest, gin.H{"error": "risk must be Low, Medium or High"})
		return
	}

	trader := models.Trader{
		TraderID:  security.GenerateID("trader"),
		Name:      name,
		Image:     strings.TrimSpace(body.Image),
		Profit:    strings.TrimSpace(body.Profit),
		Followers: 0,
		Risk:      body.Risk,
		Trades:    0,
		WinRate:   strings.TrimSpace(body.WinRate),
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&trader).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create trader failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "trader": trader})
}
