package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/models"
)

// DashboardHandler serves the caller's portfolio aggregates.
type DashboardHandler struct {
	db *gorm.DB // Database handle for aggregate queries.
}

// NewDashboardHandler constructs a DashboardHandler.
func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats returns the caller's balance, running profit, and activity counts.
func (h *DashboardHandler) Stats(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	ctx := c.Request.Context()

	var activeCopies int64
	if errCount := h.db.WithContext(ctx).Model(&models.CopyTrade{}).
		Where("user_id = ? AND status = ?", user.UserID, models.CopyTradeStatusActive).
		Count(&activeCopies).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalTrades int64
	if errCount := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("user_id = ? AND type = ?", user.UserID, models.TransactionTypeTrade).
		Count(&totalTrades).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalProfit float64
	if errSum := h.db.WithContext(ctx).Model(&models.CopyTrade{}).
		Where("user_id = ? AND status = ?", user.UserID, models.CopyTradeStatusActive).
		Select("COALESCE(SUM(current_profit), 0)").
		Scan(&totalProfit).Error; errSum != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	profitPercentage := 0.0
	if user.Balance > 0 {
		profitPercentage = math.Round(totalProfit/user.Balance*100*100) / 100
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"portfolio": gin.H{
			"balance":           user.Balance,
			"profit":            totalProfit,
			"profit_percentage": profitPercentage,
			"active_copies":     activeCopies,
			"total_trades":      totalTrades,
		},
	})
}

// AdminStatsHandler serves platform-wide aggregate counts.
type AdminStatsHandler struct {
	db *gorm.DB // Database handle for aggregate queries.
}

// NewAdminStatsHandler constructs an AdminStatsHandler.
func NewAdminStatsHandler(db *gorm.DB) *AdminStatsHandler {
	return &AdminStatsHandler{db: db}
}

// Stats returns the platform aggregate counts for the admin dashboard.
func (h *AdminStatsHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	var totalUsers int64
	if errCount := h.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&totalUsers).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalTraders int64
	if errCount := h.db.WithContext(ctx).Model(&models.Trader{}).
		Where("is_active = ?", true).
		Count(&totalTraders).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalTransactions int64
	if errCount := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Count(&totalTransactions).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var pendingTransactions int64
	if errCount := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("status = ?", models.TransactionStatusPending).
		Count(&pendingTransactions).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalPlans int64
	if errCount := h.db.WithContext(ctx).Model(&models.Plan{}).
		Where("is_active = ?", true).
		Count(&totalPlans).Error; errCount != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	var totalBalance float64
	if errSum := h.db.WithContext(ctx).Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Select("COALESCE(SUM(balance), 0)").
		Scan(&totalBalance).Error; errSum != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stats query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_users":            totalUsers,
			"total_traders":          totalTraders,
			"total_transactions":     totalTransactions,
			"pending_transactions":   pendingTransactions,
			"total_plans":            totalPlans,
			"total_platform_balance": totalBalance,
		},
	})
}
