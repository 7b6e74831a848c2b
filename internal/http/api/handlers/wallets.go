package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/monacap/trading-backend/internal/models"
)

// defaultWallets holds the built-in deposit destinations per payment
// method. DB rows override these; the bank transfer entry is structured.
var defaultWallets = map[string]any{
	"bitcoin":    "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
	"ethereum":   "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb8",
	"usdt_trc20": "TXYZopYRdj2D9XRtbG4uTdwZjX9c2V4h9q",
	"usdt_erc20": "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb8",
	"bank_transfer": gin.H{
		"bank_name":      "Chase Bank",
		"account_name":   "Monacap Trading Pro LLC",
		"account_number": "1234567890",
		"routing_number": "021000021",
		"swift_code":     "CHASUS33",
	},
	"paypal": "payments@monacaptradingpro.com",
}

// WalletHandler serves deposit wallet addresses with admin overrides.
type WalletHandler struct {
	db *gorm.DB // Database handle for wallet overrides.
}

// NewWalletHandler constructs a WalletHandler.
func NewWalletHandler(db *gorm.DB) *WalletHandler {
	return &WalletHandler{db: db}
}

// List returns the built-in wallet addresses merged with DB overrides.
func (h *WalletHandler) List(c *gin.Context) {
	var overrides []models.WalletAddress
	if errFind := h.db.WithContext(c.Request.Context()).Find(&overrides).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list wallets failed"})
		return
	}

	wallets := make(map[string]any, len(defaultWallets))
	for method, address := range defaultWallets {
		wallets[method] = address
	}
	for _, row := range overrides {
		wallets[row.Method] = row.Address
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "wallets": wallets})
}

// Get returns the address for a single payment method.
func (h *WalletHandler) Get(c *gin.Context) {
	method := strings.TrimSpace(c.Param("method"))

	var override models.WalletAddress
	errFind := h.db.WithContext(c.Request.Context()).
		Where("method = ?", method).
		First(&override).Error
	if errFind == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "method": method, "address": override.Address})
		return
	}

	if address, ok := defaultWallets[method]; ok {
		c.JSON(http.StatusOK, gin.H{"success": true, "method": method, "address": address})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "wallet method not found"})
}

// updateWalletRequest captures an admin wallet address override.
type updateWalletRequest struct {
	Address string `json:"address"` // Destination address or account string.
}

// Update upserts an override for a payment method.
func (h *WalletHandler) Update(c *gin.Context) {
	method := strings.TrimSpace(c.Param("method"))
	if method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid method"})
		return
	}

	var body updateWalletRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	address := strings.TrimSpace(body.Address)
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	row := models.WalletAddress{Method: method, Address: address}
	if errUpsert := h.db.WithContext(c.Request.Context()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "method"}},
			DoUpdates: clause.AssignmentColumns([]string{"address", "updated_at"}),
		}).
		Create(&row).Error; errUpsert != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update wallet failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "method": method, "address": address})
}
