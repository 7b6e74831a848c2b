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

// TransactionHandler manages deposit/withdrawal endpoints and the admin
// approval workflow.
type TransactionHandler struct {
	db *gorm.DB // Database handle for transaction records.
}

// NewTransactionHandler constructs a TransactionHandler.
func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{db: db}
}

// List returns all transactions, newest first.
func (h *TransactionHandler) List(c *gin.Context) {
	var rows []models.Transaction
	if errFind := h.db.WithContext(c.Request.Context()).
		Order("date DESC").
		Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list transactions failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "transactions": rows})
}

// createTransactionRequest captures the payload for submitting a
// deposit or withdrawal.
type createTransactionRequest struct {
	Type   string  `json:"type"`   // deposit or withdrawal.
	Amount float64 `json:"amount"` // Transaction amount.
	Method string  `json:"method"` // Payment method label.
}

// Create submits a pending deposit or withdrawal for the caller.
func (h *TransactionHandler) Create(c *gin.Context) {
	user, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var body createTransactionRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if body.Type != models.TransactionTypeDeposit && body.Type != models.TransactionTypeWithdrawal {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be deposit or withdrawal"})
		return
	}
	if body.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}
	if body.Type == models.TransactionTypeWithdrawal && body.Amount > user.Balance {
		c.JSON(http.StatusBadRequest, gin.H{"error": "insufficient balance"})
		return
	}

	txn := models.Transaction{
		TransactionID: security.GenerateID("txn"),
		UserID:        user.UserID,
		Type:          body.Type,
		Amount:        body.Amount,
		Method:        strings.TrimSpace(body.Method),
		Status:        models.TransactionStatusPending,
		Date:          time.Now().UTC(),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&txn).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create transaction failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": txn})
}

// Approve marks a transaction completed and stamps the acting admin.
func (h *TransactionHandler) Approve(c *gin.Context) {
	h.resolve(c, models.TransactionStatusCompleted, "Transaction approved")
}

// Reject marks a transaction rejected and stamps the acting admin.
func (h *TransactionHandler) Reject(c *gin.Context) {
	h.resolve(c, models.TransactionStatusRejected, "Transaction rejected")
}

// resolve applies an approval decision. Re-resolving an already processed
// transaction overwrites the previous decision and succeeds.
func (h *TransactionHandler) resolve(c *gin.Context, status, message string) {
	admin, ok := CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	transactionID := strings.TrimSpace(c.Param("id"))
	if transactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx := c.Request.Context()

	var txn models.Transaction
	if errFind := h.db.WithContext(ctx).
		Where("transaction_id = ?", transactionID).
		First(&txn).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	now := time.Now().UTC()
	if errUpdate := h.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("transaction_id = ?", transactionID).
		Updates(map[string]any{
			"status":       status,
			"processed_by": admin.UserID,
			"processed_at": now,
		}).Error; errUpdate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
