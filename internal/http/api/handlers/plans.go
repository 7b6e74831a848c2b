package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/models"
	"github.com/monacap/trading-backend/internal/security"
)

// PlanHandler manages the subscription plan endpoints.
type PlanHandler struct {
	db *gorm.DB // Database handle for plan records.
}

// NewPlanHandler constructs a PlanHandler.
func NewPlanHandler(db *gorm.DB) *PlanHandler {
	return &PlanHandler{db: db}
}

// List returns all active plans.
func (h *PlanHandler) List(c *gin.Context) {
	var rows []models.Plan
	if errFind := h.db.WithContext(c.Request.Context()).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&rows).Error; errFind != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list plans failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "plans": rows})
}

// createPlanRequest captures the payload for plan creation.
type createPlanRequest struct {
	Name     string   `json:"name"`     // Plan name.
	Price    float64  `json:"price"`    // Plan price.
	Duration string   `json:"duration"` // Human-readable billing period.
	Features []string `json:"features"` // Feature description list.
	Popular  bool     `json:"popular"`  // Highlighted plan flag.
}

// Create validates input and inserts a plan record.
func (h *PlanHandler) Create(c *gin.Context) {
	var body createPlanRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	name := strings.TrimSpace(body.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if body.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price cannot be negative"})
		return
	}

	if body.Features == nil {
		body.Features = []string{}
	}
	features, errMarshal := json.Marshal(body.Features)
	if errMarshal != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid features"})
		return
	}

	plan := models.Plan{
		PlanID:    security.GenerateID("plan"),
		Name:      name,
		Price:     body.Price,
		Duration:  strings.TrimSpace(body.Duration),
		Features:  datatypes.JSON(features),
		Popular:   body.Popular,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&plan).Error; errCreate != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create plan failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "plan": plan})
}
