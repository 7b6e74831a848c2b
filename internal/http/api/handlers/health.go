package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/db"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	db *gorm.DB // Database handle for the connectivity probe.
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(conn *gorm.DB) *HealthHandler {
	return &HealthHandler{db: conn}
}

// Health returns 200 when the database is reachable, 503 otherwise.
func (h *HealthHandler) Health(c *gin.Context) {
	if errPing := db.Ping(h.db); errPing != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
