package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/localmarket/backend/internal/infrastructure/persistence"
)

// SystemHandler handles system-level endpoints
type SystemHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// Ping answers liveness probes
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong", "time": time.Now().Format(time.RFC3339)})
}

// Stats reports database connection pool statistics
func (h *SystemHandler) Stats(c *gin.Context) {
	stats, err := h.db.Stats()
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, stats)
}
