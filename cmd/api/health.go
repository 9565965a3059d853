package api

import (
	"context"
	"net/http"
	"time"

	"email-responder-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthResponse is the response body for the health endpoint
type HealthResponse struct {
	Status              string `json:"status"`
	GeminiAPIConfigured bool   `json:"gemini_api_configured"`
	Database            string `json:"database,omitempty"`
}

// HealthHandler reports service liveness and dependency readiness
type HealthHandler struct {
	config *config.Config
	db     *gorm.DB
}

func NewHealthHandler(cfg *config.Config, db *gorm.DB) *HealthHandler {
	return &HealthHandler{config: cfg, db: db}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:              "healthy",
		GeminiAPIConfigured: h.config.GeminiAPIKey != "",
	}

	if h.db != nil {
		resp.Database = h.pingDatabase(c.Request.Context())
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "down"
	}

	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return "down"
	}
	return "up"
}
