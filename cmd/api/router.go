package api

import (
	"net/http"

	"email-responder-backend/internal/reply/delivery"
	"email-responder-backend/internal/reply/usecase"
	"email-responder-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, replyUsecase usecase.ReplyUsecase, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {
	replyHandler := delivery.NewReplyHandler(replyUsecase, logger)
	healthHandler := NewHealthHandler(cfg, db)

	// Service info
	r.GET("/", func(c *gin.Context) {
		endpoints := []string{"/generate-reply"}
		if db != nil {
			endpoints = append(endpoints, "/history", "/history/{id}")
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "AI Email Responder API",
			"version":   "1.0",
			"endpoints": endpoints,
		})
	})

	// Health check
	r.GET("/health", healthHandler.Health)

	// Reply generation
	r.POST("/generate-reply", replyHandler.GenerateReply)

	// History routes exist only when a database is configured
	if db != nil {
		history := r.Group("/history")
		{
			history.GET("", replyHandler.GetHistory)
			history.GET("/:id", replyHandler.GetReplyByID)
		}
	}

	// Settings routes - runtime provider configuration
	settings := r.Group("/settings")
	{
		settings.GET("/ollama", GetOllamaSettings)
		settings.PUT("/ollama", UpdateOllamaSettings)
		settings.POST("/ollama/test", TestOllamaConnection)
	}

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
