package api

import (
	"time"

	"email-responder-backend/internal/reply/usecase"
	"email-responder-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	replyUsecase usecase.ReplyUsecase
	config       *config.Config
	logger       *zap.Logger
	db           *gorm.DB
}

// NewHandler wires the HTTP layer. db may be nil when no database is
// configured; history routes are then not registered.
func NewHandler(replyUc usecase.ReplyUsecase, db *gorm.DB, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		replyUsecase: replyUc,
		config:       cfg,
		logger:       logger,
		db:           db,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware(h.logger))

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"POST", "OPTIONS", "GET", "PUT", "DELETE", "PATCH"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control", "X-Requested-With", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	SetupRoutes(r, h.replyUsecase, h.db, h.config, h.logger)

	return r.Run(addr)
}
