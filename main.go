package main

import (
	api "email-responder-backend/cmd/api"
	"email-responder-backend/internal/reply/domain"
	"email-responder-backend/internal/reply/repository"
	"email-responder-backend/internal/reply/usecase"
	"email-responder-backend/pkg/ai"
	"email-responder-backend/pkg/config"
	"email-responder-backend/pkg/database"
	"email-responder-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Initialize runtime config for settings API
	api.InitRuntimeConfig(cfg.OllamaBaseURL, cfg.OllamaModel)

	// Initialize AI provider with dynamic config getters for runtime updates
	generator, err := ai.NewReplyGeneratorWithDynamicConfig(ai.DynamicConfig{
		Provider:         ai.ProviderType(cfg.AIProvider),
		GeminiAPIKey:     cfg.GeminiAPIKey,
		GeminiModel:      cfg.GeminiModel,
		GeminiBaseURL:    cfg.GeminiBaseURL,
		OpenAIAPIKey:     cfg.OpenAIAPIKey,
		OpenAIModel:      cfg.OpenAIModel,
		GetOllamaBaseURL: api.GetRuntimeOllamaBaseURL,
		GetOllamaModel:   api.GetRuntimeOllamaModel,
	})
	if err != nil {
		log.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	log.Info("AI provider initialized", zap.String("provider", generator.Name()))

	// Connect to the database when configured; otherwise run stateless
	var db *gorm.DB
	var replyRepo repository.ReplyRepository
	if cfg.DatabaseURL != "" {
		db, err = database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database", zap.Error(err))
		}

		// Auto-migrate database schema
		if err := db.AutoMigrate(&domain.EmailReply{}); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}

		replyRepo = repository.NewReplyRepository(db)
		log.Info("Database connected, history enabled")
	} else {
		log.Warn("DATABASE_URL not set, running stateless (history disabled)")
	}

	// Initialize use case (dependency injection)
	replyUsecase := usecase.NewReplyUsecase(replyRepo, generator, log)

	// Initialize HTTP handler
	handler := api.NewHandler(replyUsecase, db, cfg, log)

	// Start server
	log.Info("Server starting", zap.String("port", cfg.Port))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
