package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/CoooPi/bucketlist-poc/internal/api"
	"github.com/CoooPi/bucketlist-poc/internal/api/handlers"
	"github.com/CoooPi/bucketlist-poc/internal/repository"
	"github.com/CoooPi/bucketlist-poc/internal/service"
	"github.com/CoooPi/bucketlist-poc/pkg/config"
	"github.com/CoooPi/bucketlist-poc/pkg/logger"
	"github.com/CoooPi/bucketlist-poc/pkg/postgres"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// @title Bucket List API
// @version 1.0
// @description Personalised bucket-list suggestions generated by an LLM, deduplicated and tracked with feedback

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting bucket list service")

	// amounts go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to migrate database", zap.Error(err))
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db, logger.Component("profile_repository"))
	suggestionRepo := repository.NewSuggestionRepository(db, logger.Component("suggestion_repository"))
	feedbackRepo := repository.NewFeedbackRepository(db, logger.Component("feedback_repository"))
	sessionStore := repository.NewSessionStore(logger.Component("session_store"))

	// Initialize services
	llmService := service.NewLLMService(&cfg.LLM, logger.Component("llm"))
	defer llmService.Close()

	if cfg.LLM.APIKey != "" {
		if err := llmService.ValidateAndStoreAPIKey(ctx, cfg.LLM.APIKey); err != nil {
			appLogger.Warn("API key from environment rejected, waiting for one via the API", zap.Error(err))
		}
	} else {
		appLogger.Info("No API key configured, waiting for one via the API")
	}

	feedbackService := service.NewFeedbackService(feedbackRepo, suggestionRepo, cfg.Suggestion.FeedbackHistoryLimit, logger.Component("feedback"))
	suggestionService := service.NewSuggestionService(profileRepo, suggestionRepo, feedbackService, llmService, &cfg.Suggestion, logger.Component("suggestions"))
	profileService := service.NewProfileService(profileRepo, llmService, cfg.Suggestion.Currency, logger.Component("profile"))
	sessionService := service.NewSessionService(sessionStore, llmService, cfg.Suggestion.Currency, logger.Component("session"))

	// Initialize handlers
	h := api.Handlers{
		Profile:    handlers.NewProfileHandler(profileService, appLogger),
		Suggestion: handlers.NewSuggestionHandler(suggestionService, feedbackService, appLogger),
		Session:    handlers.NewSessionHandler(sessionService, appLogger),
		Config:     handlers.NewConfigHandler(llmService, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, llmService, &cfg.Server, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
