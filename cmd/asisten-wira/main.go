package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asisten-wira/internal/api"
	"asisten-wira/internal/api/handlers"
	"asisten-wira/internal/repository"
	"asisten-wira/internal/service"
	"asisten-wira/pkg/ai"
	"asisten-wira/pkg/auth"
	"asisten-wira/pkg/config"
	"asisten-wira/pkg/logger"
	"asisten-wira/pkg/postgres"

	"go.uber.org/zap"
)

// @title Asisten Wira API
// @version 1.0
// @description Backend for the Asisten Wira chatbot builder for Indonesian SME owners
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@asistenwira.id

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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
	appLogger.Info("Starting Asisten Wira service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	chatbotRepo := repository.NewChatbotRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)
	conversationRepo := repository.NewConversationRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Select the inference provider once at startup.
	gateway, err := newGateway(&cfg.AI, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize inference provider", zap.Error(err))
	}
	appLogger.Info("Inference provider selected", zap.String("provider", gateway.Name()))

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	chatbotService := service.NewChatbotService(chatbotRepo, knowledgeRepo, conversationRepo, appLogger)
	knowledgeService := service.NewKnowledgeService(knowledgeRepo, appLogger)
	conversationLogger := service.NewConversationLogger(conversationRepo, appLogger)
	chatService := service.NewChatService(knowledgeRepo, service.KeywordMatcher{}, gateway, conversationLogger, appLogger)
	analysisService := service.NewAnalysisService(appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	chatbotHandler := handlers.NewChatbotHandler(chatbotService, appLogger)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService, appLogger)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, appLogger)
	systemHandler := handlers.NewSystemHandler(db, gateway, &cfg.AI, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, chatHandler, chatbotHandler, knowledgeHandler, analysisHandler, systemHandler, jwtManager, appLogger)

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

func newGateway(cfg *config.AIConfig, appLogger *zap.Logger) (ai.Gateway, error) {
	switch cfg.Provider {
	case "replicate":
		return ai.NewReplicateClient(cfg, appLogger), nil
	case "huggingface":
		return ai.NewHuggingFaceClient(cfg, appLogger), nil
	case "watsonx":
		return ai.NewWatsonxClient(cfg, appLogger)
	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}
