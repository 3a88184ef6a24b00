package api

import (
	"asisten-wira/docs"
	"asisten-wira/internal/api/handlers"
	"asisten-wira/pkg/auth"
	"asisten-wira/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	chatbotHandler *handlers.ChatbotHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	analysisHandler *handlers.AnalysisHandler,
	systemHandler *handlers.SystemHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo // ensure docs package is imported and init() is called
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public routes: health, provider status, auth, and the widget-facing
	// chat endpoint. Chat stays public so deployed widgets work without a
	// dashboard session.
	app.Get("/health", systemHandler.Health)
	app.Get("/ai/status", systemHandler.AIStatus)
	app.Post("/ai/hoax-detection", analysisHandler.HoaxDetection)
	app.Post("/ai/sentiment-analysis", analysisHandler.SentimentAnalysis)

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	app.Post("/api/chat", chatHandler.Chat)

	// Dashboard routes require a valid access token.
	protected := app.Group("/api", middleware.AuthMiddleware(jwtManager, appLogger))

	chatbots := protected.Group("/chatbots")
	chatbots.Post("", chatbotHandler.Create)
	chatbots.Get("", chatbotHandler.List)
	chatbots.Get("/:id", chatbotHandler.Get)
	chatbots.Put("/:id", chatbotHandler.Update)
	chatbots.Delete("/:id", chatbotHandler.Delete)

	protected.Get("/conversations", chatbotHandler.Conversations)

	knowledge := protected.Group("/knowledge-base")
	knowledge.Post("", knowledgeHandler.Create)
	knowledge.Get("", knowledgeHandler.List)
	knowledge.Put("/:id", knowledgeHandler.Update)
	knowledge.Delete("/:id", knowledgeHandler.Delete)

	return app
}
