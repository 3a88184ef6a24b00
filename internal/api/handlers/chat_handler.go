package handlers

import (
	"context"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatResolver resolves an utterance to exactly one reply.
type ChatResolver interface {
	Resolve(ctx context.Context, chatbotID uuid.UUID, message string, mode service.ChatMode) *service.ChatResult
}

type ChatHandler struct {
	resolver ChatResolver
	logger   *zap.Logger
}

func NewChatHandler(resolver ChatResolver, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		resolver: resolver,
		logger:   logger,
	}
}

// Chat godoc
// @Summary Send a message to a chatbot
// @Description Resolve a visitor message against the chatbot's knowledge base and AI fallback
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat request"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return chatBadRequest(c, "Invalid request body")
	}

	if req.Message == "" || req.ChatbotID == "" {
		return chatBadRequest(c, "Message and chatbot_id are required")
	}

	chatbotID, err := uuid.Parse(req.ChatbotID)
	if err != nil {
		return chatBadRequest(c, "Invalid chatbot_id")
	}

	mode, err := service.ParseChatMode(req.ChatMode)
	if err != nil {
		return chatBadRequest(c, "Unknown chat_mode: "+req.ChatMode)
	}

	result := h.resolver.Resolve(c.Context(), chatbotID, req.Message, mode)

	return c.JSON(dto.ChatResponse{
		Success:        true,
		Response:       result.Reply,
		Confidence:     result.Confidence,
		Sentiment:      result.Sentiment,
		Source:         result.Source,
		IsHoaxDetected: result.HoaxDetected,
	})
}

func chatBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
