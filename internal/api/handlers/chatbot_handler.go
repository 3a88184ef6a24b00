package handlers

import (
	"time"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/models"
	"asisten-wira/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatbotHandler struct {
	chatbotService *service.ChatbotService
	logger         *zap.Logger
}

func NewChatbotHandler(chatbotService *service.ChatbotService, logger *zap.Logger) *ChatbotHandler {
	return &ChatbotHandler{
		chatbotService: chatbotService,
		logger:         logger,
	}
}

// authUserID reads the user ID the auth middleware stored in locals.
func authUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	return uuid.Parse(raw)
}

// Create godoc
// @Summary Create a chatbot
// @Description Create a new chatbot for the authenticated business owner
// @Tags chatbots
// @Accept json
// @Produce json
// @Param request body dto.CreateChatbotRequest true "Chatbot request"
// @Success 201 {object} dto.ChatbotResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/chatbots [post]
func (h *ChatbotHandler) Create(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	var req dto.CreateChatbotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Name is required",
		})
	}

	bot, err := h.chatbotService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Chatbot creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create chatbot",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(chatbotResponse(bot, nil))
}

// List godoc
// @Summary List chatbots
// @Description List the authenticated owner's chatbots with dashboard statistics
// @Tags chatbots
// @Produce json
// @Success 200 {array} dto.ChatbotResponse
// @Security BearerAuth
// @Router /api/chatbots [get]
func (h *ChatbotHandler) List(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	stats, err := h.chatbotService.ListWithStats(c.Context(), userID)
	if err != nil {
		h.logger.Error("Chatbot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list chatbots",
		})
	}

	resp := make([]dto.ChatbotResponse, 0, len(stats))
	for _, entry := range stats {
		resp = append(resp, chatbotResponse(&entry.Chatbot, entry))
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get a chatbot
// @Tags chatbots
// @Produce json
// @Param id path string true "Chatbot ID"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/chatbots/{id} [get]
func (h *ChatbotHandler) Get(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chatbot ID",
		})
	}

	bot, err := h.chatbotService.Get(c.Context(), id, userID)
	if err != nil {
		if err == service.ErrChatbotNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chatbot not found",
			})
		}
		h.logger.Error("Chatbot lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get chatbot",
		})
	}

	return c.JSON(chatbotResponse(bot, nil))
}

// Update godoc
// @Summary Update a chatbot
// @Tags chatbots
// @Accept json
// @Produce json
// @Param id path string true "Chatbot ID"
// @Param request body dto.UpdateChatbotRequest true "Update request"
// @Success 200 {object} dto.ChatbotResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/chatbots/{id} [put]
func (h *ChatbotHandler) Update(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chatbot ID",
		})
	}

	var req dto.UpdateChatbotRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	bot, err := h.chatbotService.Update(c.Context(), id, userID, &req)
	if err != nil {
		if err == service.ErrChatbotNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chatbot not found",
			})
		}
		h.logger.Error("Chatbot update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update chatbot",
		})
	}

	return c.JSON(chatbotResponse(bot, nil))
}

// Delete godoc
// @Summary Delete a chatbot
// @Description Delete a chatbot together with its knowledge base and conversations
// @Tags chatbots
// @Produce json
// @Param id path string true "Chatbot ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/chatbots/{id} [delete]
func (h *ChatbotHandler) Delete(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid chatbot ID",
		})
	}

	if err := h.chatbotService.Delete(c.Context(), id, userID); err != nil {
		if err == service.ErrChatbotNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chatbot not found",
			})
		}
		h.logger.Error("Chatbot deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete chatbot",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Chatbot deleted",
	})
}

// Conversations godoc
// @Summary List a chatbot's conversations
// @Tags conversations
// @Produce json
// @Param chatbot_id query string true "Chatbot ID"
// @Success 200 {array} dto.ConversationResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/conversations [get]
func (h *ChatbotHandler) Conversations(c *fiber.Ctx) error {
	userID, err := authUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid token",
		})
	}

	id, err := uuid.Parse(c.Query("chatbot_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid chatbot_id query parameter is required",
		})
	}

	convs, err := h.chatbotService.ListConversations(c.Context(), id, userID)
	if err != nil {
		if err == service.ErrChatbotNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Chatbot not found",
			})
		}
		h.logger.Error("Conversation listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list conversations",
		})
	}

	resp := make([]dto.ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		resp = append(resp, conversationResponse(conv))
	}

	return c.JSON(resp)
}

func chatbotResponse(bot *models.Chatbot, stats *models.ChatbotStats) dto.ChatbotResponse {
	resp := dto.ChatbotResponse{
		ID:            bot.ID.String(),
		Name:          bot.Name,
		Description:   bot.Description,
		Industry:      bot.Industry,
		IsActive:      bot.IsActive,
		DeploymentURL: bot.DeploymentURL,
		Status:        bot.Status,
		CreatedAt:     bot.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     bot.UpdatedAt.Format(time.RFC3339),
	}
	if stats != nil {
		resp.KnowledgeBaseSize = stats.KnowledgeBaseSize
		resp.TotalConversations = stats.TotalConversations
		resp.SentimentScore = stats.SentimentScore
	}
	return resp
}

func conversationResponse(conv *models.Conversation) dto.ConversationResponse {
	resp := dto.ConversationResponse{
		ID:          conv.ID.String(),
		ChatbotID:   conv.ChatbotID.String(),
		UserMessage: conv.UserMessage,
		BotResponse: conv.BotResponse,
		Sentiment:   conv.Sentiment,
		Source:      conv.Source,
		CreatedAt:   conv.CreatedAt.Format(time.RFC3339),
	}
	if conv.KnowledgeID != nil {
		resp.KnowledgeID = conv.KnowledgeID.String()
	}
	return resp
}
