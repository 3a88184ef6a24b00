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

type KnowledgeHandler struct {
	knowledgeService *service.KnowledgeService
	logger           *zap.Logger
}

func NewKnowledgeHandler(knowledgeService *service.KnowledgeService, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledgeService: knowledgeService,
		logger:           logger,
	}
}

// Create godoc
// @Summary Add a knowledge item
// @Description Add a knowledge base entry to a chatbot
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Param request body dto.CreateKnowledgeRequest true "Knowledge request"
// @Success 201 {object} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/knowledge-base [post]
func (h *KnowledgeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.ChatbotID == "" || req.Title == "" || req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "chatbot_id, title and content are required",
		})
	}

	item, err := h.knowledgeService.Create(c.Context(), &req)
	if err != nil {
		h.logger.Error("Knowledge creation failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to create knowledge item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(knowledgeResponse(item))
}

// List godoc
// @Summary List knowledge items
// @Description List a chatbot's knowledge base entries
// @Tags knowledge-base
// @Produce json
// @Param chatbot_id query string true "Chatbot ID"
// @Success 200 {array} dto.KnowledgeResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /api/knowledge-base [get]
func (h *KnowledgeHandler) List(c *fiber.Ctx) error {
	chatbotID, err := uuid.Parse(c.Query("chatbot_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Valid chatbot_id query parameter is required",
		})
	}

	items, err := h.knowledgeService.ListByChatbot(c.Context(), chatbotID)
	if err != nil {
		h.logger.Error("Knowledge listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list knowledge items",
		})
	}

	resp := make([]dto.KnowledgeResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, knowledgeResponse(item))
	}

	return c.JSON(resp)
}

// Update godoc
// @Summary Update a knowledge item
// @Tags knowledge-base
// @Accept json
// @Produce json
// @Param id path string true "Knowledge item ID"
// @Param request body dto.UpdateKnowledgeRequest true "Update request"
// @Success 200 {object} dto.KnowledgeResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/knowledge-base/{id} [put]
func (h *KnowledgeHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid knowledge item ID",
		})
	}

	var req dto.UpdateKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	item, err := h.knowledgeService.Update(c.Context(), id, &req)
	if err != nil {
		if err == service.ErrKnowledgeNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Knowledge update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update knowledge item",
		})
	}

	return c.JSON(knowledgeResponse(item))
}

// Delete godoc
// @Summary Delete a knowledge item
// @Tags knowledge-base
// @Produce json
// @Param id path string true "Knowledge item ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /api/knowledge-base/{id} [delete]
func (h *KnowledgeHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid knowledge item ID",
		})
	}

	if err := h.knowledgeService.Delete(c.Context(), id); err != nil {
		if err == service.ErrKnowledgeNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Knowledge deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete knowledge item",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Knowledge item deleted",
	})
}

func knowledgeResponse(item *models.KnowledgeItem) dto.KnowledgeResponse {
	return dto.KnowledgeResponse{
		ID:        item.ID.String(),
		ChatbotID: item.ChatbotID.String(),
		Title:     item.Title,
		Content:   item.Content,
		Keywords:  item.Keywords,
		Category:  item.Category,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt.Format(time.RFC3339),
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}
}
