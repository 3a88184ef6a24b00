package handlers

import (
	"asisten-wira/internal/dto"
	"asisten-wira/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AnalysisHandler serves the standalone text-analysis tools. Both endpoints
// stay public so deployed widgets can call them without a dashboard session.
type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// HoaxDetection godoc
// @Summary Screen a text for hoax indicators
// @Description Scan a text for known Indonesian scam phrases and report a verdict
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.HoaxDetectionRequest true "Text to screen"
// @Success 200 {object} dto.HoaxDetectionResponse
// @Failure 400 {object} map[string]string
// @Router /ai/hoax-detection [post]
func (h *AnalysisHandler) HoaxDetection(c *fiber.Ctx) error {
	var req dto.HoaxDetectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is required",
		})
	}

	verdict := h.analysisService.DetectHoax(req.Text)

	return c.JSON(dto.HoaxDetectionResponse{
		Text:        req.Text,
		IsHoax:      verdict.IsHoax,
		Confidence:  verdict.Confidence,
		Explanation: verdict.Explanation,
	})
}

// SentimentAnalysis godoc
// @Summary Label a text's sentiment
// @Description Classify a text as positive, negative, or neutral
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dto.SentimentAnalysisRequest true "Text to classify"
// @Success 200 {object} dto.SentimentAnalysisResponse
// @Failure 400 {object} map[string]string
// @Router /ai/sentiment-analysis [post]
func (h *AnalysisHandler) SentimentAnalysis(c *fiber.Ctx) error {
	var req dto.SentimentAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Text is required",
		})
	}

	verdict := h.analysisService.AnalyzeSentiment(req.Text)

	return c.JSON(dto.SentimentAnalysisResponse{
		Text:       req.Text,
		Sentiment:  verdict.Sentiment,
		Confidence: verdict.Confidence,
	})
}
