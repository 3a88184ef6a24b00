package handlers

import (
	"time"

	"asisten-wira/pkg/ai"
	"asisten-wira/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type SystemHandler struct {
	pool    *pgxpool.Pool
	gateway ai.Gateway
	aiCfg   *config.AIConfig
	logger  *zap.Logger
}

func NewSystemHandler(pool *pgxpool.Pool, gateway ai.Gateway, aiCfg *config.AIConfig, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{
		pool:    pool,
		gateway: gateway,
		aiCfg:   aiCfg,
		logger:  logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Report service and database health
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.pool.Ping(c.Context()); err != nil {
		h.logger.Warn("Database ping failed", zap.Error(err))
		dbStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"database":  dbStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// AIStatus godoc
// @Summary Inference provider status
// @Description Report which inference provider is selected and whether its credentials are configured
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ai/status [get]
func (h *SystemHandler) AIStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"provider":   h.gateway.Name(),
		"configured": h.providerConfigured(),
		"model":      h.providerModel(),
	})
}

func (h *SystemHandler) providerConfigured() bool {
	switch h.gateway.Name() {
	case "replicate":
		return h.aiCfg.ReplicateToken != ""
	case "huggingface":
		return h.aiCfg.HuggingFaceToken != ""
	case "watsonx":
		return h.aiCfg.WatsonxAPIKey != "" && h.aiCfg.WatsonxBaseURL != ""
	}
	return false
}

func (h *SystemHandler) providerModel() string {
	switch h.gateway.Name() {
	case "replicate":
		return h.aiCfg.ReplicateModel
	case "huggingface":
		return h.aiCfg.HuggingFaceModel
	case "watsonx":
		return h.aiCfg.WatsonxModel
	}
	return ""
}
