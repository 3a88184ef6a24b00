package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/models"
	"asisten-wira/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResolver struct {
	result *service.ChatResult
	calls  int
	mode   service.ChatMode
}

func (r *stubResolver) Resolve(ctx context.Context, chatbotID uuid.UUID, message string, mode service.ChatMode) *service.ChatResult {
	r.calls++
	r.mode = mode
	return r.result
}

func newChatApp(resolver *stubResolver) *fiber.App {
	app := fiber.New()
	handler := NewChatHandler(resolver, zap.NewNop())
	app.Post("/api/chat", handler.Chat)
	return app
}

func postChat(t *testing.T, app *fiber.App, payload map[string]interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestChatHandlerSuccess(t *testing.T) {
	resolver := &stubResolver{result: &service.ChatResult{
		Reply:      "Harga mulai 50rb",
		Confidence: 0.95,
		Sentiment:  models.SentimentPositive,
		Source:     models.SourceKnowledgeBase,
	}}
	app := newChatApp(resolver)

	resp := postChat(t, app, map[string]interface{}{
		"message":    "berapa harga nya",
		"chatbot_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "Harga mulai 50rb", body.Response)
	assert.Equal(t, 0.95, body.Confidence)
	assert.Equal(t, models.SentimentPositive, body.Sentiment)
	assert.Equal(t, models.SourceKnowledgeBase, body.Source)

	assert.Equal(t, 1, resolver.calls)
	assert.Equal(t, service.ModeHybrid, resolver.mode, "missing chat_mode defaults to hybrid")
}

func TestChatHandlerExplicitMode(t *testing.T) {
	resolver := &stubResolver{result: &service.ChatResult{Reply: "ok"}}
	app := newChatApp(resolver)

	resp := postChat(t, app, map[string]interface{}{
		"message":    "halo",
		"chatbot_id": uuid.NewString(),
		"chat_mode":  "knowledge-base",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, service.ModeKnowledgeBase, resolver.mode)
}

func TestChatHandlerMissingFields(t *testing.T) {
	cases := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"missing message", map[string]interface{}{"chatbot_id": uuid.NewString()}},
		{"missing chatbot_id", map[string]interface{}{"message": "halo"}},
		{"invalid chatbot_id", map[string]interface{}{"message": "halo", "chatbot_id": "not-a-uuid"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resolver := &stubResolver{result: &service.ChatResult{Reply: "ok"}}
			app := newChatApp(resolver)

			resp := postChat(t, app, tc.payload)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, resolver.calls, "resolver must not run on invalid input")
		})
	}
}

func TestChatHandlerUnknownMode(t *testing.T) {
	resolver := &stubResolver{result: &service.ChatResult{Reply: "ok"}}
	app := newChatApp(resolver)

	resp := postChat(t, app, map[string]interface{}{
		"message":    "halo",
		"chatbot_id": uuid.NewString(),
		"chat_mode":  "telepati",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, resolver.calls)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
}

func TestChatHandlerSurfacesHoaxFlag(t *testing.T) {
	resolver := &stubResolver{result: &service.ChatResult{
		Reply:        "jawaban AI",
		Confidence:   0.9,
		Sentiment:    models.SentimentNeutral,
		Source:       models.SourceAIService,
		HoaxDetected: true,
	}}
	app := newChatApp(resolver)

	resp := postChat(t, app, map[string]interface{}{
		"message":    "Anda menang hadiah jutaan",
		"chatbot_id": uuid.NewString(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.IsHoaxDetected)
}

func TestChatHandlerDegradedReplyIsStill200(t *testing.T) {
	resolver := &stubResolver{result: &service.ChatResult{
		Reply:      "Maaf, AI service sedang tidak tersedia. Silakan coba lagi nanti.",
		Confidence: 0.2,
		Sentiment:  models.SentimentNegative,
		Source:     models.SourceAIService,
	}}
	app := newChatApp(resolver)

	resp := postChat(t, app, map[string]interface{}{
		"message":    "halo",
		"chatbot_id": uuid.NewString(),
		"chat_mode":  "ai",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success, "degraded replies keep the success contract")
	assert.Equal(t, 0.2, body.Confidence)
}
