package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHuggingFaceClient(baseURL string) *HuggingFaceClient {
	return &HuggingFaceClient{
		httpClient: http.DefaultClient,
		token:      "hf-token",
		model:      "test/model",
		baseURL:    baseURL,
		logger:     zap.NewNop(),
	}
}

func hfResponse(content string) string {
	payload := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]interface{}{"content": content}},
		},
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestHuggingFaceCompleteSuccess(t *testing.T) {
	var body struct {
		Model    string    `json:"model"`
		Messages []Message `json:"messages"`
		Stream   bool      `json:"stream"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer hf-token", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		fmt.Fprint(w, hfResponse("Kami buka jam 8 pagi."))
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	completion, err := client.Complete(context.Background(), "jam buka?", []Message{{Role: "user", Content: "halo"}})
	require.NoError(t, err)
	assert.Equal(t, "Kami buka jam 8 pagi.", completion.Text)
	assert.Equal(t, 0.95, completion.Confidence)
	assert.Equal(t, SentimentPositive, completion.Sentiment)

	assert.Equal(t, "test/model", body.Model)
	assert.False(t, body.Stream)
	// system prompt, one history entry, then the user message
	require.Len(t, body.Messages, 3)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "jam buka?", body.Messages[2].Content)
}

func TestHuggingFaceCompleteStripsMarkdown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, hfResponse("### Jam Buka\nKami buka **setiap hari**."))
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	completion, err := client.Complete(context.Background(), "jam buka?", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jam Buka\nKami buka setiap hari.", completion.Text)
}

func TestHuggingFaceCompleteEmptyAfterCleanup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, hfResponse("**"))
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestHuggingFaceCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)

	var svcErr *ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "huggingface", svcErr.Provider)
}

func TestHuggingFaceCompleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	_, err := client.Complete(context.Background(), "halo", nil)
	require.Error(t, err)
	assert.False(t, IsTimeout(err))
}

func TestHuggingFaceCompleteFragmentsContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":["Halo", " ", "dunia"]}}]}`)
	}))
	defer server.Close()

	client := newTestHuggingFaceClient(server.URL)

	completion, err := client.Complete(context.Background(), "halo", nil)
	require.NoError(t, err)
	assert.Equal(t, "Halo dunia", completion.Text)
}
