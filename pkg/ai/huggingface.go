package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"asisten-wira/pkg/config"

	"go.uber.org/zap"
)

// hfSystemPrompt extends the shared prompt with formatting rules: the chat
// widget renders plain text, so Markdown artifacts must be kept out.
const hfSystemPrompt = systemPrompt + `

IMPORTANT FORMATTING RULES:
1. Use CLEAN, READABLE formatting without Markdown symbols
2. NO **bold** symbols, NO | table separators, NO --- lines, NO ### headings
3. Use simple bullet points with - for lists
4. Use clear section breaks with blank lines
5. Make responses easy to read for non-technical users
6. Use Indonesian language naturally and professionally`

// HuggingFaceClient calls the HuggingFace Router API, an OpenAI-compatible
// synchronous chat-completion endpoint.
type HuggingFaceClient struct {
	httpClient *http.Client
	token      string
	model      string
	baseURL    string
	logger     *zap.Logger
}

func NewHuggingFaceClient(cfg *config.AIConfig, logger *zap.Logger) *HuggingFaceClient {
	return &HuggingFaceClient{
		httpClient: &http.Client{},
		token:      cfg.HuggingFaceToken,
		model:      cfg.HuggingFaceModel,
		baseURL:    "https://router.huggingface.co/v1",
		logger:     logger,
	}
}

func (c *HuggingFaceClient) Name() string {
	return "huggingface"
}

func (c *HuggingFaceClient) Complete(ctx context.Context, prompt string, history []Message) (*Completion, error) {
	messages := []Message{{Role: "system", Content: hfSystemPrompt}}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: prompt})

	requestBody := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"max_tokens":  2000,
		"temperature": 0.7,
		"top_p":       0.9,
		"stream":      false,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ServiceError{Provider: c.Name(), Reason: fmt.Sprintf("returned status %d: %s", resp.StatusCode, body)}
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content Output `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to decode response", Err: err}
	}

	if len(completionResp.Choices) == 0 {
		return nil, &ServiceError{Provider: c.Name(), Reason: "no choices in response"}
	}

	text, err := completionResp.Choices[0].Message.Content.Normalize()
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "empty completion", Err: err}
	}

	text = CleanMarkdown(text)
	if text == "" {
		return nil, &ServiceError{Provider: c.Name(), Reason: "completion empty after cleanup", Err: ErrEmptyOutput}
	}

	c.logger.Debug("HuggingFace completion received", zap.Int("length", len(text)))

	return &Completion{
		Text:       text,
		Confidence: 0.95,
		Sentiment:  SentimentPositive,
	}, nil
}
