package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"asisten-wira/pkg/config"

	"go.uber.org/zap"
)

// WatsonxClient calls an IBM watsonx Orchestrate deployment through its
// OpenAI-compatible chat-completion endpoint at a configured base URL.
type WatsonxClient struct {
	httpClient *http.Client
	apiKey     string
	model      string
	baseURL    string
	logger     *zap.Logger
}

func NewWatsonxClient(cfg *config.AIConfig, logger *zap.Logger) (*WatsonxClient, error) {
	if cfg.WatsonxAPIKey == "" || cfg.WatsonxBaseURL == "" {
		return nil, errors.New("watsonx credentials not configured")
	}
	return &WatsonxClient{
		httpClient: &http.Client{},
		apiKey:     cfg.WatsonxAPIKey,
		model:      cfg.WatsonxModel,
		baseURL:    strings.TrimRight(cfg.WatsonxBaseURL, "/"),
		logger:     logger,
	}, nil
}

func (c *WatsonxClient) Name() string {
	return "watsonx"
}

func (c *WatsonxClient) Complete(ctx context.Context, prompt string, history []Message) (*Completion, error) {
	messages := []Message{{Role: "system", Content: systemPrompt}}
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: prompt})

	requestBody := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"max_tokens":  500,
		"temperature": 0.7,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
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

	c.logger.Debug("Watsonx completion received", zap.Int("length", len(text)))

	return &Completion{
		Text:       text,
		Confidence: 0.9,
		Sentiment:  SentimentNeutral,
	}, nil
}
