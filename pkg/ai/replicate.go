package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"asisten-wira/pkg/config"

	"go.uber.org/zap"
)

// ReplicateClient talks to Replicate's prediction API. Replicate is
// asynchronous: a submission returns a prediction handle whose status URL is
// polled until a terminal state or the attempt ceiling.
type ReplicateClient struct {
	httpClient   *http.Client
	token        string
	model        string
	baseURL      string
	pollInterval time.Duration
	maxAttempts  int
	logger       *zap.Logger
}

func NewReplicateClient(cfg *config.AIConfig, logger *zap.Logger) *ReplicateClient {
	return &ReplicateClient{
		httpClient:   &http.Client{},
		token:        cfg.ReplicateToken,
		model:        cfg.ReplicateModel,
		baseURL:      "https://api.replicate.com/v1",
		pollInterval: cfg.PollInterval,
		maxAttempts:  cfg.PollMaxAttempts,
		logger:       logger,
	}
}

func (c *ReplicateClient) Name() string {
	return "replicate"
}

type prediction struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output Output `json:"output"`
	Error  string `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

func (c *ReplicateClient) Complete(ctx context.Context, prompt string, history []Message) (*Completion, error) {
	fullPrompt := fmt.Sprintf("%s\n\n%sPengguna: %s\n\nAsisten Wira:", systemPrompt, historyContext(history), prompt)

	requestBody := map[string]interface{}{
		"version": c.model,
		"input": map[string]interface{}{
			"prompt":         fullPrompt,
			"max_new_tokens": 500,
			"temperature":    0.7,
			"top_p":          0.9,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to marshal request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predictions", bytes.NewReader(jsonData))
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to create request", Err: err}
	}
	req.Header.Set("Authorization", "Token "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "submission failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &ServiceError{Provider: c.Name(), Reason: fmt.Sprintf("submission returned status %d: %s", resp.StatusCode, body)}
	}

	var pred prediction
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "failed to decode submission response", Err: err}
	}

	switch pred.Status {
	case "succeeded":
		return c.finish(pred)
	case "failed", "canceled":
		return nil, &ServiceError{Provider: c.Name(), Reason: terminalReason(pred)}
	}

	return c.poll(ctx, pred.URLs.Get)
}

// poll checks the prediction status at a fixed interval up to the attempt
// ceiling. The loop is bounded and honors caller cancellation; exceeding the
// ceiling is a timeout, distinct from a provider-reported failure.
func (c *ReplicateClient) poll(ctx context.Context, predictionURL string) (*Completion, error) {
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, &ServiceError{Provider: c.Name(), Reason: "request canceled while polling", Err: ctx.Err()}
		case <-time.After(c.pollInterval):
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, predictionURL, nil)
		if err != nil {
			return nil, &ServiceError{Provider: c.Name(), Reason: "failed to create poll request", Err: err}
		}
		req.Header.Set("Authorization", "Token "+c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Warn("Prediction poll failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}

		var pred prediction
		decodeErr := json.NewDecoder(resp.Body).Decode(&pred)
		resp.Body.Close()
		if decodeErr != nil || resp.StatusCode != http.StatusOK {
			c.logger.Warn("Prediction poll returned unusable response",
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
			)
			continue
		}

		switch pred.Status {
		case "succeeded":
			return c.finish(pred)
		case "failed", "canceled":
			return nil, &ServiceError{Provider: c.Name(), Reason: terminalReason(pred)}
		}
		// Any non-terminal status means keep polling.
	}

	return nil, &ServiceError{
		Provider: c.Name(),
		Reason:   fmt.Sprintf("prediction timed out after %d polls", c.maxAttempts),
		Timeout:  true,
	}
}

func (c *ReplicateClient) finish(pred prediction) (*Completion, error) {
	text, err := pred.Output.Normalize()
	if err != nil {
		return nil, &ServiceError{Provider: c.Name(), Reason: "empty completion after success", Err: err}
	}
	return &Completion{
		Text:       text,
		Confidence: 0.95,
		Sentiment:  SentimentPositive,
	}, nil
}

func terminalReason(pred prediction) string {
	if pred.Status == "canceled" {
		return "prediction was canceled"
	}
	if pred.Error != "" {
		return "prediction failed: " + pred.Error
	}
	return "prediction failed"
}

func historyContext(history []Message) string {
	if len(history) == 0 {
		return ""
	}
	var b bytes.Buffer
	for _, msg := range history {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}
	b.WriteString("\n")
	return b.String()
}
