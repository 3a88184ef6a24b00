// Package ai contains the inference gateway adapters. Each provider is a
// stateless HTTP text-completion endpoint; exactly one serves a deployment.
package ai

import (
	"context"
	"errors"
	"fmt"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Message is a prior exchange passed to the provider for context.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Completion is a provider's finalized reply. Text is never empty: an empty
// completion is rejected as a ServiceError before it gets here.
type Completion struct {
	Text       string
	Confidence float64
	Sentiment  string
}

// Gateway is the contract the response resolver calls. Implementations must
// not fall back to another provider on failure; provider selection happens
// once, at startup.
type Gateway interface {
	Name() string
	Complete(ctx context.Context, prompt string, history []Message) (*Completion, error)
}

// ServiceError covers every gateway failure: unreachable provider,
// non-success status, empty completion, and poll-ceiling timeouts.
// Timeout distinguishes ceiling exhaustion from provider-reported failure.
type ServiceError struct {
	Provider string
	Reason   string
	Timeout  bool
	Err      error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Provider, e.Reason)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err is a gateway timeout (poll ceiling reached).
func IsTimeout(err error) bool {
	var svcErr *ServiceError
	return errors.As(err, &svcErr) && svcErr.Timeout
}

// systemPrompt frames every provider call. The product serves Indonesian
// small businesses, so replies are steered to Bahasa Indonesia.
const systemPrompt = `You are a helpful AI assistant for Indonesian businesses. Please answer in Indonesian language naturally and helpfully.`
