package models

import (
	"time"

	"github.com/google/uuid"
)

// Chatbot is a tenant's bot configuration. UserID scopes every dashboard
// operation: owners only ever see and mutate their own bots.
type Chatbot struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Name          string    `db:"name"`
	Description   string    `db:"description"`
	Industry      string    `db:"industry"`
	IsActive      bool      `db:"is_active"`
	DeploymentURL string    `db:"deployment_url"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ChatbotStats decorates a chatbot with the dashboard aggregates: knowledge
// base size, conversation volume, and a 0-100 sentiment score.
type ChatbotStats struct {
	Chatbot
	KnowledgeBaseSize  int
	TotalConversations int
	SentimentScore     int
}
