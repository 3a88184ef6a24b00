package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

const (
	SourceKnowledgeBase = "knowledge_base"
	SourceAIService     = "ai_service"
	SourceError         = "error"
)

// Conversation is one logged exchange between an end customer and a chatbot.
// KnowledgeID is set only when the reply came from the knowledge base.
type Conversation struct {
	ID          uuid.UUID  `db:"id"`
	ChatbotID   uuid.UUID  `db:"chatbot_id"`
	UserMessage string     `db:"user_message"`
	BotResponse string     `db:"bot_response"`
	Sentiment   string     `db:"sentiment"`
	Source      string     `db:"source"`
	KnowledgeID *uuid.UUID `db:"knowledge_id"`
	CreatedAt   time.Time  `db:"created_at"`
}
