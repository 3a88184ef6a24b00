package models

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeItem is an admin-curated fact owned by a chatbot. Keywords is a
// comma-separated list; only active items are eligible for matching.
type KnowledgeItem struct {
	ID        uuid.UUID `db:"id"`
	ChatbotID uuid.UUID `db:"chatbot_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Keywords  string    `db:"keywords"`
	Category  string    `db:"category"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
