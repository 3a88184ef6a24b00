package service

import (
	"context"
	"time"

	"asisten-wira/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConversationCreator is the store operation the logger needs.
type ConversationCreator interface {
	Create(ctx context.Context, conv *models.Conversation) error
}

// ConversationLogger persists exchanges best effort. It returns the insert
// error so tests can observe it, but callers are free to ignore it; the
// operator-facing log is written here.
type ConversationLogger struct {
	repo   ConversationCreator
	logger *zap.Logger
}

func NewConversationLogger(repo ConversationCreator, logger *zap.Logger) *ConversationLogger {
	return &ConversationLogger{
		repo:   repo,
		logger: logger,
	}
}

func (l *ConversationLogger) Log(ctx context.Context, chatbotID uuid.UUID, userMessage string, result *ChatResult) error {
	conv := &models.Conversation{
		ID:          uuid.New(),
		ChatbotID:   chatbotID,
		UserMessage: sanitizeUTF8(userMessage),
		BotResponse: sanitizeUTF8(result.Reply),
		Sentiment:   result.Sentiment,
		Source:      result.Source,
		KnowledgeID: result.KnowledgeID,
		CreatedAt:   time.Now(),
	}

	if err := l.repo.Create(ctx, conv); err != nil {
		l.logger.Error("Failed to save conversation",
			zap.String("chatbot_id", chatbotID.String()),
			zap.Error(err),
		)
		return err
	}

	return nil
}
