package service

import (
	"context"
	"errors"
	"math"
	"time"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrChatbotNotFound = errors.New("chatbot not found")

// ChatbotStore is the chatbot persistence surface the service needs. Reads
// and mutations are scoped by owner: a chatbot belonging to another user is
// reported as not found.
type ChatbotStore interface {
	Create(ctx context.Context, bot *models.Chatbot) error
	GetByOwner(ctx context.Context, id, userID uuid.UUID) (*models.Chatbot, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Chatbot, error)
	Update(ctx context.Context, bot *models.Chatbot) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// KnowledgeCascade covers the knowledge-base operations involved in chatbot
// stats and cascade deletion.
type KnowledgeCascade interface {
	CountByChatbot(ctx context.Context, chatbotID uuid.UUID) (int, error)
	DeleteByChatbot(ctx context.Context, chatbotID uuid.UUID) error
}

// ConversationCascade covers the conversation operations involved in chatbot
// stats and cascade deletion.
type ConversationCascade interface {
	CountByChatbot(ctx context.Context, chatbotID uuid.UUID) (int, error)
	ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.Conversation, error)
	ListSentiments(ctx context.Context, chatbotID uuid.UUID) ([]string, error)
	DeleteByChatbot(ctx context.Context, chatbotID uuid.UUID) error
}

type ChatbotService struct {
	chatbots      ChatbotStore
	knowledge     KnowledgeCascade
	conversations ConversationCascade
	logger        *zap.Logger
}

func NewChatbotService(chatbots ChatbotStore, knowledge KnowledgeCascade, conversations ConversationCascade, logger *zap.Logger) *ChatbotService {
	return &ChatbotService{
		chatbots:      chatbots,
		knowledge:     knowledge,
		conversations: conversations,
		logger:        logger,
	}
}

func (s *ChatbotService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateChatbotRequest) (*models.Chatbot, error) {
	now := time.Now()
	bot := &models.Chatbot{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		IsActive:    true,
		Status:      "draft",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.chatbots.Create(ctx, bot); err != nil {
		return nil, err
	}

	return bot, nil
}

func (s *ChatbotService) Get(ctx context.Context, id, userID uuid.UUID) (*models.Chatbot, error) {
	bot, err := s.chatbots.GetByOwner(ctx, id, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatbotNotFound
		}
		return nil, err
	}
	return bot, nil
}

// ListWithStats returns the owner's chatbots decorated with the dashboard
// aggregates. Stat reads are best effort: a failed count shows as zero
// rather than failing the listing.
func (s *ChatbotService) ListWithStats(ctx context.Context, userID uuid.UUID) ([]*models.ChatbotStats, error) {
	bots, err := s.chatbots.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := make([]*models.ChatbotStats, 0, len(bots))
	for _, bot := range bots {
		entry := &models.ChatbotStats{Chatbot: *bot}

		if count, err := s.knowledge.CountByChatbot(ctx, bot.ID); err == nil {
			entry.KnowledgeBaseSize = count
		} else {
			s.logger.Warn("Knowledge count failed", zap.String("chatbot_id", bot.ID.String()), zap.Error(err))
		}

		if count, err := s.conversations.CountByChatbot(ctx, bot.ID); err == nil {
			entry.TotalConversations = count
		} else {
			s.logger.Warn("Conversation count failed", zap.String("chatbot_id", bot.ID.String()), zap.Error(err))
		}

		if sentiments, err := s.conversations.ListSentiments(ctx, bot.ID); err == nil {
			entry.SentimentScore = SentimentScore(sentiments)
		} else {
			s.logger.Warn("Sentiment read failed", zap.String("chatbot_id", bot.ID.String()), zap.Error(err))
		}

		stats = append(stats, entry)
	}

	return stats, nil
}

// Update applies the non-zero fields of req. Omitted fields keep their
// current values.
func (s *ChatbotService) Update(ctx context.Context, id, userID uuid.UUID, req *dto.UpdateChatbotRequest) (*models.Chatbot, error) {
	bot, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		bot.Name = req.Name
	}
	if req.Description != "" {
		bot.Description = req.Description
	}
	if req.Industry != "" {
		bot.Industry = req.Industry
	}
	if req.IsActive != nil {
		bot.IsActive = *req.IsActive
	}
	if req.DeploymentURL != "" {
		bot.DeploymentURL = req.DeploymentURL
	}
	if req.Status != "" {
		bot.Status = req.Status
	}
	bot.UpdatedAt = time.Now()

	if err := s.chatbots.Update(ctx, bot); err != nil {
		return nil, err
	}

	return bot, nil
}

// Delete cascades to the chatbot's conversations and knowledge items before
// removing the chatbot row. Each deletion is a separate store call with no
// surrounding transaction: a partial failure leaves orphans, which is logged
// and accepted.
func (s *ChatbotService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}

	if err := s.conversations.DeleteByChatbot(ctx, id); err != nil {
		s.logger.Error("Failed to delete conversations", zap.String("chatbot_id", id.String()), zap.Error(err))
	}
	if err := s.knowledge.DeleteByChatbot(ctx, id); err != nil {
		s.logger.Error("Failed to delete knowledge items", zap.String("chatbot_id", id.String()), zap.Error(err))
	}

	return s.chatbots.Delete(ctx, id, userID)
}

// ListConversations returns a chatbot's exchange log, newest first.
func (s *ChatbotService) ListConversations(ctx context.Context, chatbotID, userID uuid.UUID) ([]*models.Conversation, error) {
	if _, err := s.Get(ctx, chatbotID, userID); err != nil {
		return nil, err
	}
	return s.conversations.ListByChatbot(ctx, chatbotID)
}

// SentimentScore maps logged sentiments to a 0-100 dashboard score:
// positive counts 1, neutral 0.5, negative 0, unknown labels 0.5.
func SentimentScore(sentiments []string) int {
	if len(sentiments) == 0 {
		return 0
	}

	var total float64
	for _, sentiment := range sentiments {
		switch sentiment {
		case models.SentimentPositive:
			total += 1
		case models.SentimentNegative:
			total += 0
		default:
			total += 0.5
		}
	}

	return int(math.Round(total / float64(len(sentiments)) * 100))
}
