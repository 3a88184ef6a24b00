package repository

import (
	"context"

	"asisten-wira/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ConversationRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewConversationRepository(db *pgxpool.Pool, logger *zap.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ConversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	query := squirrel.Insert("conversations").
		Columns("id", "chatbot_id", "user_message", "bot_response", "sentiment", "source", "knowledge_id", "created_at").
		Values(conv.ID, conv.ChatbotID, conv.UserMessage, conv.BotResponse, conv.Sentiment, conv.Source, conv.KnowledgeID, conv.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *ConversationRepository) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.Conversation, error) {
	query := squirrel.Select("id", "chatbot_id", "user_message", "bot_response", "sentiment", "source", "knowledge_id", "created_at").
		From("conversations").
		Where(squirrel.Eq{"chatbot_id": chatbotID}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []*models.Conversation
	for rows.Next() {
		var conv models.Conversation
		if err := rows.Scan(
			&conv.ID, &conv.ChatbotID, &conv.UserMessage, &conv.BotResponse,
			&conv.Sentiment, &conv.Source, &conv.KnowledgeID, &conv.CreatedAt,
		); err != nil {
			return nil, err
		}
		conversations = append(conversations, &conv)
	}

	return conversations, rows.Err()
}

func (r *ConversationRepository) CountByChatbot(ctx context.Context, chatbotID uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("conversations").
		Where(squirrel.Eq{"chatbot_id": chatbotID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListSentiments returns the non-empty sentiment labels for a chatbot; the
// dashboard score is computed in the service layer.
func (r *ConversationRepository) ListSentiments(ctx context.Context, chatbotID uuid.UUID) ([]string, error) {
	query := squirrel.Select("sentiment").
		From("conversations").
		Where(squirrel.Eq{"chatbot_id": chatbotID}).
		Where(squirrel.NotEq{"sentiment": ""}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sentiments []string
	for rows.Next() {
		var sentiment string
		if err := rows.Scan(&sentiment); err != nil {
			return nil, err
		}
		sentiments = append(sentiments, sentiment)
	}

	return sentiments, rows.Err()
}

func (r *ConversationRepository) DeleteByChatbot(ctx context.Context, chatbotID uuid.UUID) error {
	query := squirrel.Delete("conversations").
		Where(squirrel.Eq{"chatbot_id": chatbotID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
