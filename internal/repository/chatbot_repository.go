package repository

import (
	"context"

	"asisten-wira/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const chatbotColumns = "id, user_id, name, description, industry, is_active, deployment_url, status, created_at, updated_at"

type ChatbotRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewChatbotRepository(db *pgxpool.Pool, logger *zap.Logger) *ChatbotRepository {
	return &ChatbotRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ChatbotRepository) Create(ctx context.Context, bot *models.Chatbot) error {
	query := squirrel.Insert("chatbots").
		Columns("id", "user_id", "name", "description", "industry", "is_active", "deployment_url", "status", "created_at", "updated_at").
		Values(bot.ID, bot.UserID, bot.Name, bot.Description, bot.Industry, bot.IsActive, bot.DeploymentURL, bot.Status, bot.CreatedAt, bot.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByOwner returns the chatbot only if it belongs to userID. Another
// tenant's chatbot is indistinguishable from a missing one.
func (r *ChatbotRepository) GetByOwner(ctx context.Context, id, userID uuid.UUID) (*models.Chatbot, error) {
	query := squirrel.Select(chatbotColumns).
		From("chatbots").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var bot models.Chatbot
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&bot.ID, &bot.UserID, &bot.Name, &bot.Description, &bot.Industry, &bot.IsActive,
		&bot.DeploymentURL, &bot.Status, &bot.CreatedAt, &bot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &bot, nil
}

// ListByOwner returns the owner's chatbots, newest first, matching the
// dashboard ordering.
func (r *ChatbotRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]*models.Chatbot, error) {
	query := squirrel.Select(chatbotColumns).
		From("chatbots").
		Where(squirrel.Eq{"user_id": userID}).
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

	var bots []*models.Chatbot
	for rows.Next() {
		var bot models.Chatbot
		if err := rows.Scan(
			&bot.ID, &bot.UserID, &bot.Name, &bot.Description, &bot.Industry, &bot.IsActive,
			&bot.DeploymentURL, &bot.Status, &bot.CreatedAt, &bot.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bots = append(bots, &bot)
	}

	return bots, rows.Err()
}

func (r *ChatbotRepository) Update(ctx context.Context, bot *models.Chatbot) error {
	query := squirrel.Update("chatbots").
		Set("name", bot.Name).
		Set("description", bot.Description).
		Set("industry", bot.Industry).
		Set("is_active", bot.IsActive).
		Set("deployment_url", bot.DeploymentURL).
		Set("status", bot.Status).
		Set("updated_at", bot.UpdatedAt).
		Where(squirrel.Eq{"id": bot.ID, "user_id": bot.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ChatbotRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := squirrel.Delete("chatbots").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
