package repository

import (
	"context"

	"asisten-wira/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const knowledgeColumns = "id, chatbot_id, title, content, keywords, category, is_active, created_at, updated_at"

type KnowledgeRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *KnowledgeRepository) Create(ctx context.Context, item *models.KnowledgeItem) error {
	query := squirrel.Insert("knowledge_base").
		Columns("id", "chatbot_id", "title", "content", "keywords", "category", "is_active", "created_at", "updated_at").
		Values(item.ID, item.ChatbotID, item.Title, item.Content, item.Keywords, item.Category, item.IsActive, item.CreatedAt, item.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeItem, error) {
	query := squirrel.Select(knowledgeColumns).
		From("knowledge_base").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var item models.KnowledgeItem
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&item.ID, &item.ChatbotID, &item.Title, &item.Content, &item.Keywords,
		&item.Category, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// ListByChatbot returns every item for the editor view, newest first.
func (r *KnowledgeRepository) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error) {
	return r.list(ctx, squirrel.Eq{"chatbot_id": chatbotID}, "created_at DESC")
}

// ListActiveByChatbot returns matching candidates in insertion order, which
// is the tie-break the matcher relies on: first match wins.
func (r *KnowledgeRepository) ListActiveByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error) {
	return r.list(ctx, squirrel.Eq{"chatbot_id": chatbotID, "is_active": true}, "created_at ASC")
}

func (r *KnowledgeRepository) list(ctx context.Context, where squirrel.Eq, order string) ([]*models.KnowledgeItem, error) {
	query := squirrel.Select(knowledgeColumns).
		From("knowledge_base").
		Where(where).
		OrderBy(order).
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

	var items []*models.KnowledgeItem
	for rows.Next() {
		var item models.KnowledgeItem
		if err := rows.Scan(
			&item.ID, &item.ChatbotID, &item.Title, &item.Content, &item.Keywords,
			&item.Category, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &item)
	}

	return items, rows.Err()
}

func (r *KnowledgeRepository) Update(ctx context.Context, item *models.KnowledgeItem) error {
	query := squirrel.Update("knowledge_base").
		Set("title", item.Title).
		Set("content", item.Content).
		Set("keywords", item.Keywords).
		Set("category", item.Category).
		Set("is_active", item.IsActive).
		Set("updated_at", item.UpdatedAt).
		Where(squirrel.Eq{"id": item.ID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := squirrel.Delete("knowledge_base").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) DeleteByChatbot(ctx context.Context, chatbotID uuid.UUID) error {
	query := squirrel.Delete("knowledge_base").
		Where(squirrel.Eq{"chatbot_id": chatbotID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *KnowledgeRepository) CountByChatbot(ctx context.Context, chatbotID uuid.UUID) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("knowledge_base").
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
