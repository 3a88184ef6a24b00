package service

import (
	"context"
	"errors"
	"time"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrKnowledgeNotFound = errors.New("knowledge item not found")

// KnowledgeStore is the knowledge-base persistence surface for the editor.
type KnowledgeStore interface {
	Create(ctx context.Context, item *models.KnowledgeItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeItem, error)
	ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error)
	Update(ctx context.Context, item *models.KnowledgeItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type KnowledgeService struct {
	store  KnowledgeStore
	logger *zap.Logger
}

func NewKnowledgeService(store KnowledgeStore, logger *zap.Logger) *KnowledgeService {
	return &KnowledgeService{
		store:  store,
		logger: logger,
	}
}

func (s *KnowledgeService) Create(ctx context.Context, req *dto.CreateKnowledgeRequest) (*models.KnowledgeItem, error) {
	chatbotID, err := uuid.Parse(req.ChatbotID)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == "" {
		category = "general"
	}

	now := time.Now()
	item := &models.KnowledgeItem{
		ID:        uuid.New(),
		ChatbotID: chatbotID,
		Title:     req.Title,
		Content:   req.Content,
		Keywords:  req.Keywords,
		Category:  category,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *KnowledgeService) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error) {
	return s.store.ListByChatbot(ctx, chatbotID)
}

func (s *KnowledgeService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateKnowledgeRequest) (*models.KnowledgeItem, error) {
	item, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKnowledgeNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Content != "" {
		item.Content = req.Content
	}
	if req.Keywords != "" {
		item.Keywords = req.Keywords
	}
	if req.Category != "" {
		item.Category = req.Category
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.store.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *KnowledgeService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrKnowledgeNotFound
		}
		return err
	}
	return s.store.Delete(ctx, id)
}
