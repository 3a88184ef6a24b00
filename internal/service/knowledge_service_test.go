package service

import (
	"context"
	"testing"

	"asisten-wira/internal/dto"
	"asisten-wira/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeKnowledgeStore struct {
	items   map[uuid.UUID]*models.KnowledgeItem
	deleted []uuid.UUID
}

func newFakeKnowledgeStore(items ...*models.KnowledgeItem) *fakeKnowledgeStore {
	store := &fakeKnowledgeStore{items: make(map[uuid.UUID]*models.KnowledgeItem)}
	for _, item := range items {
		store.items[item.ID] = item
	}
	return store
}

func (s *fakeKnowledgeStore) Create(ctx context.Context, item *models.KnowledgeItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *fakeKnowledgeStore) GetByID(ctx context.Context, id uuid.UUID) (*models.KnowledgeItem, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return item, nil
}

func (s *fakeKnowledgeStore) ListByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error) {
	var items []*models.KnowledgeItem
	for _, item := range s.items {
		if item.ChatbotID == chatbotID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *fakeKnowledgeStore) Update(ctx context.Context, item *models.KnowledgeItem) error {
	s.items[item.ID] = item
	return nil
}

func (s *fakeKnowledgeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.items, id)
	return nil
}

func TestKnowledgeServiceCreateDefaults(t *testing.T) {
	store := newFakeKnowledgeStore()
	svc := NewKnowledgeService(store, zap.NewNop())

	item, err := svc.Create(context.Background(), &dto.CreateKnowledgeRequest{
		ChatbotID: uuid.NewString(),
		Title:     "Daftar Harga",
		Content:   "Harga mulai 50rb",
	})
	require.NoError(t, err)
	assert.Equal(t, "general", item.Category, "empty category defaults to general")
	assert.True(t, item.IsActive, "new items start active")
}

func TestKnowledgeServiceCreateRejectsBadChatbotID(t *testing.T) {
	svc := NewKnowledgeService(newFakeKnowledgeStore(), zap.NewNop())

	_, err := svc.Create(context.Background(), &dto.CreateKnowledgeRequest{
		ChatbotID: "not-a-uuid",
		Title:     "x",
		Content:   "y",
	})
	assert.Error(t, err)
}

func TestKnowledgeServiceUpdateMergesFields(t *testing.T) {
	item := knowledgeItem("Daftar Harga", "Harga mulai 50rb", "harga")
	item.Category = "pricing"
	store := newFakeKnowledgeStore(item)
	svc := NewKnowledgeService(store, zap.NewNop())

	inactive := false
	updated, err := svc.Update(context.Background(), item.ID, &dto.UpdateKnowledgeRequest{
		Content:  "Harga mulai 60rb",
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Daftar Harga", updated.Title, "empty title keeps the old value")
	assert.Equal(t, "Harga mulai 60rb", updated.Content)
	assert.Equal(t, "pricing", updated.Category)
	assert.False(t, updated.IsActive)
}

func TestKnowledgeServiceUpdateUnknownItem(t *testing.T) {
	svc := NewKnowledgeService(newFakeKnowledgeStore(), zap.NewNop())

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateKnowledgeRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrKnowledgeNotFound)
}

func TestKnowledgeServiceDelete(t *testing.T) {
	item := knowledgeItem("Daftar Harga", "Harga mulai 50rb", "harga")
	store := newFakeKnowledgeStore(item)
	svc := NewKnowledgeService(store, zap.NewNop())

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	assert.Equal(t, []uuid.UUID{item.ID}, store.deleted)

	assert.ErrorIs(t, svc.Delete(context.Background(), item.ID), ErrKnowledgeNotFound)
}
