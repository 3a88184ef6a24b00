package main

import (
	"context"
	"errors"
	"log"
	"time"

	"asisten-wira/internal/models"
	"asisten-wira/internal/repository"
	"asisten-wira/pkg/auth"
	"asisten-wira/pkg/config"
	"asisten-wira/pkg/logger"
	"asisten-wira/pkg/postgres"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Seeds a demo owner account and a demo chatbot for a warung kopi with a
// small knowledge base. Safe to run repeatedly: the demo user is matched by
// email and the demo chatbot by name.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	chatbotRepo := repository.NewChatbotRepository(db, appLogger)
	knowledgeRepo := repository.NewKnowledgeRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	owner, err := findOrCreateDemoUser(ctx, userRepo)
	if err != nil {
		appLogger.Fatal("Failed to seed demo user", zap.Error(err))
	}
	appLogger.Info("Demo user ready", zap.String("email", owner.Email))

	bot, err := findOrCreateDemoChatbot(ctx, chatbotRepo, owner.ID)
	if err != nil {
		appLogger.Fatal("Failed to seed demo chatbot", zap.Error(err))
	}
	appLogger.Info("Demo chatbot ready", zap.String("chatbot_id", bot.ID.String()))

	if err := seedKnowledgeBase(ctx, knowledgeRepo, bot.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed knowledge base", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

const (
	demoChatbotName = "Asisten Warung Kopi Barokah"
	demoUserEmail   = "demo@asistenwira.id"
)

func findOrCreateDemoUser(ctx context.Context, repo *repository.UserRepository) (*models.User, error) {
	user, err := repo.GetByEmail(ctx, demoUserEmail)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hashed, err := auth.HashPassword("demo12345")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user = &models.User{
		ID:           uuid.New(),
		Email:        demoUserEmail,
		Password:     hashed,
		FullName:     "Pemilik Warung Demo",
		BusinessName: "Warung Kopi Barokah",
		Industry:     "food-beverage",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func findOrCreateDemoChatbot(ctx context.Context, repo *repository.ChatbotRepository, ownerID uuid.UUID) (*models.Chatbot, error) {
	bots, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, bot := range bots {
		if bot.Name == demoChatbotName {
			return bot, nil
		}
	}

	now := time.Now()
	bot := &models.Chatbot{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        demoChatbotName,
		Description: "Chatbot demo untuk warung kopi",
		Industry:    "food-beverage",
		IsActive:    true,
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, bot); err != nil {
		return nil, err
	}
	return bot, nil
}

func seedKnowledgeBase(ctx context.Context, repo *repository.KnowledgeRepository, chatbotID uuid.UUID, appLogger *zap.Logger) error {
	entries := []struct {
		title    string
		content  string
		keywords string
		category string
	}{
		{
			title:    "Daftar Harga",
			content:  "Harga mulai dari Rp 15.000 untuk kopi susu dan Rp 10.000 untuk kopi hitam. Menu lengkap tersedia di kasir.",
			keywords: "harga, berapa, biaya, tarif",
			category: "pricing",
		},
		{
			title:    "Jam Operasional",
			content:  "Kami buka setiap hari pukul 08.00 sampai 22.00 WIB.",
			keywords: "jam, buka, tutup, operasional",
			category: "general",
		},
		{
			title:    "Lokasi",
			content:  "Warung Kopi Barokah berada di Jl. Merdeka No. 12, Yogyakarta. Dekat alun-alun utara.",
			keywords: "lokasi, alamat, dimana, maps",
			category: "general",
		},
		{
			title:    "Pembayaran",
			content:  "Kami menerima pembayaran tunai, QRIS, dan transfer bank.",
			keywords: "bayar, pembayaran, qris, transfer",
			category: "payment",
		},
	}

	existing, err := repo.ListByChatbot(ctx, chatbotID)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, item := range existing {
		seen[item.Title] = true
	}

	now := time.Now()
	for _, entry := range entries {
		if seen[entry.title] {
			appLogger.Info("Knowledge item already seeded, skipping", zap.String("title", entry.title))
			continue
		}

		item := &models.KnowledgeItem{
			ID:        uuid.New(),
			ChatbotID: chatbotID,
			Title:     entry.title,
			Content:   entry.content,
			Keywords:  entry.keywords,
			Category:  entry.category,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repo.Create(ctx, item); err != nil {
			return err
		}
		appLogger.Info("Seeded knowledge item", zap.String("title", entry.title))
	}

	return nil
}
