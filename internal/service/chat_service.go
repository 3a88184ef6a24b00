package service

import (
	"context"

	"asisten-wira/internal/models"
	"asisten-wira/pkg/ai"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Policy constants of the resolver. The knowledge-base confidence is a
// fixed policy value, not a measurement.
const (
	kbMatchConfidence   = 0.95
	kbMissConfidence    = 0.3
	aiFailureConfidence = 0.2
)

// Canned degraded replies, in the product's language. The chat contract
// never hard-fails: every failure path degrades to one of these.
const (
	replyNoKnowledge = "Maaf, saya tidak memiliki informasi tentang hal tersebut dalam knowledge base. " +
		"Silakan hubungi admin untuk menambahkan informasi yang diperlukan."
	replyAIUnavailable = "Maaf, AI service sedang tidak tersedia. Silakan coba lagi nanti."
	replyHybridUnavailable = "Maaf, saya tidak memiliki informasi tentang hal tersebut dan AI service sedang tidak tersedia. " +
		"Silakan hubungi admin untuk bantuan."
)

// ChatResult is the resolver's finalized reply plus metadata. HoaxDetected
// flags suspicious visitor messages; the reply is produced either way.
type ChatResult struct {
	Reply        string
	Confidence   float64
	Sentiment    string
	Source       string
	KnowledgeID  *uuid.UUID
	HoaxDetected bool
}

// KnowledgeLister loads a tenant's matching candidates.
type KnowledgeLister interface {
	ListActiveByChatbot(ctx context.Context, chatbotID uuid.UUID) ([]*models.KnowledgeItem, error)
}

// ExchangeLogger persists a resolved exchange, best effort. The resolver
// ignores its error: the reply is finalized before logging is attempted.
type ExchangeLogger interface {
	Log(ctx context.Context, chatbotID uuid.UUID, userMessage string, result *ChatResult) error
}

// ChatService orchestrates the two-tier response resolution: deterministic
// knowledge lookup first, generative fallback second, per the selected mode.
type ChatService struct {
	knowledge KnowledgeLister
	matcher   Matcher
	gateway   ai.Gateway
	recorder  ExchangeLogger
	logger    *zap.Logger
}

func NewChatService(knowledge KnowledgeLister, matcher Matcher, gateway ai.Gateway, recorder ExchangeLogger, logger *zap.Logger) *ChatService {
	return &ChatService{
		knowledge: knowledge,
		matcher:   matcher,
		gateway:   gateway,
		recorder:  recorder,
		logger:    logger,
	}
}

// Resolve produces exactly one reply for the utterance. It never returns an
// error: provider and persistence failures degrade to canned replies with
// low confidence.
func (s *ChatService) Resolve(ctx context.Context, chatbotID uuid.UUID, message string, mode ChatMode) *ChatResult {
	var matched *models.KnowledgeItem
	if mode != ModeAI {
		matched = s.findKnowledgeMatch(ctx, chatbotID, message)
	}

	var result *ChatResult
	switch mode {
	case ModeKnowledgeBase:
		if matched != nil {
			result = knowledgeResult(matched)
		} else {
			result = &ChatResult{
				Reply:      replyNoKnowledge,
				Confidence: kbMissConfidence,
				Sentiment:  models.SentimentNeutral,
				Source:     models.SourceAIService,
			}
		}

	case ModeAI:
		result = s.askGateway(ctx, message, replyAIUnavailable)

	default: // ModeHybrid
		if matched != nil {
			result = knowledgeResult(matched)
		} else {
			result = s.askGateway(ctx, message, replyHybridUnavailable)
		}
	}

	// Screen suspicious messages for scam phrases. The verdict only marks
	// the result; the reply above stands regardless.
	if suspiciousChatMessage(message) {
		if verdict := DetectHoax(message); verdict.IsHoax {
			result.HoaxDetected = true
			s.logger.Warn("Hoax indicators in chat message",
				zap.String("chatbot_id", chatbotID.String()),
				zap.String("explanation", verdict.Explanation),
			)
		}
	}

	// Best-effort logging: the reply above is already final, so a failed
	// insert is reported by the logger itself and otherwise ignored.
	_ = s.recorder.Log(ctx, chatbotID, message, result)

	return result
}

func (s *ChatService) findKnowledgeMatch(ctx context.Context, chatbotID uuid.UUID, message string) *models.KnowledgeItem {
	items, err := s.knowledge.ListActiveByChatbot(ctx, chatbotID)
	if err != nil {
		// A failed read is treated as an empty knowledge base.
		s.logger.Warn("Knowledge base read failed",
			zap.String("chatbot_id", chatbotID.String()),
			zap.Error(err),
		)
		return nil
	}

	return s.matcher.Match(message, items)
}

func (s *ChatService) askGateway(ctx context.Context, message, degradedReply string) *ChatResult {
	completion, err := s.gateway.Complete(ctx, message, nil)
	if err != nil {
		s.logger.Warn("Inference gateway failed",
			zap.String("provider", s.gateway.Name()),
			zap.Bool("timeout", ai.IsTimeout(err)),
			zap.Error(err),
		)
		return &ChatResult{
			Reply:      degradedReply,
			Confidence: aiFailureConfidence,
			Sentiment:  models.SentimentNegative,
			Source:     models.SourceAIService,
		}
	}

	return &ChatResult{
		Reply:      completion.Text,
		Confidence: completion.Confidence,
		Sentiment:  completion.Sentiment,
		Source:     models.SourceAIService,
	}
}

func knowledgeResult(item *models.KnowledgeItem) *ChatResult {
	id := item.ID
	return &ChatResult{
		Reply:       item.Content,
		Confidence:  kbMatchConfidence,
		Sentiment:   models.SentimentPositive,
		Source:      models.SourceKnowledgeBase,
		KnowledgeID: &id,
	}
}
