package service

import (
	"strings"

	"asisten-wira/internal/models"
)

// Matcher decides whether a knowledge item answers an utterance.
type Matcher interface {
	Match(utterance string, items []*models.KnowledgeItem) *models.KnowledgeItem
}

// KeywordMatcher is the deterministic first tier of response resolution:
// case-insensitive substring tests against each item's comma-separated
// keywords, with the title and content acting as implicit keywords. No
// tokenization, stemming or fuzzy matching; the first match in store order
// wins.
type KeywordMatcher struct{}

func (KeywordMatcher) Match(utterance string, items []*models.KnowledgeItem) *models.KnowledgeItem {
	normalized := strings.ToLower(utterance)

	for _, item := range items {
		if !item.IsActive {
			continue
		}
		if matchesItem(normalized, item) {
			return item
		}
	}

	return nil
}

func matchesItem(utterance string, item *models.KnowledgeItem) bool {
	for _, keyword := range strings.Split(item.Keywords, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && strings.Contains(utterance, keyword) {
			return true
		}
	}

	if title := strings.ToLower(strings.TrimSpace(item.Title)); title != "" && strings.Contains(utterance, title) {
		return true
	}
	if content := strings.ToLower(strings.TrimSpace(item.Content)); content != "" && strings.Contains(utterance, content) {
		return true
	}

	return false
}
