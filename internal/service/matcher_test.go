package service

import (
	"testing"

	"asisten-wira/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func knowledgeItem(title, content, keywords string) *models.KnowledgeItem {
	return &models.KnowledgeItem{
		ID:       uuid.New(),
		Title:    title,
		Content:  content,
		Keywords: keywords,
		IsActive: true,
	}
}

func TestKeywordMatcherMatchesKeyword(t *testing.T) {
	items := []*models.KnowledgeItem{
		knowledgeItem("Daftar Harga", "Harga mulai 50rb", "harga, biaya, tarif"),
	}

	matched := KeywordMatcher{}.Match("Berapa harga nya?", items)
	require.NotNil(t, matched)
	assert.Equal(t, "Daftar Harga", matched.Title)
}

func TestKeywordMatcherIsCaseInsensitive(t *testing.T) {
	items := []*models.KnowledgeItem{
		knowledgeItem("Promo", "Diskon 10%", "PROMO, Diskon"),
	}

	assert.NotNil(t, KeywordMatcher{}.Match("ada promo apa?", items))
	assert.NotNil(t, KeywordMatcher{}.Match("ADA DISKON?", items))
}

func TestKeywordMatcherTrimsKeywordTokens(t *testing.T) {
	items := []*models.KnowledgeItem{
		knowledgeItem("Lokasi", "Jl. Merdeka No. 12", "  lokasi ,   alamat  "),
	}

	assert.NotNil(t, KeywordMatcher{}.Match("alamat toko dimana?", items))
}

func TestKeywordMatcherSkipsEmptyTokens(t *testing.T) {
	// A dangling comma must not produce a match-everything token.
	items := []*models.KnowledgeItem{
		knowledgeItem("Promo", "Diskon 10%", "promo,, ,"),
	}

	assert.Nil(t, KeywordMatcher{}.Match("jam buka toko", items))
	assert.NotNil(t, KeywordMatcher{}.Match("ada promo?", items))
}

func TestKeywordMatcherUsesTitleAndContentAsImplicitKeywords(t *testing.T) {
	items := []*models.KnowledgeItem{
		knowledgeItem("ongkir", "gratis antar", ""),
	}

	assert.NotNil(t, KeywordMatcher{}.Match("berapa ongkir ke kota?", items), "title should match")
	assert.NotNil(t, KeywordMatcher{}.Match("apakah gratis antar?", items), "content should match")
}

func TestKeywordMatcherSkipsInactiveItems(t *testing.T) {
	inactive := knowledgeItem("Promo", "Diskon 10%", "promo")
	inactive.IsActive = false

	assert.Nil(t, KeywordMatcher{}.Match("ada promo?", []*models.KnowledgeItem{inactive}))
}

func TestKeywordMatcherFirstMatchWins(t *testing.T) {
	first := knowledgeItem("Harga Kopi", "Kopi 10rb", "harga")
	second := knowledgeItem("Harga Teh", "Teh 8rb", "harga")

	matched := KeywordMatcher{}.Match("berapa harga?", []*models.KnowledgeItem{first, second})
	require.NotNil(t, matched)
	assert.Equal(t, first.ID, matched.ID)
}

func TestKeywordMatcherNoMatch(t *testing.T) {
	items := []*models.KnowledgeItem{
		knowledgeItem("Daftar Harga", "Harga mulai 50rb", "harga"),
	}

	assert.Nil(t, KeywordMatcher{}.Match("kirim kemana ya?", items))
	assert.Nil(t, KeywordMatcher{}.Match("halo", nil))
}
