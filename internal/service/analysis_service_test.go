package service

import (
	"testing"

	"asisten-wira/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestDetectHoax(t *testing.T) {
	cases := []struct {
		name            string
		text            string
		wantHoax        bool
		wantConfidence  float64
		wantExplanation string
	}{
		{
			name:            "clean text",
			text:            "Jam buka warung berapa ya?",
			wantHoax:        false,
			wantConfidence:  0.8,
			wantExplanation: "Tidak terdeteksi indikator hoax",
		},
		{
			name:            "single indicator is suspicious",
			text:            "Ada promo gratis hari ini?",
			wantHoax:        true,
			wantConfidence:  0.7,
			wantExplanation: "Terdeteksi indikator mencurigakan: gratis",
		},
		{
			name:            "two indicators",
			text:            "Anda menang hadiah!",
			wantHoax:        true,
			wantConfidence:  0.8,
			wantExplanation: "Terdeteksi indikator hoax: menang, hadiah",
		},
		{
			name:           "many indicators cap at 0.95",
			text:           "100% gratis! Anda menang jutaan, klik sekarang, kesempatan emas, hadiah terbatas, segera!",
			wantHoax:       true,
			wantConfidence: 0.95,
		},
		{
			name:            "matching is case insensitive",
			text:            "MENANG HADIAH",
			wantHoax:        true,
			wantConfidence:  0.8,
			wantExplanation: "Terdeteksi indikator hoax: menang, hadiah",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := DetectHoax(tc.text)
			assert.Equal(t, tc.wantHoax, verdict.IsHoax)
			assert.InDelta(t, tc.wantConfidence, verdict.Confidence, 1e-9)
			if tc.wantExplanation != "" {
				assert.Equal(t, tc.wantExplanation, verdict.Explanation)
			}
		})
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	cases := []struct {
		name           string
		text           string
		wantSentiment  string
		wantConfidence float64
	}{
		{"positive majority", "Pelayanannya bagus dan saya puas", models.SentimentPositive, 0.7},
		{"negative majority", "Pengiriman lambat dan mahal", models.SentimentNegative, 0.7},
		{"no lexicon hits", "Saya pesan kopi susu", models.SentimentNeutral, 0.6},
		{"tidak suka hits both sides", "Saya tidak suka produk ini", models.SentimentNeutral, 0.6},
		{"confidence caps at 0.8", "bagus senang puas mantap recommended", models.SentimentPositive, 0.8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			verdict := AnalyzeSentiment(tc.text)
			assert.Equal(t, tc.wantSentiment, verdict.Sentiment)
			assert.InDelta(t, tc.wantConfidence, verdict.Confidence, 1e-9)
		})
	}
}

func TestSuspiciousChatMessage(t *testing.T) {
	assert.True(t, suspiciousChatMessage("cek link http://contoh.id"))
	assert.True(t, suspiciousChatMessage("Anda MENANG undian"))
	assert.True(t, suspiciousChatMessage("dapat jutaan rupiah"))
	assert.False(t, suspiciousChatMessage("berapa harga kopi susu"))
}
