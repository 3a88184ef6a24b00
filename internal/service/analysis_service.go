package service

import (
	"math"
	"strings"

	"asisten-wira/internal/models"

	"go.uber.org/zap"
)

// Indonesian marketing-scam phrases. Two or more in one message is treated
// as a hoax; a single hit is only flagged as suspicious.
var hoaxIndicators = []string{
	"gratis",
	"menang",
	"jutaan",
	"klik sekarang",
	"terbatas",
	"segera",
	"jangan sampai terlewat",
	"kesempatan emas",
	"hadiah",
	"promo terbatas",
	"100% gratis",
}

// chatHoaxTriggers gates the hoax check on the chat path: only messages
// carrying a link or one of these words are screened at all.
var chatHoaxTriggers = []string{"gratis", "menang", "jutaan"}

var (
	positiveWords = []string{"bagus", "senang", "puas", "recommended", "mantap", "suka"}
	negativeWords = []string{"buruk", "kecewa", "jelek", "lambat", "mahal", "tidak suka"}
)

// HoaxVerdict is the outcome of the hoax screen.
type HoaxVerdict struct {
	IsHoax      bool
	Confidence  float64
	Explanation string
}

// SentimentVerdict labels a text with a lexicon-based sentiment.
type SentimentVerdict struct {
	Sentiment  string
	Confidence float64
}

// AnalysisService runs the standalone text-analysis tools: hoax screening
// and sentiment labeling. Both are deterministic keyword scans, so they
// work with no provider configured and never fail.
type AnalysisService struct {
	logger *zap.Logger
}

func NewAnalysisService(logger *zap.Logger) *AnalysisService {
	return &AnalysisService{logger: logger}
}

func (s *AnalysisService) DetectHoax(text string) *HoaxVerdict {
	verdict := DetectHoax(text)
	if verdict.IsHoax {
		s.logger.Info("Hoax indicators found", zap.String("explanation", verdict.Explanation))
	}
	return verdict
}

func (s *AnalysisService) AnalyzeSentiment(text string) *SentimentVerdict {
	return AnalyzeSentiment(text)
}

// DetectHoax scans for known scam phrases. Confidence grows with the number
// of matched indicators, capped at 0.95.
func DetectHoax(text string) *HoaxVerdict {
	lowered := strings.ToLower(text)

	var matched []string
	for _, indicator := range hoaxIndicators {
		if strings.Contains(lowered, indicator) {
			matched = append(matched, indicator)
		}
	}

	switch {
	case len(matched) >= 2:
		return &HoaxVerdict{
			IsHoax:      true,
			Confidence:  math.Min(0.95, 0.6+float64(len(matched))*0.1),
			Explanation: "Terdeteksi indikator hoax: " + strings.Join(matched, ", "),
		}
	case len(matched) == 1:
		return &HoaxVerdict{
			IsHoax:      true,
			Confidence:  0.7,
			Explanation: "Terdeteksi indikator mencurigakan: " + matched[0],
		}
	default:
		return &HoaxVerdict{
			IsHoax:      false,
			Confidence:  0.8,
			Explanation: "Tidak terdeteksi indikator hoax",
		}
	}
}

// AnalyzeSentiment counts lexicon hits on both sides; the majority wins and
// a tie is neutral.
func AnalyzeSentiment(text string) *SentimentVerdict {
	lowered := strings.ToLower(text)

	var positives, negatives int
	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			positives++
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lowered, word) {
			negatives++
		}
	}

	switch {
	case positives > negatives:
		return &SentimentVerdict{
			Sentiment:  models.SentimentPositive,
			Confidence: math.Min(0.8, 0.5+float64(positives)*0.1),
		}
	case negatives > positives:
		return &SentimentVerdict{
			Sentiment:  models.SentimentNegative,
			Confidence: math.Min(0.8, 0.5+float64(negatives)*0.1),
		}
	default:
		return &SentimentVerdict{
			Sentiment:  models.SentimentNeutral,
			Confidence: 0.6,
		}
	}
}

// suspiciousChatMessage reports whether a chat message warrants the hoax
// screen: it carries a link or one of the high-signal trigger words.
func suspiciousChatMessage(message string) bool {
	lowered := strings.ToLower(message)
	if strings.Contains(lowered, "http") {
		return true
	}
	for _, trigger := range chatHoaxTriggers {
		if strings.Contains(lowered, trigger) {
			return true
		}
	}
	return false
}
