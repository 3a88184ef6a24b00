package dto

type HoaxDetectionRequest struct {
	Text string `json:"text" validate:"required"`
}

type HoaxDetectionResponse struct {
	Text        string  `json:"text"`
	IsHoax      bool    `json:"is_hoax"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

type SentimentAnalysisRequest struct {
	Text string `json:"text" validate:"required"`
}

type SentimentAnalysisResponse struct {
	Text       string  `json:"text"`
	Sentiment  string  `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}
