package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	ChatbotID string `json:"chatbot_id" validate:"required"`
	ChatMode  string `json:"chat_mode"`
}

// ChatResponse is the chat contract: apology replies are still Success=true
// with HTTP 200; only transport and validation failures surface as errors.
type ChatResponse struct {
	Success        bool    `json:"success"`
	Response       string  `json:"response"`
	Confidence     float64 `json:"confidence"`
	Sentiment      string  `json:"sentiment"`
	Source         string  `json:"source"`
	IsHoaxDetected bool    `json:"is_hoax_detected"`
}

type ConversationResponse struct {
	ID          string `json:"id"`
	ChatbotID   string `json:"chatbot_id"`
	UserMessage string `json:"user_message"`
	BotResponse string `json:"bot_response"`
	Sentiment   string `json:"sentiment"`
	Source      string `json:"source"`
	KnowledgeID string `json:"knowledge_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}
