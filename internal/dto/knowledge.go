package dto

type CreateKnowledgeRequest struct {
	ChatbotID string `json:"chatbot_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Keywords  string `json:"keywords"`
	Category  string `json:"category"`
}

type UpdateKnowledgeRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Keywords string `json:"keywords"`
	Category string `json:"category"`
	IsActive *bool  `json:"is_active"`
}

type KnowledgeResponse struct {
	ID        string `json:"id"`
	ChatbotID string `json:"chatbot_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Keywords  string `json:"keywords"`
	Category  string `json:"category"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
