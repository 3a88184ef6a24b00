package dto

type CreateChatbotRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Industry    string `json:"industry"`
}

type UpdateChatbotRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description"`
	Industry      string `json:"industry"`
	IsActive      *bool  `json:"is_active"`
	DeploymentURL string `json:"deployment_url"`
	Status        string `json:"status"`
}

type ChatbotResponse struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Industry           string `json:"industry"`
	IsActive           bool   `json:"is_active"`
	DeploymentURL      string `json:"deployment_url,omitempty"`
	Status             string `json:"status,omitempty"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
	KnowledgeBaseSize  int    `json:"knowledge_base_size"`
	TotalConversations int    `json:"total_conversations"`
	SentimentScore     int    `json:"sentiment_score"`
}
