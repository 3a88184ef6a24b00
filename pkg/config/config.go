package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	AI       AIConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey  string
	Expiration time.Duration
	RefreshExp time.Duration
}

// AIConfig selects and configures the inference provider. Exactly one
// provider serves a deployment; there is no mid-request provider swap.
type AIConfig struct {
	Provider         string // replicate | huggingface | watsonx
	ReplicateToken   string
	ReplicateModel   string
	HuggingFaceToken string
	HuggingFaceModel string
	WatsonxAPIKey    string
	WatsonxBaseURL   string
	WatsonxModel     string
	PollInterval     time.Duration
	PollMaxAttempts  int
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine: plain environment variables work for Docker/K8s.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	jwtExp, _ := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "60"))
	refreshExp, _ := strconv.Atoi(getEnv("REFRESH_TOKEN_EXPIRE_HOURS", "168"))
	pollInterval, _ := strconv.Atoi(getEnv("AI_POLL_INTERVAL_SECONDS", "2"))
	pollAttempts, _ := strconv.Atoi(getEnv("AI_POLL_MAX_ATTEMPTS", "60"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "asisten_wira"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey:  getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			Expiration: time.Duration(jwtExp) * time.Minute,
			RefreshExp: time.Duration(refreshExp) * time.Hour,
		},
		AI: AIConfig{
			Provider:         getEnv("AI_PROVIDER", "huggingface"),
			ReplicateToken:   getEnv("REPLICATE_API_TOKEN", ""),
			ReplicateModel:   getEnv("REPLICATE_MODEL", "ibm-granite/granite-3.3-8b-instruct"),
			HuggingFaceToken: getEnv("HUGGINGFACE_API_TOKEN", ""),
			HuggingFaceModel: getEnv("HUGGINGFACE_MODEL", "openai/gpt-oss-20b:fireworks-ai"),
			WatsonxAPIKey:    getEnv("IBM_ORCHESTRATE_API_KEY", ""),
			WatsonxBaseURL:   getEnv("IBM_ORCHESTRATE_BASE_URL", ""),
			WatsonxModel:     getEnv("IBM_ORCHESTRATE_MODEL", "ibm-granite-3.3-8b-instruct"),
			PollInterval:     time.Duration(pollInterval) * time.Second,
			PollMaxAttempts:  pollAttempts,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
