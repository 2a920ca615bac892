package infra

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	APIKey        string
	Provider      string
	Model         string
	GeminiBaseURL string
	Port          string
	FrontendDir   string
}

// LoadConfig reads the process environment (optionally seeded from .env).
// A missing GOOGLE_API_KEY is fatal: without it every generation attempt
// would fail anyway.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		log.Fatal("GOOGLE_API_KEY is not set; add it to .env or the environment")
	}

	cfg := &Config{
		APIKey:        apiKey,
		Provider:      os.Getenv("GENERATOR_PROVIDER"),
		Model:         os.Getenv("GENERATOR_MODEL"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),
		Port:          os.Getenv("PORT"),
		FrontendDir:   os.Getenv("FRONTEND_DIR"),
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.FrontendDir == "" {
		cfg.FrontendDir = "frontend"
	}

	return cfg
}
