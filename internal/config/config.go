package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// LLM provider configuration
	LLM LLMConfig

	// OCR configuration
	OCR OCRConfig

	// Storage configuration
	Storage StorageConfig

	// Upload configuration
	Upload UploadConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// LLMConfig holds settings for the OpenAI-compatible generation provider
type LLMConfig struct {
	// APIKey authenticates against the provider. OpenRouter accepts the
	// same OPENAI_API_KEY variable the OpenAI SDK uses.
	APIKey string

	// BaseURL points at an OpenAI-compatible endpoint.
	BaseURL string

	// Model overrides the per-capability default model when set.
	Model string

	// Timeout bounds a single generation call.
	Timeout time.Duration
}

// OCRConfig holds text-extraction settings
type OCRConfig struct {
	Language string
}

// StorageConfig holds article persistence settings
type StorageConfig struct {
	ArticlesFile string
}

// UploadConfig holds image upload settings
type UploadConfig struct {
	Dir     string
	MaxSize int64 // in bytes
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		LLM: LLMConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:   getEnv("LLM_MODEL", ""),
			Timeout: getDurationEnv("LLM_TIMEOUT", 60*time.Second),
		},
		OCR: OCRConfig{
			Language: getEnv("OCR_LANGUAGE", "eng"),
		},
		Storage: StorageConfig{
			ArticlesFile: getEnv("ARTICLES_FILE", "./data/articles.json"),
		},
		Upload: UploadConfig{
			Dir:     getEnv("UPLOAD_DIR", "./uploads"),
			MaxSize: getInt64Env("MAX_UPLOAD_SIZE", 10*1024*1024), // 10MB
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("OPENAI_BASE_URL is required")
	}
	if c.Storage.ArticlesFile == "" {
		return fmt.Errorf("ARTICLES_FILE is required")
	}
	return nil
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
