package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI. The API key is deliberately optional: a missing credential
	// surfaces as a configuration error on each chat request, and the
	// service still starts and answers health probes.
	GeminiAPIKey    string
	GeminiModel     string
	GeminiTimeoutMS int

	// Chat
	ChatHistoryWindow   int
	ChatMaxMessageChars int

	// Rate limiting
	ChatRatePerMinute int
	APIRatePerMinute  int

	// Redis (optional; empty means in-memory rate counters)
	RedisURL string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:                getEnvOrDefault("PORT", "8080"),
		Env:                 getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:        os.Getenv("GEMINI_API_KEY"),
		GeminiModel:         getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeoutMS:     getEnvAsIntOrDefault("GEMINI_TIMEOUT_MS", 15000),
		ChatHistoryWindow:   getEnvAsIntOrDefault("CHAT_HISTORY_WINDOW", 8),
		ChatMaxMessageChars: getEnvAsIntOrDefault("CHAT_MAX_MESSAGE_CHARS", 1000),
		ChatRatePerMinute:   getEnvAsIntOrDefault("CHAT_RATE_PER_MINUTE", 20),
		APIRatePerMinute:    getEnvAsIntOrDefault("API_RATE_PER_MINUTE", 100),
		RedisURL:            os.Getenv("REDIS_URL"),
		FrontendURL:         getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
