package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Host            string
	Port            string
	LogLevel        string
	Environment     string
	CORSOrigins     string
	DefaultBrowser  string
	YouTubeAPIKey   string
	YTDLPPath       string
	TelegramBaseURL string
	HTTPTimeout     time.Duration
}

func Load() *Config {
	// Optional .env for local development; silently ignored when absent.
	_ = godotenv.Load()

	return &Config{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		CORSOrigins:     getEnv("CORS_ORIGINS", "*"),
		DefaultBrowser:  getEnv("BROWSER", ""),
		YouTubeAPIKey:   getEnv("YOUTUBE_API_KEY", ""),
		YTDLPPath:       getEnv("YTDLP_PATH", ""),
		TelegramBaseURL: getEnv("TELEGRAM_BASE_URL", "https://t.me"),
		HTTPTimeout:     getDurationEnv("HTTP_TIMEOUT", 20*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
