package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	ModelDir            string
	ConfidenceThreshold float64
	TelegramToken       string
	TelegramChatID      int64
}

func Load() (*Config, error) {
	// Load .env if present, ignore when it is not.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                getEnv("PORT", "8000"),
		ModelDir:            getEnv("MODEL_DIR", "./models"),
		ConfidenceThreshold: getEnvFloat("CONFIDENCE_THRESHOLD", 0.5),
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:      getEnvInt64("TELEGRAM_CHAT_ID", 0),
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}
