package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI          string
	DBName            string
	JWTSecret         string
	AdminPasswordHash string
	AccessTokenTTL    time.Duration
	WhatsAppNumber    string
	AssistantAPIURL   string
	AssistantAPIKey   string
	AssistantTimeout  time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:          getEnvOrDefault("MONGO_URI", ""),
		DBName:            getEnvOrDefault("DB_NAME", "darpanwears"),
		JWTSecret:         getEnvOrDefault("JWT_SECRET", ""),
		AdminPasswordHash: getEnvOrDefault("ADMIN_PASSWORD_HASH", ""),
		AccessTokenTTL:    getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		WhatsAppNumber:    getEnvOrDefault("WHATSAPP_NUMBER", "919332307996"),
		AssistantAPIURL:   getEnvOrDefault("ASSISTANT_API_URL", ""),
		AssistantAPIKey:   getEnvOrDefault("ASSISTANT_API_KEY", ""),
		AssistantTimeout:  getDurationEnv("ASSISTANT_TIMEOUT", 30, time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
