package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string
	RedisURL      string
	MongoURI      string
	MongoDB       string
	MerchantName  string
	WhatsAppPhone string
	CartTTL       time.Duration
}

func Load() Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8086"),
		Env:           getEnv("ENV", "development"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDB:       getEnv("MONGO_DB", "storefront"),
		MerchantName:  getEnv("MERCHANT_NAME", "Trattoria Demo"),
		WhatsAppPhone: getEnv("WHATSAPP_PHONE", "+5355555555"),
		CartTTL:       time.Hour * 24 * 7, // default 7 days
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
