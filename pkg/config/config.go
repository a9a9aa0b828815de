package config

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr     string
	RedisUsername string
	RedisPassword string
	RedisDB       string
	RedisTLS      bool

	JWTSecret string

	OpenRouterAPIKey string
	OpenRouterURL    string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env not found, using system values")
	}

	cfg := &Config{
		ServerPort: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "codingtracker"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisUsername: os.Getenv("REDIS_USERNAME"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnv("REDIS_DB", "0"),
		RedisTLS:      os.Getenv("REDIS_TLS") == "true",

		JWTSecret: os.Getenv("JWT_SECRET"),

		OpenRouterAPIKey: os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterURL:    getEnv("OPENROUTER_URL", "https://openrouter.ai/api/v1/chat/completions"),
	}

	// No fallback signing key: tokens signed with a well-known default
	// would be forgeable by anyone reading the source.
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
