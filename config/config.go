package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the dashboard.
type Config struct {
	HTTPAddr        string
	ModelPath       string
	SessionSecret   string
	DatabaseURL     string
	GeminiAPIKey    string
	GeminiModel     string
	ShutdownTimeout time.Duration
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads .env when present and collects configuration from the environment
// with defaults. The result is also stored in AppConfig.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = Config{
		HTTPAddr:        getenv("HTTP_ADDR", ":3000"),
		ModelPath:       getenv("MODEL_PATH", "sales_model.json"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     getenv("GEMINI_MODEL", "gemini-1.5-pro-latest"),
		ShutdownTimeout: durenvs("SHUTDOWN_TIMEOUT", 10),
	}
	return AppConfig
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	return time.Duration(atoienv(key, defSec)) * time.Second
}
