package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string

	// LLM configuration
	LLMProvider  string
	LLMModel     string
	OpenAIAPIKey string
	LocalBaseURL string
	MaxTokens    int64

	// Database configuration
	DatabaseDSN string
	SQLDialect  string
	TopK        int

	// Cache configuration
	RedisHost string
	RedisPort int
	CacheTTL  time.Duration

	// Pipeline configuration
	RequestTimeout time.Duration

	// Logging configuration
	LogJSON bool
}

// LoadConfig loads configuration from environment variables and command-line flags.
// Flags take precedence over environment variables. A .env file in the working
// directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load(".env")

	cfg := &Config{}

	// Define flags
	serverPort := flag.String("server-port", getEnv("SERVER_PORT", "8080"), "Server port")
	llmProvider := flag.String("llm-provider", getEnv("LLM_PROVIDER", "openai"), "LLM provider: openai or local")
	llmModel := flag.String("llm-model", getEnv("LLM_MODEL", "gpt-4.1-mini"), "Model name for the selected provider")
	openAIKey := flag.String("openai-key", getEnv("OPENAI_API_KEY", ""), "OpenAI API key")
	localBaseURL := flag.String("local-base-url", getEnv("LOCAL_BASE_URL", "http://localhost:11434"), "Base URL of the local model server")
	maxTokens := flag.Int64("max-tokens", int64(getEnvAsInt("MAX_TOKENS", 3000)), "Token budget per model invocation")
	databaseDSN := flag.String("database-dsn", getEnv("DATABASE_DSN", ""), "Database connection URI")
	sqlDialect := flag.String("sql-dialect", getEnv("SQL_DIALECT", "PostgreSQL"), "SQL dialect named in prompts")
	topK := flag.Int("top-k", getEnvAsInt("TOP_K", 5), "Default result-row limit for generated queries")
	redisHost := flag.String("redis-host", getEnv("REDIS_HOST", "localhost"), "Redis host")
	redisPort := flag.Int("redis-port", getEnvAsInt("REDIS_PORT", 6379), "Redis port")
	cacheTTL := flag.Duration("cache-ttl", getEnvAsDuration("CACHE_TTL", time.Hour), "Cache entry expiry")
	requestTimeout := flag.Duration("request-timeout", getEnvAsDuration("REQUEST_TIMEOUT", 2*time.Minute), "Overall deadline per generation request")
	logJSON := flag.Bool("log-json", getEnvAsBool("LOG_JSON", false), "Emit JSON logs")

	flag.Parse()

	// Set config values
	cfg.ServerPort = *serverPort
	cfg.LLMProvider = *llmProvider
	cfg.LLMModel = *llmModel
	cfg.OpenAIAPIKey = *openAIKey
	cfg.LocalBaseURL = *localBaseURL
	cfg.MaxTokens = *maxTokens
	cfg.DatabaseDSN = *databaseDSN
	cfg.SQLDialect = *sqlDialect
	cfg.TopK = *topK
	cfg.RedisHost = *redisHost
	cfg.RedisPort = *redisPort
	cfg.CacheTTL = *cacheTTL
	cfg.RequestTimeout = *requestTimeout
	cfg.LogJSON = *logJSON

	// Validate required fields
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required (set via environment variable or -database-dsn flag)")
	}
	if cfg.LLMProvider == "openai" && cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider (set via environment variable or -openai-key flag)")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
