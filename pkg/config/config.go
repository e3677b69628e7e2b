package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	LLM        LLMConfig
	Suggestion SuggestionConfig
	Logger     LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
	MinConns int32
	// MaxConnLifetime recycles connections; zero keeps the pgx default.
	MaxConnLifetime time.Duration
}

type LLMConfig struct {
	APIKey             string
	Scope              string
	Model              string
	InsecureSkipVerify bool
	RequestTimeout     time.Duration
	RequestsPerSecond  float64
	Burst              int
	BreakerFailures    uint32
	BreakerTimeout     time.Duration
}

type SuggestionConfig struct {
	DefaultBatchSize     int
	MaxBatchSize         int
	FeedbackHistoryLimit int
	Currency             string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables work too
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "90"))
	llmTimeout, _ := strconv.Atoi(getEnv("LLM_REQUEST_TIMEOUT", "60"))
	llmRPS, _ := strconv.ParseFloat(getEnv("LLM_REQUESTS_PER_SECOND", "2"), 64)
	llmBurst, _ := strconv.Atoi(getEnv("LLM_BURST", "4"))
	breakerFailures, _ := strconv.Atoi(getEnv("LLM_BREAKER_FAILURES", "5"))
	breakerTimeout, _ := strconv.Atoi(getEnv("LLM_BREAKER_TIMEOUT", "30"))
	defaultBatch, _ := strconv.Atoi(getEnv("SUGGESTION_DEFAULT_BATCH", "5"))
	maxBatch, _ := strconv.Atoi(getEnv("SUGGESTION_MAX_BATCH", "10"))
	historyLimit, _ := strconv.Atoi(getEnv("SUGGESTION_FEEDBACK_HISTORY", "20"))
	maxConns, _ := strconv.Atoi(getEnv("DB_MAX_CONNS", "10"))
	minConns, _ := strconv.Atoi(getEnv("DB_MIN_CONNS", "1"))
	connLifetime, _ := strconv.Atoi(getEnv("DB_CONN_LIFETIME_MINUTES", "30"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			AllowOrigins: getEnv("CORS_ALLOW_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "bucketlist"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: int32(maxConns),
			MinConns: int32(minConns),

			MaxConnLifetime: time.Duration(connLifetime) * time.Minute,
		},
		LLM: LLMConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			Model:              getEnv("GIGACHAT_MODEL", "GigaChat"),
			InsecureSkipVerify: getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "false") == "true",
			RequestTimeout:     time.Duration(llmTimeout) * time.Second,
			RequestsPerSecond:  llmRPS,
			Burst:              llmBurst,
			BreakerFailures:    uint32(breakerFailures),
			BreakerTimeout:     time.Duration(breakerTimeout) * time.Second,
		},
		Suggestion: SuggestionConfig{
			DefaultBatchSize:     defaultBatch,
			MaxBatchSize:         maxBatch,
			FeedbackHistoryLimit: historyLimit,
			Currency:             getEnv("SUGGESTION_CURRENCY", "SEK"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
