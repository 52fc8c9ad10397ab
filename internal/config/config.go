package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	pkgRetry "github.com/spiritquiz/backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":3000"`
	StaticDir  string `env:"STATIC_DIR" envDefault:"public"`

	// Allowed CORS origin for the quiz endpoint; "*" means any caller.
	AllowedOrigin string `env:"ALLOWED_ORIGIN" envDefault:"*"`

	// Generative model configuration
	GeminiCfg GeminiConfig `envPrefix:"GEMINI_"`

	// Rate limiting in front of /quiz-step
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Telegram bot configuration (quiz-bot binary only)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

// GeminiConfig holds the model name, sampling parameters and retry policy.
type GeminiConfig struct {
	APIKey          string               `env:"API_KEY"`
	Model           string               `env:"MODEL" envDefault:"gemini-1.5-flash-latest"`
	MaxOutputTokens int32                `env:"MAX_OUTPUT_TOKENS" envDefault:"8192"`
	Temperature     float32              `env:"TEMPERATURE" envDefault:"1"`
	TopP            float32              `env:"TOP_P" envDefault:"0.95"`
	TopK            int32                `env:"TOP_K" envDefault:"64"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// RateLimitConfig caps quiz attempts per client IP over a fixed window.
type RateLimitConfig struct {
	Window      time.Duration `env:"WINDOW" envDefault:"15m"`
	MaxRequests int           `env:"MAX_REQUESTS" envDefault:"10"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken      string        `env:"BOT_TOKEN"`
	UpdateTimeout int           `env:"UPDATE_TIMEOUT" envDefault:"60"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"30m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if !cfg.EnableMocks && cfg.GeminiCfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set unless ENABLE_MOCKS is true")
	}

	if cfg.GeminiCfg.MaxOutputTokens < 1 {
		return fmt.Errorf("GEMINI_MAX_OUTPUT_TOKENS must be positive, got %d", cfg.GeminiCfg.MaxOutputTokens)
	}

	if cfg.GeminiCfg.Temperature < 0 || cfg.GeminiCfg.Temperature > 2 {
		return fmt.Errorf("GEMINI_TEMPERATURE must be between 0 and 2, got %g", cfg.GeminiCfg.Temperature)
	}

	if cfg.RateLimitCfg.MaxRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_MAX_REQUESTS must be positive, got %d", cfg.RateLimitCfg.MaxRequests)
	}

	if cfg.RateLimitCfg.Window < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %s", cfg.RateLimitCfg.Window)
	}

	if cfg.GeminiCfg.Retry.Attempts < 1 || cfg.GeminiCfg.Retry.Attempts > 10 {
		return fmt.Errorf("GEMINI_RETRY_ATTEMPTS must be between 1 and 10, got %d", cfg.GeminiCfg.Retry.Attempts)
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
