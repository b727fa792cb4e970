package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Assistant backends
const (
	AssistantGemini = "gemini"
	AssistantOpenAI = "openai"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logging   LoggingConfig
	Assistant AssistantConfig
	Scan      ScanConfig
	RateLimit RateLimitConfig
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	FrontendURL     string
	Environment     string
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string // json or console
}

// AssistantConfig configures the text-generation backend behind the chat view
type AssistantConfig struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float32
	// Timeout bounds one assistant call; zero leaves it to the request context.
	Timeout time.Duration
}

// ScanConfig configures the deep-scan simulator
type ScanConfig struct {
	TickInterval time.Duration
	Increment    float64
	SettleDelay  time.Duration
	// Schedule is an optional standard cron expression for unattended scans.
	Schedule string
}

// RateLimitConfig configures the per-client request limiter
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	provider := strings.ToLower(getEnv("ASSISTANT_PROVIDER", AssistantGemini))

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 90*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
			FrontendURL:     getEnv("FRONTEND_URL", "http://localhost:5173"),
			Environment:     getEnv("ENVIRONMENT", "development"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Assistant: AssistantConfig{
			Provider:    provider,
			APIKey:      assistantKey(provider),
			Model:       getEnv("ASSISTANT_MODEL", defaultModel(provider)),
			BaseURL:     getEnv("ASSISTANT_BASE_URL", ""),
			Temperature: float32(getEnvAsFloat("ASSISTANT_TEMPERATURE", 0.7)),
			Timeout:     getEnvAsDuration("ASSISTANT_TIMEOUT", 0),
		},
		Scan: ScanConfig{
			TickInterval: getEnvAsDuration("SCAN_TICK_INTERVAL", 40*time.Millisecond),
			Increment:    getEnvAsFloat("SCAN_INCREMENT", 1.2),
			SettleDelay:  getEnvAsDuration("SCAN_SETTLE_DELAY", 600*time.Millisecond),
			Schedule:     getEnv("SCAN_SCHEDULE", ""),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 100),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 200),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration. A missing assistant key is not an
// error; the gateway reports it at call time.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Assistant.Provider != AssistantGemini && c.Assistant.Provider != AssistantOpenAI {
		return fmt.Errorf("unsupported assistant provider: %s", c.Assistant.Provider)
	}

	if c.Assistant.Temperature < 0 || c.Assistant.Temperature > 2 {
		return fmt.Errorf("assistant temperature must be within [0, 2], got %.2f", c.Assistant.Temperature)
	}

	if c.Scan.TickInterval <= 0 {
		return fmt.Errorf("scan tick interval must be positive")
	}

	if c.Scan.Increment <= 0 || c.Scan.Increment > 100 {
		return fmt.Errorf("scan increment must be within (0, 100], got %.2f", c.Scan.Increment)
	}

	if c.Scan.SettleDelay < 0 {
		return fmt.Errorf("scan settle delay must not be negative")
	}

	if c.Scan.Schedule != "" {
		if _, err := cron.ParseStandard(c.Scan.Schedule); err != nil {
			return fmt.Errorf("invalid scan schedule %q: %w", c.Scan.Schedule, err)
		}
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit must allow at least one request")
	}

	return nil
}

// assistantKey reads API_KEY first, then the provider specific variable.
func assistantKey(provider string) string {
	if key := os.Getenv("API_KEY"); key != "" {
		return key
	}
	if provider == AssistantOpenAI {
		return os.Getenv("OPENAI_API_KEY")
	}
	return os.Getenv("GEMINI_API_KEY")
}

func defaultModel(provider string) string {
	if provider == AssistantOpenAI {
		return "gpt-4o-mini"
	}
	return "gemini-3-flash-preview"
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
