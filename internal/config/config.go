package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/satriahrh/consultassist/adapters/llm"
)

// Supported LLM providers
const (
	ProviderGemini = "gemini"
	ProviderMock   = "mock"
)

type Config struct {
	Port            string
	Env             string
	LogLevel        string
	BodyLimit       string
	ShutdownTimeout time.Duration

	LLMProvider         string
	ResponseSchemaCheck bool

	Gemini llm.GeminiConfig
}

// Load reads environment variables, optionally from a .env file if present.
// A set but malformed numeric or boolean variable is an error.
func Load() (Config, error) {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	var env envReader
	cfg := Config{
		Port:            getEnv("PORT", "8000"),
		Env:             getEnv("APP_ENV", "production"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		BodyLimit:       getEnv("BODY_LIMIT", "15M"),
		ShutdownTimeout: time.Duration(env.Int("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,

		LLMProvider:         getEnv("LLM_PROVIDER", ProviderGemini),
		ResponseSchemaCheck: env.Bool("RESPONSE_SCHEMA_CHECK", false),

		Gemini: llm.GeminiConfig{
			APIKey:          os.Getenv("GEMINI_API_KEY"),
			Model:           os.Getenv("GEMINI_MODEL"),
			Temperature:     env.Float32("GEMINI_TEMPERATURE", 0),
			TopP:            env.Float32("GEMINI_TOP_P", 0),
			TopK:            env.Float32("GEMINI_TOP_K", 0),
			MaxOutputTokens: env.Int("GEMINI_MAX_OUTPUT_TOKENS", 0),
			TimeoutSeconds:  env.Int("GEMINI_TIMEOUT_SECONDS", 0),
			JSONMode:        env.Bool("GEMINI_JSON_MODE", false),
			BaseURL:         os.Getenv("GEMINI_BASE_URL"),
		},
	}
	if err := errors.Join(env.errs...); err != nil {
		return cfg, fmt.Errorf("invalid environment: %w", err)
	}

	switch cfg.LLMProvider {
	case ProviderGemini:
		if cfg.Gemini.APIKey == "" {
			return cfg, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderMock:
	default:
		return cfg, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLMProvider)
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs with development defaults
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// envReader parses typed variables and keeps every parse failure
type envReader struct {
	errs []error
}

func (r *envReader) Int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not an integer", key, v))
		return def
	}
	return n
}

func (r *envReader) Float32(key string, def float32) float32 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 32)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not a number", key, v))
		return def
	}
	return float32(f)
}

func (r *envReader) Bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		r.errs = append(r.errs, fmt.Errorf("%s=%q is not a boolean", key, v))
		return def
	}
	return b
}
