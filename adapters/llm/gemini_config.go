package llm

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultModel = "gemini-2.0-flash"
)

// GeminiConfig holds the settings used for every GenerateContent call.
// Zero values mean "let the API decide", except Model which falls back to defaultModel.
type GeminiConfig struct {
	APIKey          string
	Model           string
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int
	// TimeoutSeconds bounds a single call; 0 leaves it to the caller's context
	TimeoutSeconds int
	// JSONMode asks the API for an application/json response
	JSONMode bool
	// BaseURL overrides the Gemini API endpoint
	BaseURL string
}

// ValidateGeminiConfig validates the GeminiConfig
func ValidateGeminiConfig(config GeminiConfig) error {
	if config.APIKey == "" {
		return fmt.Errorf("Gemini API key is required")
	}

	if config.Temperature < 0 || config.Temperature > 2 {
		return fmt.Errorf("temperature must be between 0 and 2, got %f", config.Temperature)
	}

	if config.TopP < 0 || config.TopP > 1 {
		return fmt.Errorf("topP must be between 0 and 1, got %f", config.TopP)
	}

	if config.TopK < 0 {
		return fmt.Errorf("topK must be positive, got %f", config.TopK)
	}

	if config.MaxOutputTokens < 0 {
		return fmt.Errorf("maxOutputTokens must be positive, got %d", config.MaxOutputTokens)
	}

	if config.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout must be positive, got %d", config.TimeoutSeconds)
	}

	return nil
}

func (c GeminiConfig) withDefaults(logger *zap.Logger) GeminiConfig {
	if c.Model == "" {
		c.Model = defaultModel
		logger.Info("Using default model", zap.String("model", c.Model))
	}
	return c
}
