package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/satriahrh/consultassist/domain/repositories"
)

// GeminiLLM implements the GenerativeModel interface using Google's Gemini API
type GeminiLLM struct {
	client *genai.Client
	logger *zap.Logger
	config GeminiConfig
}

// NewGeminiLLM creates a new Gemini LLM instance
func NewGeminiLLM(ctx context.Context, config GeminiConfig, logger *zap.Logger) (*GeminiLLM, error) {
	if err := ValidateGeminiConfig(config); err != nil {
		return nil, err
	}
	config = config.withDefaults(logger)

	clientConfig := &genai.ClientConfig{
		APIKey:  config.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini client ready",
		zap.String("model", config.Model),
		zap.Bool("json_mode", config.JSONMode),
		zap.Int("timeout_seconds", config.TimeoutSeconds))

	return &GeminiLLM{
		client: client,
		logger: logger,
		config: config,
	}, nil
}

// GenerateContent sends the prompt and inline blobs as a single user turn
func (g *GeminiLLM) GenerateContent(ctx context.Context, prompt string, blobs ...repositories.Blob) (string, error) {
	parts := make([]*genai.Part, 0, len(blobs)+1)
	parts = append(parts, genai.NewPartFromText(prompt))
	for _, blob := range blobs {
		parts = append(parts, genai.NewPartFromBytes(blob.Data, blob.MimeType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	if g.config.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(g.config.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	response, err := g.client.Models.GenerateContent(ctx, g.config.Model, contents, g.generateContentConfig())
	if err != nil {
		g.logger.Error("Failed to generate content",
			zap.String("model", g.config.Model),
			zap.Error(err))
		return "", fmt.Errorf("gemini generate content: %w", err)
	}

	return responseText(response), nil
}

func (g *GeminiLLM) generateContentConfig() *genai.GenerateContentConfig {
	config := &genai.GenerateContentConfig{}
	if g.config.Temperature != 0 {
		config.Temperature = genai.Ptr(g.config.Temperature)
	}
	if g.config.TopP != 0 {
		config.TopP = genai.Ptr(g.config.TopP)
	}
	if g.config.TopK != 0 {
		config.TopK = genai.Ptr(g.config.TopK)
	}
	if g.config.MaxOutputTokens != 0 {
		config.MaxOutputTokens = int32(g.config.MaxOutputTokens)
	}
	if g.config.JSONMode {
		config.ResponseMIMEType = "application/json"
	}
	return config
}

// responseText joins the text parts of the first candidate
func responseText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 {
		return ""
	}
	content := response.Candidates[0].Content
	if content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
