package llm

import (
	"context"
	"strings"

	"github.com/satriahrh/consultassist/domain/repositories"
)

// MockGeminiClient answers with fixed JSON so the service runs without credentials
type MockGeminiClient struct{}

// NewMockGeminiClient creates a new mock Gemini client
func NewMockGeminiClient() *MockGeminiClient {
	return &MockGeminiClient{}
}

// GenerateContent implements repositories.GenerativeModel
func (g *MockGeminiClient) GenerateContent(ctx context.Context, prompt string, blobs ...repositories.Blob) (string, error) {
	switch {
	case len(blobs) > 0:
		return mockTranscription, nil
	case strings.Contains(prompt, "follow-up questions"):
		return mockQuestions, nil
	default:
		return mockSentiment, nil
	}
}

const mockTranscription = `{
  "transcript": "Doctor, I have had a headache for three days.",
  "language": "en",
  "confidence": 0.9,
  "sentiment": {"label": "neutral", "score": 0.7}
}`

const mockQuestions = `{
  "questions": [
    "Where exactly is the pain located?",
    "Does anything make the headache better or worse?",
    "Have you taken any medication for it?"
  ],
  "suggestedQuestion": "Where exactly is the pain located?",
  "emotionAlert": false,
  "emotionDetails": {
    "detected": "calm",
    "confidence": 0.8,
    "recommendation": "Continue with the history"
  },
  "medicalInsights": ["Headache lasting three days"]
}`

const mockSentiment = `{
  "sentiment": "neutral",
  "confidence": 0.8,
  "emotions": ["concern"],
  "recommendation": "Acknowledge the patient's concern"
}`
