package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/satriahrh/consultassist/domain/repositories"
)

var (
	_ repositories.GenerativeModel = &GeminiLLM{}
	_ repositories.GenerativeModel = &MockGeminiClient{}
)

type capturedRequest struct {
	path   string
	apiKey string
	body   map[string]any
}

// newGeminiServer fakes the generateContent endpoint
func newGeminiServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apiKey = r.Header.Get("x-goog-api-key")
		raw, err := io.ReadAll(r.Body)
		if err == nil {
			_ = json.Unmarshal(raw, &captured.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestGemini(t *testing.T, baseURL string, mutate func(*GeminiConfig)) *GeminiLLM {
	t.Helper()
	config := GeminiConfig{APIKey: "test-key", BaseURL: baseURL}
	if mutate != nil {
		mutate(&config)
	}
	g, err := NewGeminiLLM(context.Background(), config, zaptest.NewLogger(t))
	require.NoError(t, err)
	return g
}

func TestGeminiLLM_GenerateContent(t *testing.T) {
	server, captured := newGeminiServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "{\"sentiment\":"}, {"text": "\"neutral\"}"}]}
		}]
	}`)
	g := newTestGemini(t, server.URL, nil)

	text, err := g.GenerateContent(context.Background(), "Analyze this", repositories.Blob{
		MimeType: "audio/webm",
		Data:     []byte("RIFF"),
	})
	require.NoError(t, err)

	assert.Equal(t, `{"sentiment":"neutral"}`, text)
	assert.True(t, strings.HasSuffix(captured.path, "models/"+defaultModel+":generateContent"), captured.path)
	assert.Equal(t, "test-key", captured.apiKey)

	raw, err := json.Marshal(captured.body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Analyze this")
	assert.Contains(t, string(raw), "audio/webm")
	assert.Contains(t, string(raw), base64.StdEncoding.EncodeToString([]byte("RIFF")))
}

func TestGeminiLLM_GenerateContentConfig(t *testing.T) {
	server, captured := newGeminiServer(t, http.StatusOK, `{"candidates":[{"content":{"parts":[{"text":"{}"}]}}]}`)
	g := newTestGemini(t, server.URL, func(c *GeminiConfig) {
		c.Model = "gemini-1.5-flash"
		c.JSONMode = true
		c.Temperature = 0.2
		c.MaxOutputTokens = 512
	})

	_, err := g.GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)

	assert.Contains(t, captured.path, "gemini-1.5-flash:generateContent")
	generationConfig, ok := captured.body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig missing from %v", captured.body)
	assert.Equal(t, "application/json", generationConfig["responseMimeType"])
	assert.EqualValues(t, 512, generationConfig["maxOutputTokens"])
}

func TestGeminiLLM_NoCandidates(t *testing.T) {
	server, _ := newGeminiServer(t, http.StatusOK, `{"candidates": []}`)
	g := newTestGemini(t, server.URL, nil)

	text, err := g.GenerateContent(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiLLM_APIError(t *testing.T) {
	server, _ := newGeminiServer(t, http.StatusBadRequest,
		`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`)
	g := newTestGemini(t, server.URL, nil)

	_, err := g.GenerateContent(context.Background(), "prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestValidateGeminiConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  GeminiConfig
		wantErr string
	}{
		{name: "valid", config: GeminiConfig{APIKey: "k", Temperature: 0.4, TopP: 0.9, TopK: 40}},
		{name: "missing key", config: GeminiConfig{}, wantErr: "API key is required"},
		{name: "temperature", config: GeminiConfig{APIKey: "k", Temperature: 3}, wantErr: "temperature"},
		{name: "topP", config: GeminiConfig{APIKey: "k", TopP: 1.5}, wantErr: "topP"},
		{name: "topK", config: GeminiConfig{APIKey: "k", TopK: -1}, wantErr: "topK"},
		{name: "timeout", config: GeminiConfig{APIKey: "k", TimeoutSeconds: -5}, wantErr: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeminiConfig(tt.config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestMockGeminiClient_RepliesWithJSON(t *testing.T) {
	mock := NewMockGeminiClient()

	for _, tc := range []struct {
		prompt string
		blobs  []repositories.Blob
		key    string
	}{
		{prompt: "transcribe", blobs: []repositories.Blob{{MimeType: "audio/wav"}}, key: "transcript"},
		{prompt: "generate appropriate follow-up questions", key: "suggestedQuestion"},
		{prompt: "Analyze the sentiment", key: "emotions"},
	} {
		reply, err := mock.GenerateContent(context.Background(), tc.prompt, tc.blobs...)
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal([]byte(reply), &body))
		assert.Contains(t, body, tc.key)
	}
}
