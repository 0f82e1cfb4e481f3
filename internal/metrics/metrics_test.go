package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satriahrh/consultassist/domain"
)

func TestModelCalls_Observe(t *testing.T) {
	m, err := NewModelCalls()
	require.NoError(t, err)

	m.ObserveModelCall(domain.OperationTranscription, "success", 1500*time.Millisecond)
	m.ObserveModelCall(domain.OperationTranscription, "success", 300*time.Millisecond)
	m.ObserveModelCall(domain.OperationSentimentAnalysis, "unavailable", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.total.WithLabelValues("Transcription", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.total.WithLabelValues("Sentiment analysis", "unavailable")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestModelCalls_Handler(t *testing.T) {
	m, err := NewModelCalls()
	require.NoError(t, err)
	m.ObserveModelCall(domain.OperationQuestionGeneration, "bad_response", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `consult_model_requests_total{operation="Question generation",outcome="bad_response"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
