package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/satriahrh/consultassist/domain"
	"github.com/satriahrh/consultassist/domain/entities"
	"github.com/satriahrh/consultassist/domain/repositories"
)

// Outcomes reported to a CallObserver
const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeBadResponse = "bad_response"
)

// CallObserver is notified after every model call
type CallObserver interface {
	ObserveModelCall(op domain.Operation, outcome string, elapsed time.Duration)
}

// ConsultationServiceOptions tunes ConsultationService behaviour
type ConsultationServiceOptions struct {
	// SchemaCheck rejects replies that lack the top-level keys the prompt asks for
	SchemaCheck bool
	Observer    CallObserver
}

// ConsultationService renders prompts, calls the model and relays its JSON reply
type ConsultationService struct {
	model    repositories.GenerativeModel
	logger   *zap.Logger
	options  ConsultationServiceOptions
	observer CallObserver
}

// NewConsultationService creates a new consultation service
func NewConsultationService(
	model repositories.GenerativeModel,
	logger *zap.Logger,
	options ConsultationServiceOptions,
) *ConsultationService {
	observer := options.Observer
	if observer == nil {
		observer = noopObserver{}
	}
	return &ConsultationService{
		model:    model,
		logger:   logger,
		options:  options,
		observer: observer,
	}
}

// Transcribe asks the model to transcribe the recording and rate its sentiment
func (s *ConsultationService) Transcribe(ctx context.Context, req entities.TranscriptionRequest) (json.RawMessage, error) {
	op := domain.OperationTranscription

	audio, err := base64.StdEncoding.DecodeString(req.AudioData)
	if err != nil {
		return nil, &domain.PayloadDecodeError{Op: op, Err: err}
	}
	if len(audio) > entities.MaxAudioBytes {
		return nil, &domain.ValidationError{
			Op:  op,
			Err: fmt.Errorf("audio_data: decoded audio is %d bytes, limit is %d", len(audio), entities.MaxAudioBytes),
		}
	}

	s.logger.Debug("Transcribing audio",
		zap.String("mime_type", req.MimeType),
		zap.Int("audio_bytes", len(audio)))

	return s.generate(ctx, op, renderTranscriptionPrompt(), transcriptionFields, repositories.Blob{
		MimeType: req.MimeType,
		Data:     audio,
	})
}

// GenerateQuestions asks the model for follow-up questions and an emotional read of the patient
func (s *ConsultationService) GenerateQuestions(ctx context.Context, req entities.QuestionGenerationRequest) (json.RawMessage, error) {
	op := domain.OperationQuestionGeneration

	prompt, err := renderQuestionGenerationPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("render question generation prompt: %w", err)
	}

	return s.generate(ctx, op, prompt, questionGenerationFields)
}

// AnalyzeSentiment asks the model to classify the sentiment of free text
func (s *ConsultationService) AnalyzeSentiment(ctx context.Context, req entities.SentimentAnalysisRequest) (json.RawMessage, error) {
	op := domain.OperationSentimentAnalysis

	prompt, err := renderSentimentAnalysisPrompt(req)
	if err != nil {
		return nil, fmt.Errorf("render sentiment analysis prompt: %w", err)
	}

	return s.generate(ctx, op, prompt, sentimentAnalysisFields)
}

func (s *ConsultationService) generate(
	ctx context.Context,
	op domain.Operation,
	prompt string,
	fields []string,
	blobs ...repositories.Blob,
) (json.RawMessage, error) {
	start := time.Now()

	text, err := s.model.GenerateContent(ctx, prompt, blobs...)
	if err != nil {
		s.observer.ObserveModelCall(op, OutcomeUnavailable, time.Since(start))
		return nil, &domain.ModelUnavailableError{Op: op, Err: err}
	}

	var required []string
	if s.options.SchemaCheck {
		required = fields
	}

	result, err := parseModelResponse(op, text, required)
	if err != nil {
		s.observer.ObserveModelCall(op, OutcomeBadResponse, time.Since(start))
		s.logger.Warn("Model reply rejected",
			zap.String("operation", string(op)),
			zap.String("response_preview", preview(text, 100)),
			zap.Error(err))
		return nil, err
	}

	s.observer.ObserveModelCall(op, OutcomeSuccess, time.Since(start))
	return result, nil
}

// preview cuts s to at most n bytes without splitting a rune
func preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

type noopObserver struct{}

func (noopObserver) ObserveModelCall(domain.Operation, string, time.Duration) {}
