package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/satriahrh/consultassist/domain"
	"github.com/satriahrh/consultassist/domain/entities"
)

const serviceName = "ai-medical-consultation"

// ConsultationService is the use case behind the consultation endpoints
type ConsultationService interface {
	Transcribe(ctx context.Context, req entities.TranscriptionRequest) (json.RawMessage, error)
	GenerateQuestions(ctx context.Context, req entities.QuestionGenerationRequest) (json.RawMessage, error)
	AnalyzeSentiment(ctx context.Context, req entities.SentimentAnalysisRequest) (json.RawMessage, error)
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, svc ConsultationService, metrics http.Handler, logger *zap.Logger) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, StatusResponse{
			Message: "AI Medical Consultation Service",
			Status:  "running",
		})
	})

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:  "healthy",
			Service: serviceName,
		})
	})

	if metrics != nil {
		e.GET("/metrics", echo.WrapHandler(metrics))
	}

	e.POST("/transcribe", operationHandler(domain.OperationTranscription, svc.Transcribe, logger))
	e.POST("/generate-questions", operationHandler(domain.OperationQuestionGeneration, svc.GenerateQuestions, logger))
	e.POST("/analyze-sentiment", operationHandler(domain.OperationSentimentAnalysis, svc.AnalyzeSentiment, logger))
}

// operationHandler binds and validates Req, runs the operation and writes
// the model's JSON reply back byte for byte
func operationHandler[Req any](
	op domain.Operation,
	run func(context.Context, Req) (json.RawMessage, error),
	logger *zap.Logger,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req Req
		if err := c.Bind(&req); err != nil {
			var he *echo.HTTPError
			if errors.As(err, &he) && he.Code != http.StatusBadRequest {
				// 413 from the body limit reader, 415 for unknown content types
				return he
			}
			return respondError(c, op, &domain.ValidationError{Op: op, Err: bindError(err)}, logger)
		}
		if err := c.Validate(&req); err != nil {
			return respondError(c, op, &domain.ValidationError{Op: op, Err: err}, logger)
		}

		result, err := run(c.Request().Context(), req)
		if err != nil {
			return respondError(c, op, err, logger)
		}
		return c.JSONBlob(http.StatusOK, result)
	}
}

// bindError unwraps echo's HTTPError so the detail carries the decoder message
func bindError(err error) error {
	if he, ok := err.(*echo.HTTPError); ok && he.Internal != nil {
		return he.Internal
	}
	return err
}
