package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/satriahrh/consultassist/adapters/llm"
	"github.com/satriahrh/consultassist/domain/repositories"
	"github.com/satriahrh/consultassist/internal/api"
	"github.com/satriahrh/consultassist/internal/config"
	"github.com/satriahrh/consultassist/internal/logger"
	"github.com/satriahrh/consultassist/internal/metrics"
	"github.com/satriahrh/consultassist/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	// Initialize logger
	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize adapters
	var model repositories.GenerativeModel
	switch cfg.LLMProvider {
	case config.ProviderMock:
		zlog.Warn("Using mock LLM provider")
		model = llm.NewMockGeminiClient()
	default:
		gemini, err := llm.NewGeminiLLM(context.Background(), cfg.Gemini, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize Gemini", zap.Error(err))
		}
		model = gemini
	}

	modelCalls, err := metrics.NewModelCalls()
	if err != nil {
		zlog.Fatal("failed to register metrics", zap.Error(err))
	}

	// Initialize usecase services
	consultationService := usecase.NewConsultationService(model, zlog, usecase.ConsultationServiceOptions{
		SchemaCheck: cfg.ResponseSchemaCheck,
		Observer:    modelCalls,
	})

	e := api.NewServer(consultationService, api.ServerOptions{
		BodyLimit: cfg.BodyLimit,
		Metrics:   modelCalls.Handler(),
	}, zlog)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	zlog.Info("Server started",
		zap.String("port", cfg.Port),
		zap.String("llm_provider", cfg.LLMProvider),
		zap.Bool("response_schema_check", cfg.ResponseSchemaCheck))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
