package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"wellspring/internal/config"
	"wellspring/internal/jobs"
	"wellspring/internal/llm"
	"wellspring/internal/notify"
	"wellspring/internal/repository"
	"wellspring/internal/server"
	"wellspring/internal/wellness"
	"wellspring/internal/ws"
)

func main() {
	// Initialize logger
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	logger.Info("Starting Wellspring...")

	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Initialize LLM provider. With no provider configured the wellness
	// services run on their local fallbacks only.
	var provider llm.Provider
	switch cfg.LLM.Provider {
	case "openai":
		client, err := llm.NewOpenAIClient(llm.OpenAIConfig{
			APIKey:     cfg.LLM.APIKey,
			BaseURL:    cfg.LLM.BaseURL,
			ModelName:  cfg.LLM.ModelName,
			Timeout:    cfg.LLM.Timeout,
			MaxRetries: cfg.LLM.MaxRetries,
			RetryDelay: cfg.LLM.RetryDelay,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize OpenAI client", zap.Error(err))
		}
		defer client.Close()
		provider = client
	case "gemini":
		client, err := llm.NewGeminiClient(llm.GeminiConfig{
			APIKey:     cfg.LLM.APIKey,
			ModelName:  cfg.LLM.ModelName,
			MaxRetries: cfg.LLM.MaxRetries,
			RetryDelay: cfg.LLM.RetryDelay,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
		}
		defer client.Close()
		provider = client
	default:
		logger.Warn("No LLM provider configured, wellness services will use local fallbacks only")
	}

	if provider != nil {
		modelInfo := provider.GetModelInfo()
		modelName := "unknown"
		if m, ok := modelInfo["model"].(string); ok {
			modelName = m
		}
		logger.Info("LLM provider initialized",
			zap.String("provider", cfg.LLM.Provider),
			zap.String("model", modelName))
	}

	// Initialize database
	db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	repository.MigrateDB(db, logger)

	// Crisis alert bot (nil when disabled)
	alerter, err := notify.NewCrisisAlerter(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize crisis alert bot", zap.Error(err))
	}

	// Websocket hub
	hub := ws.NewHub(logger)
	hubCtx, stopHub := context.WithCancel(context.Background())
	defer stopHub()
	go hub.Run(hubCtx)

	// Background jobs
	calculator := wellness.NewRewardCalculator(cfg.Karma)
	scheduler, err := jobs.NewScheduler(cfg,
		repository.NewChallengeRepository(db, logger),
		repository.NewKarmaRepository(db, logger),
		repository.NewStatsRepository(db, logger),
		calculator, hub, logger)
	if err != nil {
		logger.Fatal("Failed to initialize job scheduler", zap.Error(err))
	}
	scheduler.Start()
	defer scheduler.Stop()

	// HTTP server
	srv := server.NewServer(db, cfg, provider, hub, alerter, logger, log)

	httpServer := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: srv.Handler(),
	}

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Wellspring is running", zap.String("address", cfg.Server.Port))

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
