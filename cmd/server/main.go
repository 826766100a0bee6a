package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vokinneberg/sqlchart/internal/cache"
	"github.com/vokinneberg/sqlchart/internal/config"
	"github.com/vokinneberg/sqlchart/internal/db"
	"github.com/vokinneberg/sqlchart/internal/llm"
	"github.com/vokinneberg/sqlchart/internal/observability"
	"github.com/vokinneberg/sqlchart/internal/prompt"
	"github.com/vokinneberg/sqlchart/internal/sqlchart"

	httphandler "github.com/vokinneberg/sqlchart/internal/http"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(os.Stdout, slog.LevelInfo, cfg.LogJSON)
	slog.SetDefault(logger)

	// Initialize LLM client
	llmClient, err := llm.NewClient(llm.Config{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		APIKey:   cfg.OpenAIAPIKey,
		BaseURL:  cfg.LocalBaseURL,
	})
	if err != nil {
		slog.Error("Failed to create LLM client", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized LLM client", "provider", cfg.LLMProvider, "model", cfg.LLMModel)

	// Initialize database
	database, err := db.Open(context.Background(), cfg.DatabaseDSN)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.Info("Connected to database")

	// Initialize cache. The cache is an optimization: an unreachable Redis
	// degrades every request to a miss instead of blocking startup.
	cacheClient := cache.New(cfg.RedisHost, cfg.RedisPort, cfg.CacheTTL)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		slog.Warn("Cache is unreachable, requests will bypass it", "error", err)
	} else {
		slog.Info("Connected to cache", "host", cfg.RedisHost, "port", cfg.RedisPort)
	}
	cancelPing()

	// Initialize prompt builder
	family := prompt.FamilyForModel(cfg.LLMModel, cfg.LLMProvider == "openai")
	prompts := prompt.NewBuilder(family, cfg.SQLDialect, cfg.TopK)

	// Initialize generation service
	service, err := sqlchart.NewService(llmClient, database, cacheClient, prompts, cfg.MaxTokens, cfg.RequestTimeout)
	if err != nil {
		slog.Error("Failed to create generation service", "error", err)
		os.Exit(1)
	}
	slog.Info("Initialized generation service", "dialect", cfg.SQLDialect, "top_k", cfg.TopK)

	// Model listing is only exposed for the local provider
	var models httphandler.ModelLister
	if local, ok := llmClient.(*llm.Local); ok {
		models = local
	}

	// Initialize HTTP handlers
	handler := httphandler.NewHandlers(service, models)

	// Create router
	r := httphandler.NewRouter(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server running", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}
