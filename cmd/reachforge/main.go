// ReachForge server — provides the HTTP control plane, runs the Temporal
// worker hosting the campaign and lead workflows, and enforces retention.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/reachforge/reachforge/pkg/api"
	"github.com/reachforge/reachforge/pkg/cleanup"
	"github.com/reachforge/reachforge/pkg/config"
	"github.com/reachforge/reachforge/pkg/database"
	"github.com/reachforge/reachforge/pkg/engine"
	"github.com/reachforge/reachforge/pkg/generator"
	"github.com/reachforge/reachforge/pkg/provider"
	"github.com/reachforge/reachforge/pkg/services"
	"github.com/reachforge/reachforge/pkg/slack"
	"github.com/reachforge/reachforge/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// setupLogging routes slog through tint for local runs and plain JSON when
// LOG_FORMAT=json (the deployment default).
func setupLogging() {
	level := slog.LevelInfo
	if getEnv("LOG_LEVEL", "") == "debug" {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if getEnv("LOG_FORMAT", "") == "json" {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	setupLogging()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	slog.Info("Starting ReachForge", "version", version.Full(), "http_port", httpPort)

	ctx := context.Background()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Provider client and the comment generator. The template generator is
	// the fallback when no OpenAI key is configured.
	providerClient := provider.NewClient(cfg.Provider.BaseURL, cfg.Provider.Token)
	var commentGen generator.Comment
	if cfg.OpenAIAPIKey != "" {
		commentGen = generator.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		slog.Info("Comment generator: OpenAI", "model", cfg.OpenAIModel)
	} else {
		commentGen = generator.NewTemplateGenerator()
		slog.Info("Comment generator: templates")
	}

	notifier := slack.NewService(slack.ServiceConfig{
		Token:        cfg.Slack.BotToken,
		Channel:      cfg.Slack.ChannelID,
		DashboardURL: cfg.Slack.DashboardURL,
	})
	if notifier != nil {
		slog.Info("Slack notifications enabled", "channel", cfg.Slack.ChannelID)
	}

	// Temporal client and worker.
	temporalClient, err := engine.NewTemporalClient(cfg.Temporal, slog.Default())
	if err != nil {
		slog.Error("Failed to connect to Temporal", "error", err)
		os.Exit(1)
	}
	defer temporalClient.Close()
	slog.Info("Connected to Temporal",
		"host_port", cfg.Temporal.HostPort,
		"namespace", cfg.Temporal.Namespace,
		"task_queue", cfg.Temporal.TaskQueue)

	activities := &engine.Activities{
		Provider:  providerClient,
		Campaigns: services.NewCampaignService(dbClient.Client),
		Leads:     services.NewLeadService(dbClient.Client),
		Steps:     services.NewStepService(dbClient.Client),
		Accounts:  services.NewAccountService(dbClient.Client),
		Generator: commentGen,
		Notifier:  notifier,
	}

	w := engine.NewWorker(temporalClient, cfg.Temporal, activities)
	if err := w.Start(); err != nil {
		slog.Error("Failed to start Temporal worker", "error", err)
		os.Exit(1)
	}
	defer w.Stop()
	slog.Info("Temporal worker started")

	// Retention cleanup.
	if cfg.Retention.Enabled {
		cleanupService := cleanup.NewService(&cfg.Retention, activities.Campaigns)
		cleanupService.Start(ctx)
		defer cleanupService.Stop()
	}

	// HTTP control plane.
	apiServer := api.NewServer(dbClient, temporalClient, cfg)
	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           apiServer.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("ReachForge started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: stop accepting HTTP first, then let the worker
	// finish in-flight activity executions (the deferred w.Stop()).
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
