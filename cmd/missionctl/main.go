// Mission control server: HTTP API for tasks, planning, calendar, intake,
// briefings, and the model catalog, plus the background retention loop.
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

	"github.com/missionctl/missionctl/pkg/api"
	"github.com/missionctl/missionctl/pkg/calendar"
	"github.com/missionctl/missionctl/pkg/cleanup"
	"github.com/missionctl/missionctl/pkg/config"
	"github.com/missionctl/missionctl/pkg/database"
	"github.com/missionctl/missionctl/pkg/llm"
	"github.com/missionctl/missionctl/pkg/services"
	"github.com/missionctl/missionctl/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config",
		getEnv("MC_CONFIG", ""),
		"Path to the optional YAML configuration file")
	flag.Parse()

	// Load .env before config so environment overrides see it.
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting mission control",
		"version", version.Full(),
		"http_port", httpPort,
		"config", *configPath)

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
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

	loc, err := cfg.Workday.Location()
	if err != nil {
		slog.Error("Invalid workday timezone", "timezone", cfg.Workday.Timezone, "error", err)
		os.Exit(1)
	}
	focusStart, focusEnd, err := cfg.Workday.FocusMinutes()
	if err != nil {
		slog.Error("Invalid focus window", "error", err)
		os.Exit(1)
	}
	windowing := calendar.NewWindowing(loc, focusStart, focusEnd)

	// Domain services. The catalog doubles as the dispatcher's store.
	catalogService := services.NewCatalogService(dbClient.Client)
	if err := catalogService.EnsureDefaults(ctx, config.BuiltinCatalog()); err != nil {
		slog.Error("Failed to seed model catalog", "error", err)
		os.Exit(1)
	}

	usageRetention := time.Duration(cfg.Retention.UsageEventRetentionDays) * 24 * time.Hour
	dispatcher := llm.NewDispatcher(catalogService, cfg.LLM, usageRetention)

	snapshotRetention := time.Duration(cfg.Retention.SnapshotRetentionDays) * 24 * time.Hour
	taskService := services.NewTaskService(dbClient.Client)
	dependencyService := services.NewDependencyService(dbClient.Client)
	applicationService := services.NewApplicationService(dbClient.Client)
	projectService := services.NewProjectService(dbClient.Client)
	commitmentService := services.NewCommitmentService(dbClient.Client)
	focusService := services.NewFocusService(dbClient.Client)
	plannerService := services.NewPlannerService(dbClient.Client, focusService, windowing, cfg.Planner)
	calendarService := services.NewCalendarService(dbClient.Client, windowing, snapshotRetention)
	intakeService := services.NewIntakeService(dbClient.Client, dispatcher, cfg.LLM)
	briefingService := services.NewBriefingService(dbClient.Client, windowing, dispatcher, catalogService, cfg.LLM)
	sessionService := services.NewSessionService(dbClient.Client)
	slog.Info("Services initialized")

	cleanupService := cleanup.NewService(cfg.Retention, catalogService, sessionService)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	server := api.NewServer(cfg, dbClient, api.Services{
		Tasks:        taskService,
		Dependencies: dependencyService,
		Applications: applicationService,
		Projects:     projectService,
		Commitments:  commitmentService,
		Focus:        focusService,
		Planner:      plannerService,
		Calendar:     calendarService,
		Intake:       intakeService,
		Briefings:    briefingService,
		Catalog:      catalogService,
		Sessions:     sessionService,
	})

	httpServer := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           server.NewEcho(),
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

	if !cfg.Auth.APIKeyConfigured() {
		slog.Warn("API key admission disabled; only session cookies are accepted")
	}
	slog.Info("Mission control started successfully")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
