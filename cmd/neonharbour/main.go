// NeonHarbour orchestrator server — exposes the HTTP API, runs the queue
// workers, and drives investigations from alert to verdict.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/agent"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/api"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/cleanup"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/config"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/connector"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/database"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/engine"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/events"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/evidence"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/learning"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/orchestrator"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/queue"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/services"
	"github.com/NeoCh3n/NeonharbourSecurity-sub001/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	logger := slog.Default()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		logger.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	podID := resolvePodID()

	logger.Info("Starting NeonHarbour",
		"version", version.Full(),
		"http_port", httpPort,
		"pod_id", podID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		logger.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		logger.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logger.Error("Error closing database client", "error", err)
		}
	}()
	logger.Info("Connected to PostgreSQL database")

	// 3. Domain services
	investigationService := services.NewInvestigationService(dbClient.Client)
	stepService := services.NewStepService(dbClient.Client)
	evidenceService := services.NewEvidenceService(dbClient.Client)
	feedbackService := services.NewFeedbackService(dbClient.Client)
	approvalService := services.NewApprovalService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	connectorService := services.NewConnectorService(dbClient.Client)
	warningsService := services.NewSystemWarningsService()

	// 4. Event bus and WebSocket streaming
	bus := events.NewBus(eventService, nil)
	connManager := events.NewConnectionManager(bus, cfg.Events.WriteTimeout)

	// 5. Connector registry + health monitoring
	registry := connector.NewRegistry(connector.RegistryOptions{
		Breaker: connector.BreakerConfig{
			FailureThreshold: cfg.Breaker.FailureThreshold,
			RecoveryTimeout:  cfg.Breaker.RecoveryTimeout,
		},
	})
	for _, c := range cfg.ConnectorConfigs() {
		if _, err := registry.Add(ctx, c); err != nil {
			logger.Error("Failed to register configured connector",
				"connector_id", c.ID, "tenant_id", c.TenantID, "error", err)
			os.Exit(1)
		}
	}
	// Durable tenant connectors created through the API survive restarts
	defs, err := connectorService.ListAllEnabled(ctx)
	if err != nil {
		logger.Error("Failed to load connector definitions", "error", err)
		os.Exit(1)
	}
	for _, def := range defs {
		if _, err := registry.Add(ctx, def.InstanceConfig()); err != nil {
			logger.Warn("Failed to register stored connector, continuing",
				"connector_id", def.ID, "tenant_id", def.TenantID, "error", err)
		}
	}
	defer registry.Shutdown(context.Background())
	logger.Info("Connector registry initialized",
		"configured", len(cfg.ConnectorConfigs()), "stored", len(defs))

	healthMonitor := connector.NewHealthMonitor(registry, connector.HealthMonitorOptions{
		OnUnhealthy: func(st connector.HealthStatus) {
			warningsService.AddWarning(services.WarningCategoryConnectorHealth,
				"connector "+st.ConnectorID+" is unhealthy", st.Error, st.ConnectorID)
			_ = connectorService.SetStatus(context.Background(), st.TenantID, st.ConnectorID, string(st.State))
		},
		OnRecovered: func(st connector.HealthStatus) {
			warningsService.ClearByConnectorID(services.WarningCategoryConnectorHealth, st.ConnectorID)
			_ = connectorService.SetStatus(context.Background(), st.TenantID, st.ConnectorID, string(st.State))
		},
	})
	healthMonitor.Start(ctx)
	defer healthMonitor.Stop()

	// 6. Agents, engine template, and the investigation executor
	planner := agent.NewPlanner(agent.PlannerOptions{
		StepTimeout:    cfg.Engine.StepTimeout,
		StepMaxRetries: cfg.Engine.MaxRetryAttempts,
	})
	analyst := agent.NewAnalyst(agent.BaseOptions{})
	responder := agent.NewResponder(agent.BaseOptions{})

	runtime := orchestrator.NewRuntime(nil)
	executor := orchestrator.NewExecutor(orchestrator.Options{
		Investigations: investigationService,
		Steps:          stepService,
		Evidence:       evidenceService,
		Feedback:       feedbackService,
		Approvals:      approvalService,
		Events:         bus,
		Sources:        registry,
		Runtime:        runtime,
		Planner:        planner,
		Analyst:        analyst,
		Responder:      responder,
		EngineOptions: engine.Options{
			Sources: registry,
			Events:  bus,
			Correlator: evidence.NewCorrelator(evidence.CorrelatorOptions{
				TemporalWindow: cfg.Engine.CorrelationWindow,
			}),
			MaxParallelSteps: cfg.Engine.MaxParallelSteps,
		},
		Logger:               logger,
		DefaultTimeout:       cfg.Orchestrator.DefaultInvestigationTimeout,
		ApprovalPollInterval: cfg.Orchestrator.ApprovalPollInterval,
		ApprovalTTL:          cfg.Orchestrator.ApprovalTTL,
	})

	// 7. Worker pool
	workerPool := queue.NewWorkerPool(podID, investigationService, cfg.Orchestrator, executor, logger)
	workerPool.SetLearningHook(learning.NewLogHook(logger))
	if err := workerPool.Start(ctx); err != nil {
		logger.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 8. Retention sweeper
	cleanupService := cleanup.NewService(cleanup.Options{
		Retention:   cfg.Retention,
		Store:       investigationService,
		Approvals:   approvalService,
		ApprovalTTL: cfg.Orchestrator.ApprovalTTL,
		Logger:      logger,
	})
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 9. HTTP API
	httpServer := api.NewServer(api.Options{
		Investigations:  investigationService,
		Steps:           stepService,
		Feedback:        feedbackService,
		Evidence:        evidenceService,
		Approvals:       approvalService,
		Connectors:      connectorService,
		Runtime:         runtime,
		Pool:            workerPool,
		ConnectorHealth: healthMonitor,
		Registry:        registry,
		Warnings:        warningsService,
		ConnManager:     connManager,
		DefaultTimeout:  cfg.Orchestrator.DefaultInvestigationTimeout,
		Logger:          logger,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.Start(":" + httpPort); err != nil {
			errCh <- err
		}
	}()

	logger.Info("NeonHarbour started",
		"pod_id", podID,
		"workers", cfg.Orchestrator.WorkerCount)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		logger.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop claiming first, let in-flight runs finish.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Orchestrator.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		logger.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		logger.Warn("Shutdown timeout exceeded — incomplete investigations will be orphan-recovered")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("Shutdown complete")
}
