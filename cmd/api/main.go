package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/api/handlers"
	"github.com/davidotu-spec/AegisFlow-AI/internal/api/middleware"
	"github.com/davidotu-spec/AegisFlow-AI/internal/api/router"
	"github.com/davidotu-spec/AegisFlow-AI/internal/assistant"
	"github.com/davidotu-spec/AegisFlow-AI/internal/config"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/approval"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/resource"
	"github.com/davidotu-spec/AegisFlow-AI/internal/integrations"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/logger"
	"github.com/davidotu-spec/AegisFlow-AI/internal/pkg/validator"
	"github.com/davidotu-spec/AegisFlow-AI/internal/repository/memory"
	"github.com/davidotu-spec/AegisFlow-AI/internal/services"
	"github.com/davidotu-spec/AegisFlow-AI/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logger.SetGlobal(log)

	log.WithFields(map[string]interface{}{
		"environment": cfg.Server.Environment,
		"assistant":   cfg.Assistant.Provider,
	}).Info("Starting AegisFlow API")

	if err := run(cfg, log); err != nil {
		log.ErrorWithErr(err, "Server exited with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Repositories
	resourceRepo := memory.NewResourceRepository(resource.Seed())
	alertRepo := memory.NewAlertRepository(alert.Seed())
	approvalRepo := memory.NewApprovalRepository(approval.Seed())
	chatRepo := memory.NewChatRepository()

	// Assistant
	gen, err := integrations.NewGenerator(cfg.Assistant)
	if err != nil {
		return fmt.Errorf("failed to build assistant backend: %w", err)
	}
	gateway := assistant.NewGateway(gen, assistant.Options{
		Backend:     cfg.Assistant.Provider,
		APIKeySet:   cfg.Assistant.APIKey != "",
		Temperature: cfg.Assistant.Temperature,
		Timeout:     cfg.Assistant.Timeout,
	}, log)

	// Services
	resourceService := services.NewResourceService(resourceRepo, resource.Seed, log)
	alertService := services.NewAlertService(alertRepo, log)
	approvalService := services.NewApprovalService(approvalRepo, log)
	chatService := services.NewChatService(chatRepo, resourceRepo, alertRepo, gateway, log)
	overviewService := services.NewOverviewService()

	// Workers
	simulator := worker.NewScanSimulator(resourceService, worker.ScanConfig{
		TickInterval: cfg.Scan.TickInterval,
		Increment:    cfg.Scan.Increment,
		SettleDelay:  cfg.Scan.SettleDelay,
	}, log)
	defer simulator.Close()
	resourceService.AttachScanner(simulator)

	if cfg.Scan.Schedule != "" {
		scheduler, err := worker.NewScanScheduler(simulator, cfg.Scan.Schedule, log)
		if err != nil {
			return err
		}
		if err := scheduler.Start(); err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	go limiter.Run(ctx, 5*time.Minute)

	val := validator.New()
	h := &router.Handlers{
		Health:   handlers.NewHealthHandler(gateway.Configured, log),
		Overview: handlers.NewOverviewHandler(overviewService),
		Resource: handlers.NewResourceHandler(resourceService, log, val),
		Scan:     handlers.NewScanHandler(simulator, log),
		Alert:    handlers.NewAlertHandler(alertService, log, val),
		Approval: handlers.NewApprovalHandler(approvalService, log),
		Chat:     handlers.NewChatHandler(chatService, log, val),
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.New(cfg, log, limiter, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.WithFields(map[string]interface{}{
			"addr":     srv.Addr,
			"frontend": cfg.Server.FrontendURL,
		}).Info("HTTP server listening")
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info("Shutdown initiated")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorWithErr(err, "Graceful shutdown failed")
		return srv.Close()
	}

	log.Info("Server stopped")
	return nil
}
