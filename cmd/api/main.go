package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/investrack/server/internal/api"
	"github.com/investrack/server/internal/api/handlers"
	"github.com/investrack/server/internal/repository"
	"github.com/investrack/server/pkg/config"
	"github.com/investrack/server/pkg/database"
	"github.com/investrack/server/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting investment portfolio API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.OpenMySQL(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(db)
	investorRepo := repository.NewInvestorRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	statusLogRepo := repository.NewStatusLogRepository(db)
	defStatusRepo := repository.NewDefStatusRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to access database pool", zap.Error(err))
	}

	// Create router with dependencies
	router := api.NewRouter(api.Dependencies{
		ProjectsHandler:    handlers.NewProjectsHandler(projectRepo),
		InvestorsHandler:   handlers.NewInvestorsHandler(investorRepo),
		InvestmentsHandler: handlers.NewInvestmentsHandler(investmentRepo),
		StatusesHandler:    handlers.NewStatusesHandler(statusLogRepo),
		DefStatusHandler:   handlers.NewDefStatusHandler(defStatusRepo),
		DashboardHandler:   handlers.NewDashboardHandler(dashboardRepo),
		HealthHandler:      handlers.NewHealthHandler(sqlDB.PingContext),
		RateLimitEnabled:   cfg.RateLimitEnabled,
		RateLimitWindow:    cfg.RateLimitWindow,
		RateLimitMax:       cfg.RateLimitMax,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
