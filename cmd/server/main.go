package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rafael/mathsolver/internal/api"
	"github.com/rafael/mathsolver/internal/config"
	"github.com/rafael/mathsolver/internal/db"
	"github.com/rafael/mathsolver/internal/logger"
	"github.com/rafael/mathsolver/internal/repository"
	"github.com/rafael/mathsolver/internal/repository/memory"
	"github.com/rafael/mathsolver/internal/repository/sqlite"
	"github.com/rafael/mathsolver/internal/services"
	"github.com/rafael/mathsolver/internal/solver"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("MathSolver Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("storage=%s", cfg.Storage)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("openai_model=%s", cfg.OpenAIModel)
	log.Debug("solver_timeout_seconds=%d", cfg.SolverTimeoutSecs)
	log.Debug("solver_max_tokens=%d", cfg.SolverMaxTokens)
	log.Debug("recent_problems_limit=%d", cfg.RecentProblemsLimit)

	// Open the storage backend
	var store repository.Store
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage, nothing survives a restart")
		store = memory.New().Repositories()
	} else {
		database, err := db.Open(cfg.DBPath)
		if err != nil {
			log.Error("failed to open database: %v", err)
			os.Exit(1)
		}
		defer func() {
			log.Debug("closing database connection")
			database.Close()
		}()
		store = sqlite.New(database.DB)
	}

	// Initialize the solver client
	solverClient := solver.New(solver.Config{
		APIKey:    cfg.OpenAIAPIKey,
		BaseURL:   cfg.OpenAIBaseURL,
		Model:     cfg.OpenAIModel,
		MaxTokens: cfg.SolverMaxTokens,
		Timeout:   time.Duration(cfg.SolverTimeoutSecs) * time.Second,
	})

	// Initialize services
	problemService := services.NewProblemService(store.Problems, store.Solutions)
	solveService := services.NewSolveService(solverClient, store.Solutions)
	progressService := services.NewProgressService(store.Problems, store.Progress, store.Attempts)
	sessionService := services.NewSessionService(store.Sessions)

	srv := &api.Server{
		ProblemService:  problemService,
		SolveService:    solveService,
		ProgressService: progressService,
		SessionService:  sessionService,
		RecentLimit:     cfg.RecentProblemsLimit,
	}

	// Configure HTTP server. The write timeout leaves headroom above the
	// solver timeout so slow model calls are not cut off mid-response.
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.SolverTimeoutSecs+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("MathSolver Server Stopped")
	log.Info("===========================================")
}
