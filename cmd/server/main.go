// Package main initializes and starts the user registration HTTP server,
// setting up configuration, logging, storage, validation, services and handlers.
package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	nethttp "net/http"

	"github.com/atinyakov/userkeeper/internal/config"
	"github.com/atinyakov/userkeeper/internal/db"
	"github.com/atinyakov/userkeeper/internal/logger"
	"github.com/atinyakov/userkeeper/internal/repository"
	"github.com/atinyakov/userkeeper/internal/server/handler/http"
	"github.com/atinyakov/userkeeper/internal/service"
	"github.com/atinyakov/userkeeper/internal/validation"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	// Pick the user store: PostgreSQL when a DSN is configured, memory otherwise.
	var repo service.UserRepository
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		defer postgresDB.Close()
		repo = repository.NewPostgresUserRepository(postgresDB)
		zapLogger.Info("using postgres user repository")
	} else {
		repo = repository.NewMemoryUserRepository()
		zapLogger.Info("using in-memory user repository")
	}

	// Initialize business logic.
	validator := validation.NewUserValidator(repo)
	userService := service.NewUserService(repo, validator, zapLogger)

	// Build the router with middleware and routes.
	userHandler := &http.UserHandler{UserService: userService}
	router := http.NewRouter(userHandler, zapLogger)

	server := &nethttp.Server{
		Addr:              options.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("starting HTTP server", zap.String("addr", options.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
