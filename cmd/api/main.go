package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-service/config"
	_ "todo-service/docs" // Swagger docs
	"todo-service/internal/httpserver"
	"todo-service/internal/middleware"
	todoHTTP "todo-service/internal/todo/delivery/http"
	"todo-service/internal/todo/repository"
	cachedRepo "todo-service/internal/todo/repository/cached"
	memoryRepo "todo-service/internal/todo/repository/memory"
	sqliteRepo "todo-service/internal/todo/repository/sqlite"
	"todo-service/internal/todo/usecase"
	"todo-service/pkg/log"
)

// @title       Todo Service API
// @description Minimal todo-list service with interchangeable in-memory and SQLite storage.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting todo-service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage driver: %s", cfg.Database.Driver)

	// 3. Repository
	var repo repository.Repository
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, dbErr := sqliteRepo.Open(cfg.Database.Path)
		if dbErr != nil {
			logger.Error(ctx, "Failed to open database: ", dbErr)
			return
		}
		defer db.Close()

		repo, err = sqliteRepo.New(db, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize sqlite repository: ", err)
			return
		}
	default:
		repo = memoryRepo.New(logger)
	}

	if cfg.Cache.Enabled {
		repo, err = cachedRepo.New(repo, cfg.Cache.Size, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize repository cache: ", err)
			return
		}
		logger.Infof(ctx, "Repository LRU cache enabled (size %d)", cfg.Cache.Size)
	}

	// 4. UseCase and delivery
	todoUC := usecase.New(repo, logger)
	todoHandler := todoHTTP.New(logger, todoUC)
	mw := middleware.New(logger, cfg.RateLimit)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TodoHandler: todoHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
