package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/angularstore/catalog/internal/config"
	"github.com/angularstore/catalog/internal/http"
	"github.com/angularstore/catalog/internal/log"
	"github.com/angularstore/catalog/internal/repository"
	"github.com/angularstore/catalog/internal/service"
	"github.com/angularstore/catalog/internal/storage/db"
	"github.com/angularstore/catalog/internal/telemetry"
	"github.com/angularstore/catalog/pkg/cmdutil"
	"github.com/angularstore/catalog/pkg/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running api application: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log      config.Log
		HTTP     config.HTTP
		Store    config.Store
		Postgres config.Postgres
		Otel     config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	var (
		productRepository repository.ProductRepository
		healthChecker     http.HealthChecker
	)
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pgxPool, err := db.NewPgxPool(ctx, cfg.Postgres)
		if err != nil {
			return fmt.Errorf("error creating pgx pool: %w", err)
		}
		defer pgxPool.Close()

		dbClient := db.NewClient(pgxPool)
		productRepository = repository.NewPostgresRepository(dbClient)
		healthChecker = dbClient
	default:
		memRepo := repository.NewMemoryRepository()
		if cfg.Store.Seed {
			if err := repository.Seed(ctx, memRepo); err != nil {
				return fmt.Errorf("error seeding catalog: %w", err)
			}
		}
		productRepository = memRepo
		healthChecker = memRepo
	}

	v, err := validator.NewDefaultValidator()
	if err != nil {
		return fmt.Errorf("error creating validator: %w", err)
	}

	productService := service.NewProductService(productRepository)

	svc := http.New(cfg.HTTP, logger, v, productService, healthChecker)
	cleanup, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}

	logger.InfoContext(ctx, "http service started",
		slog.String("address", fmt.Sprintf(":%d", cfg.HTTP.Port)),
		slog.String("store", cfg.Store.Driver.String()))

	<-cmdutil.InterruptChan()

	logger.InfoContext(ctx, "http service is shutting down")
	if err := cleanup(ctx); err != nil {
		logger.ErrorContext(ctx, "error shutting down http service", slog.Any("error", err))
	}

	logger.InfoContext(ctx, "http service is stopped")

	return nil
}
