package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk/cmd"
	httpadapter "orderdesk/internal/adapters/in/http"
	"orderdesk/internal/adapters/out/postgres"
	"orderdesk/internal/core/application/usecases/commands"

	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB := mustGormOpen(configs)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("Failed to release connections", "error", closeErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	refresh := app.CreateRefreshActiveOrdersCommandHandler()
	if err = refresh.Handle(ctx, commands.NewRefreshActiveOrdersCommand("startup")); err != nil {
		logger.Warn("Initial active orders refresh failed", "error", err)
	}

	consumer, err := app.NewOrderChangesConsumer()
	if err != nil {
		log.Fatalf("Failed to consume order changes: %v", err)
	}
	if consumer != nil {
		go consumer.Run(ctx)
	}

	jobManager := app.NewJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	configs, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return configs
}

func mustGormOpen(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN:                  configs.DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		log.Fatalf("Failed to connect to postgres: %v", err)
	}

	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := httpadapter.NewEcho(logger)
	app.NewHTTPServer().Register(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()
	logger.Info("Order desk listening", "port", port)

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
