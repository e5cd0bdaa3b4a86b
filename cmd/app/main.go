package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"foodorders/cmd"
	"foodorders/internal/adapters/out/postgres/dishrepo"
	"foodorders/internal/adapters/out/postgres/errorlogrepo"
	"foodorders/internal/adapters/out/postgres/orderrepo"
	"foodorders/internal/adapters/out/postgres/userrepo"
	"foodorders/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs(logger)

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&dishrepo.DishDTO{},
		&userrepo.UserDTO{},
		&errorlogrepo.ErrorMessageDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.SeedInitialData(context.Background(), logger); err != nil {
		log.Fatalf("Failed to seed initial data: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			logger.Info("HTTP server stopped", "error", startErr)
		}
	}()

	waitForShutdown(app, jobManager, e, configs.ShutdownTimeout, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("No .env file found, relying on process environment")
	}

	config := cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "8080"),
		DBHost:          envOrDefault("DB_HOST", "localhost"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		ShutdownTimeout: 30 * time.Second,
	}

	if raw := os.Getenv("MAX_CONCURRENT_ORDERS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid MAX_CONCURRENT_ORDERS value %q", raw)
		}
		config.MaxConcurrentOrders = parsed
	}

	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// waitForShutdown blocks until SIGINT or SIGTERM, then drains the
// application: the sweep job stops first so no new lifecycle runs start,
// then in-flight runs get ShutdownTimeout to release their orders, then
// the HTTP listener closes.
func waitForShutdown(
	app *cmd.CompositionRoot,
	jobManager *jobs.JobManager,
	e *echo.Echo,
	timeout time.Duration,
	logger *slog.Logger,
) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	jobManager.StopAll()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.Dispatcher().Shutdown(ctx); err != nil {
		logger.Error("Lifecycle runs did not drain in time", "error", err)
	}

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}
}
