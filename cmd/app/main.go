package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shopadmin/cmd"
	adapterhttp "shopadmin/internal/adapters/in/http"
	"shopadmin/internal/adapters/out/kafkax"
	"shopadmin/internal/adapters/out/postgres"
	"shopadmin/internal/adapters/out/redisx"
	"shopadmin/internal/core/domain/model/kernel"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real deployments configure via the environment.
	_ = godotenv.Load(".env")

	config := cmd.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(config, logger); err != nil {
		logger.Fatal("service terminated", zap.Error(err))
	}
}

func run(config cmd.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(config.DSN()); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	redisClient, err := redisx.NewClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer func() {
		_ = redisClient.Close()
	}()

	publisher := kafkax.NewPublisher(config.KafkaBrokers, config.KafkaOrderEventsTopic)
	defer func() {
		_ = publisher.Close()
	}()

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, publisher, logger)

	systemActorID, err := kernel.UUIDFromString(config.SystemActorID)
	if err != nil {
		return fmt.Errorf("invalid system actor ID: %w", err)
	}

	jobManager := root.CreateJobManager(
		systemActorID, config.MaxPendingAge, config.ActivityRetentionDays)
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(root.CreateServerHandlers())
	server.RegisterRoutes(e, root.TokenIssuer())

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start("0.0.0.0:" + config.HTTPPort)
	}()

	logger.Info("service started", zap.String("port", config.HTTPPort))

	select {
	case err = <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
