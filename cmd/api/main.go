package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eagleinfoservice/directory-api/internal/config"
	"github.com/eagleinfoservice/directory-api/internal/database"
	"github.com/eagleinfoservice/directory-api/internal/handler"
	"github.com/eagleinfoservice/directory-api/internal/metrics"
	middlewarepkg "github.com/eagleinfoservice/directory-api/internal/middleware"
	"github.com/eagleinfoservice/directory-api/internal/repository"
	"github.com/eagleinfoservice/directory-api/internal/router"
	"github.com/eagleinfoservice/directory-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL, database.PoolConfig{
		MinConns: cfg.PoolMinConns,
		MaxConns: cfg.PoolMaxConns,
	})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	businessesRepo := repository.NewPGXBusinessesRepository(pool)
	if err := businessesRepo.CheckSchema(ctx); err != nil {
		zap.L().Fatal("businesses schema check failed", zap.Error(err))
	}

	lookupMetrics := metrics.New(prometheus.DefaultRegisterer)
	businessesService := service.NewBusinessesService(businessesRepo, cfg.PhoneRegion, lookupMetrics)

	businessHandler := handler.NewBusinessHandler(businessesService)
	healthHandler := handler.NewHealthHandler(pool)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	router.Register(e, cfg, router.Handlers{
		Business: businessHandler,
		Health:   healthHandler,
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	zap.L().Info("server listening", zap.String("port", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zap.L().Info("received signal, shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("graceful shutdown failed", zap.Error(err))
	}
}
