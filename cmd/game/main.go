package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bingo_backend/internal/config"
	"bingo_backend/internal/db"
	httpServer "bingo_backend/internal/http"
	"bingo_backend/internal/http/handlers"
	"bingo_backend/internal/logger"
	"bingo_backend/internal/metrics"
	"bingo_backend/internal/repository"
	"bingo_backend/internal/service"
	"bingo_backend/internal/validation"
	"bingo_backend/internal/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadGame()
	logger.InitWriter(os.Stdout, cfg.LogLevel, cfg.LogJSON, "service", httpServer.ServiceGame)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	client := validation.NewClient(cfg.ValidationURL, cfg.ValidationTimeout).
		WithHook(metrics.ObserveValidationCall)

	hub := ws.NewHub()
	observers := service.GameObservers{metrics.Observer{}, hub}
	health := handlers.NewHealthHandler(httpServer.ServiceGame, cfg.Version).
		AddCheck("validation_authority", client.Ping)

	if cfg.DatabaseURL != "" {
		pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("audit database unavailable", "error", err)
		}
		defer pool.Close()

		audit := service.NewAuditService(pool)
		observers = append(observers, audit)
		health.AddCheck("database", audit.Ping)
	}

	if publisher := service.NewDrawPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); publisher != nil {
		defer publisher.Close()
		observers = append(observers, publisher)
		health.AddCheck("redis", publisher.Ping)
	}

	games := service.NewGameServiceWithConfig(repository.NewGameRepository(), client, service.GameServiceConfig{
		Observer: observers,
	})

	r := httpServer.NewEngine(httpServer.ServiceGame, health)
	httpServer.RegisterGameRoutes(r, handlers.NewGameHandler(games, hub), cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("game authority started", "port", cfg.AppPort, "validation_url", cfg.ValidationURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
