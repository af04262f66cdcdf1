package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bingo_backend/internal/config"
	httpServer "bingo_backend/internal/http"
	"bingo_backend/internal/http/handlers"
	"bingo_backend/internal/logger"
	"bingo_backend/internal/metrics"
	"bingo_backend/internal/repository"
	"bingo_backend/internal/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadValidation()
	logger.InitWriter(os.Stdout, cfg.LogLevel, cfg.LogJSON, "service", httpServer.ServiceValidation)
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	cards := service.NewValidationServiceWithObserver(repository.NewCardRepository(), metrics.Observer{})
	health := handlers.NewHealthHandler(httpServer.ServiceValidation, cfg.Version)

	r := httpServer.NewEngine(httpServer.ServiceValidation, health)
	httpServer.RegisterValidationRoutes(r, handlers.NewValidationHandler(cards), cfg.WorkerPoolSize)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("validation authority started", "port", cfg.AppPort)
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
