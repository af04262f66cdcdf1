package http

import (
	"time"

	"bingo_backend/internal/http/handlers"
	"bingo_backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServiceGame       = "game"
	ServiceValidation = "validation"
)

// NewEngine builds a gin engine with the middleware both authorities share:
// recovery, CORS, request metrics and the probe/metrics endpoints.
func NewEngine(service string, health *handlers.HealthHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))
	r.Use(middleware.RequestMetrics(service))

	// Health checks (outside the worker pool)
	r.GET("/healthz", health.Liveness)
	r.GET("/readyz", health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RegisterGameRoutes mounts the game authority API. Every route except the
// long-lived draw feed runs inside the worker pool.
func RegisterGameRoutes(r *gin.Engine, h *handlers.GameHandler, workers int) {
	api := r.Group("/games")
	api.Use(middleware.WorkerPool(ServiceGame, workers))
	{
		api.POST("", h.CreateGame)
		api.GET("/:game_id", h.GetGame)
		api.POST("/:game_id/players", h.RegisterPlayer)
		api.POST("/:game_id/draw", h.DrawNumber)
		api.POST("/:game_id/players/:player_id/mark", h.MarkNumber)
		api.GET("/:game_id/bingo", h.CheckBingo)
		api.GET("/:game_id/players/:player_id/card", h.PlayerCard)
	}

	r.GET("/games/:game_id/feed", h.Feed)
}

// RegisterValidationRoutes mounts the validation authority API.
func RegisterValidationRoutes(r *gin.Engine, h *handlers.ValidationHandler, workers int) {
	api := r.Group("")
	api.Use(middleware.WorkerPool(ServiceValidation, workers))
	{
		api.POST("/register-card", h.RegisterCard)
		api.POST("/validate-number", h.ValidateNumber)
		api.POST("/validate-bingo", h.ValidateBingo)
		api.GET("/card/:player_id", h.GetCard)
	}
}
