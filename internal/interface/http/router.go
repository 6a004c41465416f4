package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, logger *slog.Logger) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	log := logger.With("component", "http.router")
	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(log),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(log),
		rateLimitMiddleware(cfg.HTTP.RateLimit, log),
	)

	router.GET("/health", handler.Health)

	bio := router.Group("/biorhythm")
	{
		bio.GET("/history", handler.BiorhythmHistory)
		bio.GET("/today", handler.BiorhythmToday)
		bio.GET("/date", handler.BiorhythmDate)
		bio.GET("/range", handler.BiorhythmRange)
		bio.GET("/forecast", handler.BiorhythmForecast)
		bio.GET("/chart.png", handler.BiorhythmChart)
	}
	router.GET("/biorhythm", handler.BiorhythmRange)

	mayaGroup := router.Group("/maya")
	{
		mayaGroup.GET("/today", handler.MayaToday)
		mayaGroup.GET("/date", handler.MayaDate)
		mayaGroup.GET("/range", handler.MayaRange)
	}

	api := router.Group("/api/maya")
	{
		api.POST("/birth-info", handler.MayaBirthInfo)
		api.GET("/history", handler.MayaHistory)
	}

	dress := router.Group("/dress")
	{
		dress.GET("/today", handler.DressToday)
		dress.GET("/date", handler.DressDate)
		dress.GET("/range", handler.DressRange)
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}
