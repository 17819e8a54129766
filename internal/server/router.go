package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lagunaro/loansim-backend/internal/handlers"
	"github.com/lagunaro/loansim-backend/internal/middleware"
)

type RouterConfig struct {
	TemplatesGlob      string
	SessionMiddleware  *middleware.SessionMiddleware
	IdentityMiddleware *middleware.IdentityMiddleware
	PageHandler        *handlers.PageHandler
	IdentifyHandler    *handlers.IdentifyHandler
	SimulationHandler  *handlers.SimulationHandler
	HistoryHandler     *handlers.HistoryHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:8080",
		},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.LoadHTMLGlob(cfg.TemplatesGlob)
	router.Use(cfg.SessionMiddleware.EnsureToken())

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.GET("/", cfg.PageHandler.Index)
	router.GET("/identify", cfg.IdentifyHandler.Show)
	router.POST("/identify", cfg.IdentifyHandler.Submit)
	router.GET("/confirmation", cfg.PageHandler.Confirmation)
	router.GET("/history", cfg.HistoryHandler.Show)
	router.POST("/history", cfg.HistoryHandler.Submit)
	router.GET("/history/:id", cfg.HistoryHandler.Detail)

	// ===============
	// || Identified ||
	// ===============
	form := router.Group("/form")
	form.Use(cfg.IdentityMiddleware.RequireIdentity())
	form.GET("", cfg.SimulationHandler.ShowForm)
	form.POST("", cfg.SimulationHandler.SubmitForm)

	return router
}
