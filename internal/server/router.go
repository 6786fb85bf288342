package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fillme/fillme-backend/internal/handlers"
	"github.com/fillme/fillme-backend/internal/middleware"
)

type RouterConfig struct {
	SurveyHandler      *handlers.SurveyHandler
	AdminKeyMiddleware *middleware.AdminKeyMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Requested-With", "X-Admin-Key"},
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/submit-response", cfg.SurveyHandler.SubmitResponse)

	// Admin
	admin := router.Group("/")
	admin.Use(cfg.AdminKeyMiddleware.RequireAdminKey())
	admin.GET("/responses", cfg.SurveyHandler.ListResponses)
	admin.GET("/export-excel", cfg.SurveyHandler.ExportExcel)

	return router
}
