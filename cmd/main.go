package main

import (
	"fmt"
	"os"

	"github.com/fillme/fillme-backend/internal/config"
	"github.com/fillme/fillme-backend/internal/db"
	"github.com/fillme/fillme-backend/internal/handlers"
	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/middleware"
	"github.com/fillme/fillme-backend/internal/repos"
	"github.com/fillme/fillme-backend/internal/server"
	"github.com/fillme/fillme-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := config.LoadConfig(log)
	if err != nil {
		log.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	surveyResponseRepo := repos.NewSurveyResponseRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	surveyService := services.NewSurveyService(thePG, log, surveyResponseRepo)

	// Handlers
	log.Info("Setting up handlers...")
	surveyHandler := handlers.NewSurveyHandler(log, surveyService, cfg.DefaultLimit)

	// Middleware
	adminKeyMiddleware := middleware.NewAdminKeyMiddleware(log, cfg.AdminSecretKey)

	// Router
	router := server.NewRouter(server.RouterConfig{
		SurveyHandler:      surveyHandler,
		AdminKeyMiddleware: adminKeyMiddleware,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
