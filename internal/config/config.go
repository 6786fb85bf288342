package config

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/utils"
)

type Config struct {
	Port           string
	AdminSecretKey string
	DefaultLimit   int
}

// LoadConfig reads configuration from the environment once at startup.
// A .env file is honored when present but real environment variables win.
func LoadConfig(log *logger.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on environment variables")
	}

	cfg := Config{
		Port:           utils.GetEnv("PORT", "8080", log),
		AdminSecretKey: utils.GetEnv("ADMIN_SECRET_KEY", "", log),
		DefaultLimit:   utils.GetEnvAsInt("RESPONSES_DEFAULT_LIMIT", 100, log),
	}
	if cfg.AdminSecretKey == "" {
		return Config{}, fmt.Errorf("ADMIN_SECRET_KEY is required")
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 100
	}
	return cfg, nil
}
