package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/fillme/fillme-backend/internal/logger"
	"github.com/fillme/fillme-backend/internal/types"
	"github.com/fillme/fillme-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "survey_db", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	serviceLog.Info("Connecting to Postgres...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		serviceLog.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql.DB: %w", err)
	}
	// Recycle connections hourly; long-lived idle connections to the
	// database server tend to get dropped.
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(5)

	return &PostgresService{db: db, log: serviceLog}, nil
}

// AutoMigrateAll creates the survey_responses table when missing.
func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := s.db.AutoMigrate(&types.SurveyResponse{}); err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	return EnsureOtherPlatformNameColumn(s.db, s.log)
}

// EnsureOtherPlatformNameColumn adds the other_platform_name column to
// survey_responses when it is missing. The check-then-add is idempotent and
// safe to run any number of times against any store state; it covers stores
// created before the column existed.
func EnsureOtherPlatformNameColumn(db *gorm.DB, log *logger.Logger) error {
	migrator := db.Migrator()
	if migrator.HasColumn(&types.SurveyResponse{}, "other_platform_name") {
		log.Debug("Column other_platform_name already exists")
		return nil
	}
	log.Info("Adding column other_platform_name to survey_responses...")
	if err := migrator.AddColumn(&types.SurveyResponse{}, "OtherPlatformName"); err != nil {
		return fmt.Errorf("add other_platform_name column: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}
