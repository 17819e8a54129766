package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lagunaro/loansim-backend/internal/logger"
	"github.com/lagunaro/loansim-backend/internal/types"
	"github.com/lagunaro/loansim-backend/internal/utils"
)

type SqliteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSqliteService(log *logger.Logger) (*SqliteService, error) {
	serviceLog := log.With("service", "SqliteService")

	log.Info("Loading environment variables...")
	sqlitePath := utils.GetEnv("SQLITE_PATH", "bbdd.db", log)

	log.Info("Opening sqlite database...", "path", sqlitePath)
	db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	if err != nil {
		log.Error("Failed to open sqlite database", "error", err)
		return nil, fmt.Errorf("Failed to open sqlite database: %w", err)
	}

	return &SqliteService{db: db, log: serviceLog}, nil
}

// AutoMigrateAll creates the schema if it is absent. It is idempotent and
// must run before the first request is served.
func (s *SqliteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	err := s.db.AutoMigrate(
		&types.Simulation{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SqliteService) DB() *gorm.DB {
	return s.db
}
