package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/volunhub/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens a postgres-backed GORM handle. The handle is owned by
// the caller and passed down into repositories; there is no package-level
// database singleton.
func NewConnection(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.Info("connected to database")

	return db, nil
}

// Migrate migrates the database schema
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Skill{},
		&models.Volunteer{},
		&models.Project{},
		&models.VolunteerSkill{},
		&models.ProjectSkill{},
		&models.Assignment{},
	)
	if err != nil {
		return err
	}

	// Only one pending/accepted assignment may exist per pair. The WHERE
	// clause cannot be expressed in a gorm index tag, so the partial unique
	// index is created by hand. Valid on postgres and sqlite.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_active_assignment
		ON assignments(project_skill_id, volunteer_skill_id)
		WHERE status IN ('pending','accepted') AND deleted_at IS NULL`).Error
}
