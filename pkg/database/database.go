package database

import (
	"fmt"
	"strings"

	"email-responder-backend/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NormalizeDatabaseURL rewrites the legacy "postgres://" scheme to
// "postgresql://". Some hosting providers hand out URLs with the legacy
// prefix; only the scheme token is substituted, exactly once.
func NormalizeDatabaseURL(url string) string {
	if strings.HasPrefix(url, "postgres://") {
		return strings.Replace(url, "postgres://", "postgresql://", 1)
	}
	return url
}

// NewPostgresConnection opens a GORM connection to PostgreSQL using the
// configured DATABASE_URL
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	dsn := NormalizeDatabaseURL(cfg.DatabaseURL)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}
