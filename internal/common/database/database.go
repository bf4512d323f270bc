// Package database owns the GORM connection lifecycle: open, migrate,
// health-check and close. Callers receive an explicit *Database handle;
// there is no package-level connection.
package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jgirmay/forgelog/internal/logbook/models"
	"github.com/jgirmay/forgelog/pkg/config"
)

// Database wraps the GORM DB instance.
type Database struct {
	db *gorm.DB
}

// New opens a connection to the configured backend.
func New(cfg config.DatabaseConfig) (*Database, error) {
	gormConfig := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.Type == "postgres" {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	} else {
		if cfg.Path != "" {
			if mkErr := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); mkErr != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", mkErr)
			}
		}
		db, err = gorm.Open(sqlite.Open(cfg.DSN()), gormConfig)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	// Single-writer tool; keep the pool small, especially for SQLite.
	if cfg.Type == "sqlite" {
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
	}

	return &Database{db: db}, nil
}

// Migrate creates or updates the schema for all persisted entities.
func (d *Database) Migrate() error {
	if err := d.db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// DB exposes the underlying GORM handle for repository construction.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// Health checks the database connection.
func (d *Database) Health() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Close closes the database connection.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
