package config

import (
	"fmt"
	"strings"

	"github.com/andrewpaige1/flashdeck-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Connect opens the configured database and migrates the schema.
func Connect(cfg Config) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Open returns a gorm handle for driver and dsn. Driver errors are translated
// into gorm's portable errors (ErrDuplicatedKey, ErrForeignKeyViolated).
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(sqliteDSN(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sqlite handle: %w", err)
		}
		// An in-memory database lives only as long as its connection.
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

// Migrate creates or updates the decks, cards and study_sessions tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Deck{}, &models.Card{}, &models.StudySession{}); err != nil {
		return fmt.Errorf("failed to auto migrate database: %w", err)
	}
	return nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by default.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_foreign_keys=on"
}
