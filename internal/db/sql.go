package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"weddingplanner/internal/config"
	"weddingplanner/internal/model"
)

// Models lists every table the SQL backend manages.
var Models = []interface{}{
	&model.User{},
	&model.Budget{},
	&model.Guest{},
	&model.Vendor{},
	&model.Task{},
	&model.Venue{},
}

// NewSQL returns a connected GORM DB for driver. dsn is a MySQL DSN or a
// sqlite file path. GORM diagnostics go to log with bind values elided.
func NewSQL(driver, dsn string, log *slog.Logger) (*gorm.DB, error) {
	if log == nil {
		log = slog.Default()
	}

	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}

	queryLog := gormlogger.NewSlogLogger(log.With("component", "gorm"), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         queryLog,
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates every table. With reset it drops them first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		slog.Warn("RESET_DB=true detected, dropping all tables")
		for _, table := range Models {
			if err := db.Migrator().DropTable(table); err != nil {
				slog.Warn("drop table failed (may not exist)", "error", err)
			}
		}
	}
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
