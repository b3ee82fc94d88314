package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"inquirydesk/store"
)

// openDatabase opens the configured datastore and wraps it in gorm.
func openDatabase(config *Config) (*gorm.DB, error) {
	var (
		dialector gorm.Dialector
		sqlDriver = "sqlite3"
	)

	if config.DatabaseDriver == DriverPostgres {
		sqlDriver = "pgx"
	}

	db, err := sql.Open(sqlDriver, config.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", config.DatabaseDriver, err)
	}

	switch config.DatabaseDriver {
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{Conn: db})
	default:
		// one connection, so :memory: databases are shared and writers queue
		db.SetMaxOpenConns(1)
		dialector = sqlite.New(sqlite.Config{Conn: db})
	}

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", config.DatabaseDriver, err)
	}

	return gormDB, nil
}

// dbInit creates the inquiries, admin and log_entries tables when missing.
// The inquiries.status column defaults to 'pending'.
func dbInit(db *gorm.DB) error {
	if err := db.AutoMigrate(&store.Inquiry{}, &store.Admin{}, &store.LogEntry{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}

func closeDatabase(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
