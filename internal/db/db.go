// Package db opens and migrates the application database. PostgreSQL is
// the production dialect; SQLite backs local runs and tests.
package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to the database identified by the DSN. DSNs with a
// postgres scheme or key=value form use PostgreSQL; anything else is
// treated as a SQLite file path.
func Open(dsn string) (*gorm.DB, error) {
	trimmed := strings.TrimSpace(dsn)
	if trimmed == "" {
		return nil, fmt.Errorf("db: empty dsn")
	}

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	var dialector gorm.Dialector
	if isPostgresDSN(trimmed) {
		dialector = postgres.Open(trimmed)
	} else {
		dialector = sqlite.Open(trimmed)
	}

	conn, errOpen := gorm.Open(dialector, cfg)
	if errOpen != nil {
		return nil, fmt.Errorf("db: open: %w", errOpen)
	}
	return conn, nil
}

// isPostgresDSN reports whether a DSN targets PostgreSQL.
func isPostgresDSN(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return true
	}
	return strings.Contains(dsn, "host=") && strings.Contains(dsn, "dbname=")
}

// Ping verifies connectivity on the underlying connection pool.
func Ping(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	sqlDB, errDB := conn.DB()
	if errDB != nil {
		return fmt.Errorf("db: unwrap: %w", errDB)
	}
	return sqlDB.Ping()
}
