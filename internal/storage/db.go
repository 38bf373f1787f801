// Copyright (c) 2025-2026 Alqudimi Technology
// SPDX-License-Identifier: GPL-3.0-or-later

package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	_ "github.com/go-sql-driver/mysql" // MySQL driver for remote DATABASE_URL
	_ "modernc.org/sqlite"             // SQLite driver for local DATABASE_URL
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrations embed.FS

// Dialect identifies the relational engine behind a DATABASE_URL.
type Dialect string

// Supported dialects.
const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// DBConfig holds database configuration options.
type DBConfig struct {
	// MaxOpenConns is the maximum number of open connections to the database.
	MaxOpenConns int
	// MaxIdleConns is the maximum number of connections in the idle connection pool.
	MaxIdleConns int
	// ConnMaxLifetime is the maximum amount of time a connection may be reused.
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle.
	ConnMaxIdleTime time.Duration
}

// DefaultDBConfig returns sensible pool defaults for both engines.
func DefaultDBConfig() DBConfig {
	return DBConfig{
		// SQLite with WAL mode supports multiple readers but a single writer;
		// MySQL tolerates a much larger pool but these limits serve both.
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
}

// ParseDatabaseURL classifies a DATABASE_URL and returns the dialect plus
// the driver-level DSN. A mysql:// URL selects the MySQL driver; anything
// else is treated as a SQLite path or DSN.
//
// relaxTLS appends tls=skip-verify to MySQL DSNs; it is only set in
// development environments.
func ParseDatabaseURL(databaseURL string, relaxTLS bool) (Dialect, string, error) {
	if databaseURL == "" {
		return "", "", fmt.Errorf("empty database URL")
	}

	if strings.HasPrefix(databaseURL, "mysql://") {
		u, err := url.Parse(databaseURL)
		if err != nil {
			return "", "", fmt.Errorf("parsing mysql URL: %w", err)
		}

		host := u.Host
		if u.Port() == "" {
			host += ":3306"
		}
		dbName := strings.TrimPrefix(u.Path, "/")
		if dbName == "" {
			return "", "", fmt.Errorf("mysql URL is missing a database name")
		}

		var userInfo string
		if u.User != nil {
			userInfo = u.User.String() + "@"
		}

		params := "parseTime=true"
		if relaxTLS {
			params += "&tls=skip-verify"
		}

		dsn := fmt.Sprintf("%stcp(%s)/%s?%s", userInfo, host, dbName, params)
		return DialectMySQL, dsn, nil
	}

	dsn := strings.TrimPrefix(databaseURL, "sqlite://")
	return DialectSQLite, dsn, nil
}

// NewDB opens a database connection for the given dialect and configures it.
func NewDB(dialect Dialect, dsn string) (*sql.DB, error) {
	return NewDBWithConfig(dialect, dsn, DefaultDBConfig())
}

// NewDBWithConfig opens a database connection with custom pool configuration.
// The connection is not verified here; the initializer's connection test owns
// the bounded-timeout ping.
func NewDBWithConfig(dialect Dialect, dsn string, cfg DBConfig) (*sql.DB, error) {
	var driverName string
	switch dialect {
	case DialectSQLite:
		driverName = "sqlite"
	case DialectMySQL:
		driverName = "mysql"
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if dialect == DialectSQLite {
		// Configure SQLite for better performance and concurrency
		pragmas := []string{
			"PRAGMA journal_mode=WAL",   // Write-Ahead Logging for better concurrency
			"PRAGMA busy_timeout=5000",  // Wait 5s when database is locked
			"PRAGMA synchronous=NORMAL", // Good balance of safety and speed
			"PRAGMA foreign_keys=ON",    // Enforce foreign key constraints
			"PRAGMA temp_store=MEMORY",  // Store temp tables in memory
		}

		for _, pragma := range pragmas {
			if _, err := db.Exec(pragma); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
			}
		}
	}

	return db, nil
}

// Migrate runs all pending database migrations for the dialect.
func Migrate(db *sql.DB, dialect Dialect) error {
	goose.SetBaseFS(migrations)

	var gooseDialect, dir string
	switch dialect {
	case DialectSQLite:
		gooseDialect, dir = "sqlite3", "migrations/sqlite"
	case DialectMySQL:
		gooseDialect, dir = "mysql", "migrations/mysql"
	default:
		return fmt.Errorf("unsupported dialect %q", dialect)
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
