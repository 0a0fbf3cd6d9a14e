// Package database implements the SQLite persistence layer for the asprak
// roster: the aspraks table, its migrations, and the queries the code
// generator and HTTP handlers consume.
package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig holds connection pool settings.
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// AsprakDB wraps the connection to the assistant roster database.
type AsprakDB struct {
	conn *sql.DB
	path string
}

// NewAsprakDB opens the roster database with default pooling.
func NewAsprakDB(dbPath string) (*AsprakDB, error) {
	return NewAsprakDBWithConfig(dbPath, DBConfig{})
}

// isInMemoryDB reports whether the path refers to an in-memory SQLite database.
func isInMemoryDB(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	return strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory")
}

// NewAsprakDBWithConfig opens the roster database, applies the connection
// pool settings and runs pending migrations.
func NewAsprakDBWithConfig(dbPath string, config DBConfig) (*AsprakDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster database: %w", err)
	}

	// SQLite handles many concurrent connections poorly; cap the pool to
	// avoid writer lock contention.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	// An in-memory database disappears when its last connection closes, so
	// the pool must stay at a single connection.
	if isInMemoryDB(dbPath) {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping roster database: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// WAL lets readers proceed while an import transaction is writing.
	if !isInMemoryDB(dbPath) {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	db := &AsprakDB{conn: conn, path: dbPath}
	if err := db.runMigrations(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// GetConnection exposes the underlying *sql.DB for ad-hoc queries.
func (db *AsprakDB) GetConnection() *sql.DB {
	return db.conn
}

// Path returns the database file path this connection was opened with.
func (db *AsprakDB) Path() string {
	return db.path
}

// Close closes the underlying connection.
func (db *AsprakDB) Close() error {
	return db.conn.Close()
}

// Ping verifies the connection is still alive.
func (db *AsprakDB) Ping() error {
	return db.conn.Ping()
}
