package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

const migrationsTableName = "schema_migrations"

// migration is one named schema change, applied at most once.
type migration struct {
	name string
	up   func(*sql.DB) error
}

// rosterMigrations run in order. Never reorder or edit an applied entry;
// append a new migration instead.
var rosterMigrations = []migration{
	{name: "001_create_aspraks", up: createAspraksTable},
	{name: "002_active_code_index", up: createActiveCodeIndex},
}

func (db *AsprakDB) runMigrations() error {
	if err := ensureMigrationTable(db.conn); err != nil {
		return err
	}

	for _, m := range rosterMigrations {
		applied, err := isMigrationApplied(db.conn, m.name)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := m.up(db.conn); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.name, err)
		}
		if err := markMigrationApplied(db.conn, m.name); err != nil {
			return err
		}
		log.Printf("Applied migration %s", m.name)
	}

	return nil
}

func createAspraksTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS aspraks (
			id TEXT PRIMARY KEY,
			nim TEXT NOT NULL UNIQUE,
			nama_lengkap TEXT NOT NULL,
			kode TEXT NOT NULL,
			kode_rule TEXT NOT NULL DEFAULT '',
			angkatan INTEGER NOT NULL,
			status TEXT NOT NULL DEFAULT 'active',
			displaced_by TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create aspraks table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_aspraks_angkatan ON aspraks(angkatan)`); err != nil {
		return fmt.Errorf("failed to create angkatan index: %w", err)
	}
	return nil
}

// createActiveCodeIndex enforces code uniqueness among active rows only:
// an expired row keeps its historical code without blocking reassignment.
func createActiveCodeIndex(db *sql.DB) error {
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_aspraks_active_kode
		ON aspraks(kode) WHERE status = 'active'
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create active code index: %w", err)
	}
	return nil
}

func ensureMigrationTable(db *sql.DB) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			name TEXT PRIMARY KEY,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`, migrationsTableName)

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to ensure schema_migrations table: %w", err)
	}
	return nil
}

func isMigrationApplied(db *sql.DB, name string) (bool, error) {
	var appliedAt sql.NullTime
	query := fmt.Sprintf(`SELECT applied_at FROM %s WHERE name = ?`, migrationsTableName)
	err := db.QueryRow(query, name).Scan(&appliedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to check migration %s: %w", name, err)
	}
	return appliedAt.Valid, nil
}

func markMigrationApplied(db *sql.DB, name string) error {
	query := fmt.Sprintf(`INSERT OR REPLACE INTO %s(name, applied_at) VALUES(?, ?)`, migrationsTableName)
	if _, err := db.Exec(query, name, time.Now()); err != nil {
		return fmt.Errorf("failed to mark migration %s as applied: %w", name, err)
	}
	return nil
}
