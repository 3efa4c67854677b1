package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const schemaTable = `CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY)`

// MigrateUp applies every up script not yet recorded in schema_migrations,
// oldest first. Each script runs in its own transaction.
func MigrateUp(db *sql.DB) error {
	versions, err := migrationVersions()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	for _, v := range versions {
		if applied[v] {
			continue
		}
		if err := runMigration(db, v, ".up.sql", `INSERT INTO schema_migrations (version) VALUES (?)`); err != nil {
			return err
		}
	}
	return nil
}

// MigrateDown reverts the applied versions newest first.
func MigrateDown(db *sql.DB) error {
	versions, err := migrationVersions()
	if err != nil {
		return err
	}
	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}
	slices.Reverse(versions)
	for _, v := range versions {
		if !applied[v] {
			continue
		}
		if err := runMigration(db, v, ".down.sql", `DELETE FROM schema_migrations WHERE version = ?`); err != nil {
			return err
		}
	}
	return nil
}

// migrationVersions lists the embedded scripts by version, e.g. "0001_kv_state".
func migrationVersions() ([]string, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return nil, fmt.Errorf("storage: glob migrations: %w", err)
	}
	out := make([]string, 0, len(entries))
	for _, name := range entries {
		out = append(out, strings.TrimSuffix(path.Base(name), ".up.sql"))
	}
	slices.Sort(out)
	return out, nil
}

func appliedVersions(db *sql.DB) (map[string]bool, error) {
	if _, err := db.Exec(schemaTable); err != nil {
		return nil, fmt.Errorf("storage: create schema_migrations: %w", err)
	}
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("storage: list applied migrations: %w", err)
	}
	defer rows.Close()
	out := map[string]bool{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: scan migration version: %w", err)
		}
		out[v] = true
	}
	return out, rows.Err()
}

func runMigration(db *sql.DB, version, suffix, record string) error {
	name := "migrations/" + version + suffix
	script, err := migrationFiles.ReadFile(name)
	if err != nil {
		return fmt.Errorf("storage: read migration %s: %w", name, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("storage: begin migration %s: %w", name, err)
	}
	if _, err := tx.Exec(string(script)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("storage: apply migration %s: %w", name, err)
	}
	if _, err := tx.Exec(record, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("storage: record migration %s: %w", name, err)
	}
	return tx.Commit()
}
