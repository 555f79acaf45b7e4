package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application expects.
// If the database cannot be migrated to this version, it's a fatal error.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Key/value ledger table",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS ledger_kv (
				key TEXT PRIMARY KEY,
				value TEXT NOT NULL
			)`)
			if err != nil {
				return fmt.Errorf("failed to execute query: %w", err)
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Track last update time per key",
		Up: func(tx *sql.Tx) error {
			// ADD COLUMN cannot default to CURRENT_TIMESTAMP; writers set it.
			if _, err := tx.Exec(`ALTER TABLE ledger_kv ADD COLUMN updated_at DATETIME`); err != nil {
				return fmt.Errorf("failed to add updated_at column: %w", err)
			}
			return nil
		},
	},
}

// MigrationStatus describes the schema state of a database.
type MigrationStatus struct {
	Pending         []Migration
	CurrentVersion  int
	ExpectedVersion int
}

// SchemaVersion returns the applied schema version.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}

// Status reports the applied version and the migrations still pending.
func (s *SQLiteStorage) Status(ctx context.Context) (MigrationStatus, error) {
	current, err := s.SchemaVersion(ctx)
	if err != nil {
		return MigrationStatus{}, err
	}

	status := MigrationStatus{
		CurrentVersion:  current,
		ExpectedVersion: ExpectedSchemaVersion,
	}
	for _, m := range migrations {
		if m.Version > current {
			status.Pending = append(status.Pending, m)
		}
	}
	return status, nil
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	currentVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	finalVersion, err := s.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
