package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the ledger database schema to the latest version.

Every other command migrates automatically; use --status to inspect the
schema without changing it.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	status, _ := cmd.Flags().GetBool("status")
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	dbPath := appConfig.DatabasePath

	slog.Debug("Starting database migration", "database", dbPath, "status_only", status)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if status {
		st, err := store.Status(ctx)
		if err != nil {
			return err
		}
		writeLine(out, cli.FormatTitle("Database Migration Status"))
		writeLine(out, fmt.Sprintf("%-18s %s", "Database", dbPath))
		writeLine(out, fmt.Sprintf("%-18s %d", "Current version", st.CurrentVersion))
		writeLine(out, fmt.Sprintf("%-18s %d", "Latest version", st.ExpectedVersion))
		if len(st.Pending) == 0 {
			writeLine(out, cli.FormatSuccess("Schema is up to date"))
			keys, err := store.Keys(ctx)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				keys = []string{"(none)"}
			}
			writeLine(out, fmt.Sprintf("%-18s %s", "Stored keys", strings.Join(keys, ", ")))
			return nil
		}
		for _, m := range st.Pending {
			writeLine(out, cli.FormatWarning(fmt.Sprintf("Pending v%d: %s", m.Version, m.Description)))
		}
		return nil
	}

	writeLine(out, cli.FormatInfo(cli.FolderIcon+" Running database migrations..."))
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	writeLine(out, cli.FormatSuccess("Database migrations completed successfully!"))

	return nil
}
