package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/classification"
	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/console"
	"github.com/Veraticus/ledgervox/internal/export"
	"github.com/Veraticus/ledgervox/internal/ofx"
	"github.com/Veraticus/ledgervox/internal/service"
)

// Import formats.
const (
	formatCSV = "csv"
	formatOFX = "ofx"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from CSV or OFX",
		Long: `Append transactions read from a file to the ledger.

CSV files use the export layout (` + strings.Join(export.Header, ", ") + `).
OFX and QFX bank or credit card statements are also accepted: credits
become income, debits become expenses, and the category is detected from
the payee name, falling back to Other.

The format is taken from the file extension unless --format is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("format", "", "file format: csv or ofx (default: from extension)")
	cmd.Flags().Bool("dry-run", false, "show what would be imported without saving")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	format, err := importFormat(path, format)
	if err != nil {
		return err
	}

	s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
	if err != nil {
		return err
	}
	defer s.Close()

	importer, err := newImporter(format, s.resolver, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	file, err := os.Open(path) // #nosec G304 -- user-provided import file
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	txns, err := importer.Import(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	if dryRun {
		printTransactions(out, txns)
		writeLine(out, cli.FormatInfo("Dry run: nothing was saved"))
		return nil
	}

	added := s.executor.Import(cmd.Context(), txns)
	writeLine(out, cli.FormatSuccess(fmt.Sprintf("Imported %d transactions from %s", len(added), filepath.Base(path))))
	return nil
}

func importFormat(path, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".ofx", ".qfx":
			format = formatOFX
		default:
			format = formatCSV
		}
	}
	if format != formatCSV && format != formatOFX {
		return "", fmt.Errorf("unsupported import format %q (use csv or ofx)", format)
	}
	return format, nil
}

func newImporter(format string, resolver *classification.Resolver, progress io.Writer) (service.Importer, error) {
	if format == formatCSV {
		return export.NewImporter(progress), nil
	}

	detector, err := classification.NewPayeeDetector(classification.DefaultPayeePatterns())
	if err != nil {
		return nil, fmt.Errorf("failed to build payee detector: %w", err)
	}
	return ofx.NewParser(detector, resolver, progress), nil
}
