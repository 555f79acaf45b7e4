package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV",
		Long: `Write every transaction to ` + export.FileName + ` with the columns
` + strings.Join(export.Header, ", ") + `.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			if dir == "" {
				dir = appConfig.ExportDir
			}

			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			location, err := export.NewFileExporter(dir).Export(cmd.Context(), s.ledger.Transactions())
			if err != nil {
				return fmt.Errorf("failed to export transactions: %w", err)
			}

			writeLine(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", s.ledger.Len(), location)))
			return nil
		},
	}

	cmd.Flags().String("dir", "", "directory to write "+export.FileName+" into (default: export.dir)")

	return cmd
}
