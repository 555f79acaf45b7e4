package main

import (
	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/analysis"
)

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the monthly report",
		Long: `Show this month's income, expenses and savings, the financial health score,
budget progress, spending by category, the six-month trend and spending
insights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			s.executor.Refresh(cmd.Context())
			writeLine(cmd.OutOrStdout(), analysis.NewCLIFormatter().FormatReport(s.executor.Snapshot()))
			return nil
		},
	}
}
