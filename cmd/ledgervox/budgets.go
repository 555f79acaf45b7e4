package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/console"
	"github.com/Veraticus/ledgervox/internal/money"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budgets",
		Aliases: []string{"budget"},
		Short:   "Manage monthly budgets",
		Long:    `List budgets with this month's progress, set a category limit, or remove one.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(removeBudgetCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets and their progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			s.executor.Refresh(cmd.Context())
			writeLine(cmd.OutOrStdout(), analysis.NewCLIFormatter().FormatBudgets(s.executor.Snapshot().Budgets))
			return nil
		},
	}
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set a monthly limit for an expense category",
		Long: `Set the monthly limit for an expense category. An existing budget keeps its
spend and takes the new limit; a new one starts from this month's spending.

Example:
  ledgervox budgets set food 20000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := money.ParsePositive(args[1])
			if err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}

			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			_, err = s.executor.SetBudgetLimit(cmd.Context(), args[0], limit)
			return err
		},
	}
}

func removeBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <category>",
		Aliases: []string{"rm", "delete"},
		Short:   "Remove a budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			return s.executor.RemoveBudget(cmd.Context(), args[0])
		},
	}
}
