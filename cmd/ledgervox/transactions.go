package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/analysis"
	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/console"
	"github.com/Veraticus/ledgervox/internal/engine"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"txn", "txns"},
		Short:   "Manage ledger transactions",
		Long:    `List, add, edit, and delete the income and expense entries in the ledger.`,
	}

	cmd.AddCommand(listTransactionsCmd())
	cmd.AddCommand(addTransactionCmd())
	cmd.AddCommand(editTransactionCmd())
	cmd.AddCommand(deleteTransactionCmd())

	return cmd
}

func listTransactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		Long: `Display transactions newest first. Filters combine: --type matches income or
expense, --category matches one category exactly, and --search matches
description or category case-insensitively.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := filterFromFlags(cmd)
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			rows := filter.Apply(s.ledger.Transactions())
			printTransactions(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().String("type", "", "only show income or expense")
	cmd.Flags().String("category", "", "only show this category")
	cmd.Flags().String("search", "", "search descriptions and categories")

	return cmd
}

func filterFromFlags(cmd *cobra.Command) (analysis.Filter, error) {
	typeFlag, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	search, _ := cmd.Flags().GetString("search")

	filter := analysis.Filter{
		Category: strings.TrimSpace(category),
		Search:   strings.TrimSpace(search),
	}
	if typeFlag != "" {
		t, err := model.ParseTransactionType(typeFlag)
		if err != nil {
			return analysis.Filter{}, err
		}
		filter.Type = t
	}
	return filter, nil
}

func printTransactions(w io.Writer, rows []model.Transaction) {
	if len(rows) == 0 {
		writeLine(w, cli.InfoStyle.Render("No transactions found. Use 'ledgervox transactions add' or say \"add expense 500 for food\"."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
	writeRow(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("ID"),
		headerStyle.Render("Date"),
		headerStyle.Render("Type"),
		headerStyle.Render("Category"),
		headerStyle.Render("Description"),
		headerStyle.Render("Amount"))

	for _, t := range rows {
		amount := money.Format(t.Amount)
		style := cli.SuccessStyle
		if t.IsExpense() {
			style = cli.ErrorStyle
		}
		writeRow(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Date.Display(), t.Type.Title(), t.Category, t.Description,
			style.Render(t.Sign()+amount))
	}

	if err := tw.Flush(); err != nil {
		slog.Error("failed to write output", "error", err)
	}
	writeLine(w, cli.SubtleStyle.Render(fmt.Sprintf("%d transaction(s)", len(rows))))
}

func writeRow(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}

func addEntryFlags(cmd *cobra.Command) {
	cmd.Flags().String("type", "", "income or expense")
	cmd.Flags().String("amount", "", "amount greater than zero, e.g. 1500 or 1,500")
	cmd.Flags().String("category", "", "category name or alias (unknown names become Other)")
	cmd.Flags().String("description", "", "description (defaults to a generated one)")
	cmd.Flags().String("date", "", "date as YYYY-MM-DD (defaults to today)")
}

// entryFromFlags builds an entry starting from base, overriding only the
// flags the user set.
func entryFromFlags(cmd *cobra.Command, base engine.Entry) (engine.Entry, error) {
	flags := cmd.Flags()
	entry := base

	if flags.Changed("type") {
		v, _ := flags.GetString("type")
		t, err := model.ParseTransactionType(v)
		if err != nil {
			return engine.Entry{}, err
		}
		entry.Type = t
	}
	if flags.Changed("amount") {
		v, _ := flags.GetString("amount")
		amount, err := money.ParsePositive(v)
		if err != nil {
			return engine.Entry{}, fmt.Errorf("invalid amount %q: %w", v, err)
		}
		entry.Amount = amount
	}
	if flags.Changed("category") {
		entry.Category, _ = flags.GetString("category")
	}
	if flags.Changed("description") {
		entry.Description, _ = flags.GetString("description")
	}
	if flags.Changed("date") {
		v, _ := flags.GetString("date")
		date, err := model.ParseDate(v)
		if err != nil {
			return engine.Entry{}, err
		}
		entry.Date = date
	}

	return entry, nil
}

func addTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction",
		Long: `Add an income or expense entry.

Example:
  ledgervox transactions add --type expense --amount 500 --category food`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry, err := entryFromFlags(cmd, engine.Entry{})
			if err != nil {
				return err
			}

			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			txn, err := s.executor.Record(cmd.Context(), entry)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), cli.SubtleStyle.Render("id: "+txn.ID))
			return nil
		},
	}

	addEntryFlags(cmd)
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func editTransactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a transaction",
		Long: `Replace the fields of an existing transaction, keeping its id. Fields whose
flags are not given keep their current value.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			current, err := s.ledger.Find(args[0])
			if err != nil {
				return err
			}

			entry, err := entryFromFlags(cmd, engine.Entry{
				Date:        current.Date,
				Amount:      current.Amount,
				Type:        current.Type,
				Category:    current.Category,
				Description: current.Description,
			})
			if err != nil {
				return err
			}

			_, err = s.executor.Edit(cmd.Context(), args[0], entry)
			return err
		},
	}

	addEntryFlags(cmd)

	return cmd
}

func deleteTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			removed, err := s.executor.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), cli.SubtleStyle.Render(fmt.Sprintf("%s %s %s", removed.Date.Display(), removed.Description, money.Format(removed.Amount))))
			return nil
		},
	}
}
