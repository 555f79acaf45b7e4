package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
)

func resetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase the ledger",
		Long: `Reset erases everything stored in the ledger database, including every
transaction and budget, and restores the default balance, theme and voice
setting.

This is a destructive operation. With --seed the sample transactions and
budgets are written back afterwards.`,
		Args: cobra.NoArgs,
		RunE: runReset,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")
	cmd.Flags().Bool("seed", false, "Reseed the sample transactions and budgets")

	return cmd
}

func runReset(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	seed, _ := cmd.Flags().GetBool("seed")
	out := cmd.OutOrStdout()

	s, err := openSession(cmd.Context(), appConfig, nil, nil)
	if err != nil {
		return err
	}
	defer s.Close()

	count := s.ledger.Len()
	budgets := len(s.ledger.Budgets())

	if !force {
		writeLine(out, fmt.Sprintf("This will delete %d transactions and %d budgets.", count, budgets))
		if _, err := fmt.Fprint(out, "\n"+cli.FormatPrompt("Are you sure you want to continue? [y/N]")); err != nil {
			slog.Error("failed to write output", "error", err)
		}

		line, err := cli.NewLineReader(cmd.InOrStdin()).ReadLine(cmd.Context())
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		response := strings.TrimSpace(line)
		if !strings.EqualFold(response, "y") && !strings.EqualFold(response, "yes") {
			writeLine(out, "Reset canceled.")
			return nil
		}
	}

	if err := s.store.Clear(cmd.Context()); err != nil {
		return err
	}
	s.ledger.Reset(cmd.Context(), seed, s.options)

	msg := fmt.Sprintf("Successfully reset %d transactions and %d budgets", count, budgets)
	if seed {
		msg += "; sample data restored"
	}
	writeLine(out, cli.FormatSuccess(msg))
	return nil
}
