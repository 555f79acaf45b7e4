package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/console"
)

func sayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "say <utterance...>",
		Short: "Run one voice command",
		Long: `Run a single utterance through the command matcher as if it had been spoken.

Examples:
  ledgervox say add expense 500 for food
  ledgervox say what is my balance
  ledgervox say set budget 20000 for food`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			s, err := openSession(cmd.Context(), appConfig, newSpeaker(appConfig, out), console.NewPresenter(out))
			if err != nil {
				return err
			}
			defer s.Close()

			runUtterance(cmd, s, strings.Join(args, " "))
			return nil
		},
	}
}

// runUtterance executes one final transcript. When voice replies are off
// the reply is still printed so the console shows what happened.
func runUtterance(cmd *cobra.Command, s *session, utterance string) {
	resp := s.executor.Handle(cmd.Context(), utterance)
	if resp.Reply != "" && !s.ledger.Settings().VoiceResponseEnabled {
		writeLine(cmd.OutOrStdout(), cli.FormatReply(resp.Reply))
	}
}
