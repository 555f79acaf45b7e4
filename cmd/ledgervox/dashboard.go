package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/tui"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"ui"},
		Short:   "Open the interactive dashboard",
		Long: `Open the full-screen dashboard with the overview, transaction table, budget
progress and analytics tabs.

Press space to start listening and type what you say; enter runs it as a
voice command. Press ? for the list of commands and keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toast, _ := cmd.Flags().GetDuration("toast")
			inline, _ := cmd.Flags().GetBool("inline")

			sink := tui.NewSink()
			s, err := openSession(cmd.Context(), appConfig, newSpeaker(appConfig, nil), sink)
			if err != nil {
				return err
			}
			defer s.Close()

			return tui.Run(cmd.Context(), s.executor, sink,
				tui.WithToastDuration(toast),
				tui.WithAltScreen(!inline),
			)
		},
	}

	cmd.Flags().Duration("toast", 3*time.Second, "how long notifications stay visible")
	cmd.Flags().Bool("inline", false, "render in the current screen instead of the alternate screen")

	return cmd
}
