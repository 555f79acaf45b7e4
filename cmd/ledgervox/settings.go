package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/console"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		Long:  `Show the stored preferences, or change the theme, spoken replies, or balance.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			printSettings(cmd, s.ledger.Settings())
			return nil
		},
	}

	cmd.AddCommand(themeCmd())
	cmd.AddCommand(voiceCmd())
	cmd.AddCommand(balanceCmd())

	return cmd
}

func printSettings(cmd *cobra.Command, settings model.Settings) {
	voice := "off"
	if settings.VoiceResponseEnabled {
		voice = "on"
	}
	content := strings.Join([]string{
		fmt.Sprintf("%-16s %s", "Balance", money.Format(settings.Balance)),
		fmt.Sprintf("%-16s %s", "Theme", settings.Theme),
		fmt.Sprintf("%-16s %s", "Voice replies", voice),
	}, "\n")
	writeLine(cmd.OutOrStdout(), cli.RenderBox("Settings", content))
}

func themeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark|toggle]",
		Short:     "Set or toggle the dashboard theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark), "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			choice := "toggle"
			if len(args) == 1 {
				choice = strings.ToLower(args[0])
			}

			var theme model.Theme
			if choice != "toggle" {
				parsed, err := model.ParseTheme(choice)
				if err != nil {
					return err
				}
				theme = parsed
			}

			s, err := openSession(cmd.Context(), appConfig, nil, console.NewPresenter(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			defer s.Close()

			if theme == "" {
				s.executor.ToggleTheme(cmd.Context())
				return nil
			}
			s.executor.SetTheme(cmd.Context(), theme)
			return nil
		},
	}
}

func voiceCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "voice [on|off]",
		Short:     "Turn spoken replies on or off",
		Long:      `Turn spoken replies on or off. Without an argument the setting is toggled.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			enabled := !s.ledger.Settings().VoiceResponseEnabled
			if len(args) == 1 {
				switch strings.ToLower(args[0]) {
				case "on", "true", "yes":
					enabled = true
				case "off", "false", "no":
					enabled = false
				default:
					return fmt.Errorf("expected on or off, got %q", args[0])
				}
			}

			s.executor.SetVoiceResponse(cmd.Context(), enabled)
			state := "off"
			if enabled {
				state = "on"
			}
			writeLine(cmd.OutOrStdout(), cli.FormatSuccess("Voice replies "+state))
			return nil
		},
	}
}

func balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance <amount>",
		Short: "Set the current balance",
		Long: `Set the balance shown on the dashboard. Adding transactions does not change
it. A leading minus sign is accepted for an overdrawn balance; put -- before it:

  ledgervox settings balance -- -1500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := money.ParseSigned(args[0])
			if err != nil {
				return fmt.Errorf("invalid balance %q: %w", args[0], err)
			}

			s, err := openSession(cmd.Context(), appConfig, nil, nil)
			if err != nil {
				return err
			}
			defer s.Close()

			s.executor.SetBalance(cmd.Context(), balance)
			writeLine(cmd.OutOrStdout(), cli.FormatSuccess("Balance set to "+money.Format(balance)))
			return nil
		},
	}
}
