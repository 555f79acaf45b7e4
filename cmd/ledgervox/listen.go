package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Veraticus/ledgervox/internal/cli"
	"github.com/Veraticus/ledgervox/internal/console"
	"github.com/Veraticus/ledgervox/internal/speech"
)

func listenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "listen",
		Short: "Run voice commands from a transcript stream",
		Long: `Read transcripts from standard input, one per line, and run each final
transcript as a voice command.

A line starting with "~" is an interim transcript: it is displayed but never
executed. Every other non-blank line is a final transcript and runs exactly
one command. Pipe the output of a speech recognizer into this command, or
type commands by hand. Press Ctrl+C to stop listening.`,
		Args: cobra.NoArgs,
		RunE: runListen,
	}
}

func runListen(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	parent, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(parent, true)
	cmd.SetContext(ctx)

	s, err := openSession(ctx, appConfig, newSpeaker(appConfig, out), console.NewPresenter(out))
	if err != nil {
		return err
	}
	defer s.Close()

	writeLine(out, cli.FormatTitle("ledgervox"))
	writeLine(out, cli.FormatInfo(cli.MicIcon+" Listening... say \"help\" for available commands"))

	var recognizer speech.Recognizer
	err = recognizer.Listen(ctx, speech.NewLineSource(cmd.InOrStdin()), speech.Handlers{
		Interim: func(text string) {
			writeLine(out, cli.FormatTranscript(text, false))
		},
		Final: func(_ context.Context, utterance string) {
			writeLine(out, cli.FormatTranscript(utterance, true))
			runUtterance(cmd, s, utterance)
		},
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
