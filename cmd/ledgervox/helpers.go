package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/ledgervox/internal/classification"
	"github.com/Veraticus/ledgervox/internal/config"
	"github.com/Veraticus/ledgervox/internal/engine"
	"github.com/Veraticus/ledgervox/internal/export"
	"github.com/Veraticus/ledgervox/internal/ledger"
	"github.com/Veraticus/ledgervox/internal/service"
	"github.com/Veraticus/ledgervox/internal/speech"
	"github.com/Veraticus/ledgervox/internal/storage"
)

// session bundles what a command needs to run against the ledger.
type session struct {
	store    *storage.SQLiteStorage
	ledger   *ledger.Ledger
	executor *engine.Executor
	resolver *classification.Resolver
	options  ledger.Options
}

// Close releases the database.
func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}

// initStorage opens the ledger database and brings its schema up to date.
func initStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// ledgerOptions maps configuration onto ledger defaults.
func ledgerOptions(cfg config.Config) ledger.Options {
	opts := ledger.DefaultOptions()
	opts.OpeningBalance = cfg.OpeningBalance
	opts.SeedSamples = cfg.SeedSamples
	opts.VoiceDefault = cfg.SpeechEnabled
	return opts
}

// newResolver builds the category resolver, merging the optional alias file
// over the built-in aliases.
func newResolver(cfg config.Config, opts ledger.Options) (*classification.Resolver, error) {
	if cfg.AliasesFile == "" {
		return classification.NewResolver(opts.Categories), nil
	}

	aliases, err := classification.LoadAliases(cfg.AliasesFile)
	if err != nil {
		return nil, err
	}
	slog.Debug("Loaded category aliases", "file", cfg.AliasesFile, "count", len(aliases))
	return classification.NewResolver(opts.Categories, classification.WithAliases(aliases)), nil
}

// newSpeaker prints replies to w and, when a text-to-speech program is
// configured, also reads them aloud.
func newSpeaker(cfg config.Config, w io.Writer) service.Speaker {
	if w == nil {
		if cfg.SpeechCommand == "" {
			return nil
		}
		return speech.NewCommandSpeaker(cfg.SpeechCommand, cfg.SpeechArgs)
	}
	printer := speech.NewWriterSpeaker(w)
	if cfg.SpeechCommand == "" {
		return printer
	}
	return speech.MultiSpeaker{printer, speech.NewCommandSpeaker(cfg.SpeechCommand, cfg.SpeechArgs)}
}

// openSession opens storage, loads the ledger and wires an executor around
// it. The caller must Close the session.
func openSession(ctx context.Context, cfg config.Config, speaker service.Speaker, presenter service.Presenter) (*session, error) {
	store, err := initStorage(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	opts := ledgerOptions(cfg)
	resolver, err := newResolver(cfg, opts)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	l := ledger.Load(ctx, store, opts)
	executor := engine.NewWithConfig(l, speaker, presenter, engine.Config{
		Resolver: resolver,
		Exporter: export.NewFileExporter(cfg.ExportDir),
	})

	return &session{
		store:    store,
		ledger:   l,
		executor: executor,
		resolver: resolver,
		options:  opts,
	}, nil
}

// writeLine prints s followed by a newline, logging write failures.
func writeLine(w io.Writer, s string) {
	if _, err := fmt.Fprintln(w, s); err != nil {
		slog.Error("failed to write output", "error", err)
	}
}
