// Package config loads and validates ledgervox settings from viper.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/Veraticus/ledgervox/internal/common"
	"github.com/Veraticus/ledgervox/internal/model"
	"github.com/Veraticus/ledgervox/internal/money"
)

// Defaults.
const (
	DefaultDatabasePath = "$HOME/.local/share/ledgervox/ledger.db"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultExportDir    = "."
)

// Config holds every setting ledgervox reads.
type Config struct {
	DatabasePath   string
	LogFormat      string
	ExportDir      string
	SpeechCommand  string
	AliasesFile    string
	SpeechArgs     []string
	OpeningBalance decimal.Decimal
	LogLevel       slog.Level
	SeedSamples    bool
	SpeechEnabled  bool
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", DefaultDatabasePath)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("ledger.seed_samples", true)
	v.SetDefault("ledger.opening_balance", model.DefaultBalance.String())
	v.SetDefault("export.dir", DefaultExportDir)
	v.SetDefault("speech.enabled", true)
}

// Load reads and validates the configuration. Values come from the config
// file, LEDGERVOX_ environment variables and the defaults, in that order
// of precedence as resolved by viper. Paths have ~ and $VAR expanded; a
// relative aliases file is taken relative to the config file.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	level, err := common.ParseLevel(v.GetString("logging.level"))
	if err != nil {
		return Config{}, fmt.Errorf("logging.level: %w", err)
	}

	format := strings.ToLower(v.GetString("logging.format"))
	if format != "console" && format != "json" {
		return Config{}, fmt.Errorf("%w: logging.format must be console or json, got %q", common.ErrInvalidConfig, format)
	}

	dbPath := expandPath(v.GetString("database.path"))
	if dbPath == "" {
		return Config{}, fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}

	balance, err := money.ParseSigned(v.GetString("ledger.opening_balance"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: ledger.opening_balance: %w", common.ErrInvalidConfig, err)
	}

	cfg := Config{
		DatabasePath:   dbPath,
		LogLevel:       level,
		LogFormat:      format,
		SeedSamples:    v.GetBool("ledger.seed_samples"),
		OpeningBalance: balance,
		ExportDir:      expandPath(v.GetString("export.dir")),
		SpeechCommand:  v.GetString("speech.command"),
		SpeechArgs:     v.GetStringSlice("speech.args"),
		SpeechEnabled:  v.GetBool("speech.enabled"),
		AliasesFile:    aliasesPath(v),
	}

	if cfg.SpeechCommand == "" {
		cfg.SpeechCommand = os.Getenv("LEDGERVOX_TTS")
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the home directory and expands
// environment variables.
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}

// aliasesPath resolves categories.aliases_file. A relative name is joined
// to the directory of the config file, when one was read.
func aliasesPath(v *viper.Viper) string {
	path := expandPath(v.GetString("categories.aliases_file"))
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if used := v.ConfigFileUsed(); used != "" {
		return filepath.Join(filepath.Dir(used), path)
	}
	return path
}
