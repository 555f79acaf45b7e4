package tui

import (
	"time"

	"github.com/Veraticus/ledgervox/internal/intent"
)

// Config holds TUI configuration.
type Config struct {
	Examples      []string
	ToastDuration time.Duration
	Width         int
	Height        int
	AltScreen     bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Examples:      intent.Examples(),
		ToastDuration: 3 * time.Second,
		Width:         100,
		Height:        32,
		AltScreen:     true,
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithToastDuration sets how long toasts stay on screen.
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) {
		c.ToastDuration = d
	}
}

// WithAltScreen selects whether the dashboard takes over the terminal.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
