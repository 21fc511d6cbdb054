package session

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config holds Store-wide settings.
type Config struct {
	// Width and Height are used by Store.Create when zero dimensions are passed.
	Width, Height int
	// CacheSize bounds the per-session path cache. 0 takes the default,
	// a negative value disables caching.
	CacheSize int
	// SlowSearch is the duration above which a search is logged at Warn.
	SlowSearch time.Duration
	// Logger receives session events. Defaults to slog.Default().
	Logger *slog.Logger
	// Registerer receives the metrics. nil leaves them unregistered.
	Registerer prometheus.Registerer
}

// DefaultConfig returns a 15×15 board, a 256-entry cache and a 50ms slow-search threshold.
func DefaultConfig() Config {
	return Config{
		Width:      15,
		Height:     15,
		CacheSize:  256,
		SlowSearch: 50 * time.Millisecond,
		Logger:     slog.Default(),
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	switch {
	case c.CacheSize == 0:
		c.CacheSize = d.CacheSize
	case c.CacheSize < 0:
		c.CacheSize = 0
	}
	if c.SlowSearch <= 0 {
		c.SlowSearch = d.SlowSearch
	}
	if c.Logger == nil {
		c.Logger = d.Logger
	}

	return c
}
