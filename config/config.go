// Package config loads the order-entry session settings from an optional
// TOML file plus environment variables. Missing files fall back to defaults
// so a bare deployment works out of the box.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Settings captures the tuning knobs of one order-entry session.
type Settings struct {
	// DebounceMs is the input quiescence window in milliseconds.
	DebounceMs int `toml:"debounce_ms"`

	// WindowSize caps how many list rows are rendered per page.
	WindowSize int `toml:"window_size"`

	// OptionsPerPage caps the option lists pulled for order forms.
	OptionsPerPage int `toml:"options_per_page"`

	// CacheCapacity and CacheShards tune the session query cache.
	CacheCapacity int `toml:"cache_capacity"`
	CacheShards   int `toml:"cache_shards"`

	// DatabaseURL is read from the environment, never from the file.
	DatabaseURL string `toml:"-"`
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		DebounceMs:     120,
		WindowSize:     400,
		OptionsPerPage: 1000,
		CacheCapacity:  4096,
		CacheShards:    64,
	}
}

// Load reads the TOML file at path, overlaying defaults. A missing file is
// not an error. DATABASE_URL is taken from the environment, with a .env file
// loaded first when one exists next to the process.
func Load(path string) (Settings, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		} else {
			var raw Settings
			if err := toml.Unmarshal(data, &raw); err != nil {
				return Settings{}, fmt.Errorf("parse config: %w", err)
			}
			cfg = overlay(cfg, raw)
		}
	}

	// Ignore the error: a missing .env simply means the variables come from
	// the real environment.
	_ = godotenv.Load()
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate checks the numeric knobs are in range.
func (s Settings) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.DebounceMs, validation.Min(0), validation.Max(5000)),
		validation.Field(&s.WindowSize, validation.Min(1)),
		validation.Field(&s.OptionsPerPage, validation.Min(1)),
		validation.Field(&s.CacheCapacity, validation.Min(1)),
		validation.Field(&s.CacheShards, validation.Min(1)),
	)
}

// Debounce returns the quiescence window as a duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}

func overlay(base, raw Settings) Settings {
	if raw.DebounceMs > 0 {
		base.DebounceMs = raw.DebounceMs
	}
	if raw.WindowSize > 0 {
		base.WindowSize = raw.WindowSize
	}
	if raw.OptionsPerPage > 0 {
		base.OptionsPerPage = raw.OptionsPerPage
	}
	if raw.CacheCapacity > 0 {
		base.CacheCapacity = raw.CacheCapacity
	}
	if raw.CacheShards > 0 {
		base.CacheShards = raw.CacheShards
	}
	return base
}
