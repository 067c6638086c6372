// Package settings reads process settings from the environment.
package settings

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v10"
	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/zerr"
)

// Settings holds the process configuration.
type Settings struct {
	// Manifest is the path of the manifest file.
	Manifest string `env:"BOOT_MANIFEST" envDefault:"boot.yaml"`
	// Workers bounds concurrently running async hooks.
	Workers int `env:"BOOT_WORKERS" envDefault:"4"`
	// DrainTimeout bounds the wait for async hooks after initialization.
	DrainTimeout time.Duration `env:"BOOT_DRAIN_TIMEOUT" envDefault:"5s"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"BOOT_LOG_LEVEL" envDefault:"info"`
}

// Load reads settings from the process environment.
func Load() (Settings, error) {
	return parse(env.Options{})
}

// LoadFrom reads settings from the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Settings, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, opts); err != nil {
		return Settings{}, errors.Join(zerr.Wrap(domain.ErrInvalidSettings, "failed to parse settings"), err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings for values the orchestrator cannot use.
func (s Settings) Validate() error {
	invalid := func(msg, key string, value any) error {
		return zerr.With(zerr.Wrap(domain.ErrInvalidSettings, msg), key, value)
	}

	switch {
	case s.Manifest == "":
		return invalid("manifest path is required", "manifest", s.Manifest)
	case s.Workers < 1:
		return invalid("workers must be at least 1", "workers", s.Workers)
	case s.DrainTimeout <= 0:
		return invalid("drain timeout must be positive", "drain_timeout", s.DrainTimeout)
	}

	switch s.LogLevel {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return invalid("log level must be debug, info, warn or error", "log_level", s.LogLevel)
	}
}
