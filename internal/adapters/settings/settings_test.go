package settings_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/boot/internal/adapters/settings"
	"go.trai.ch/boot/internal/core/domain"
)

func TestLoadFrom_Defaults(t *testing.T) {
	s, err := settings.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, settings.Settings{
		Manifest:     "boot.yaml",
		Workers:      4,
		DrainTimeout: 5 * time.Second,
		LogLevel:     "info",
	}, s)
}

func TestLoadFrom_Overrides(t *testing.T) {
	s, err := settings.LoadFrom(map[string]string{
		"BOOT_MANIFEST":      "deploy/boot.yaml",
		"BOOT_WORKERS":       "16",
		"BOOT_DRAIN_TIMEOUT": "250ms",
		"BOOT_LOG_LEVEL":     "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, "deploy/boot.yaml", s.Manifest)
	assert.Equal(t, 16, s.Workers)
	assert.Equal(t, 250*time.Millisecond, s.DrainTimeout)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		errText string
	}{
		{name: "workers not a number", vars: map[string]string{"BOOT_WORKERS": "many"}, errText: "failed to parse settings"},
		{name: "zero workers", vars: map[string]string{"BOOT_WORKERS": "0"}, errText: "workers must be at least 1"},
		{name: "bad duration", vars: map[string]string{"BOOT_DRAIN_TIMEOUT": "soon"}, errText: "failed to parse settings"},
		{name: "negative duration", vars: map[string]string{"BOOT_DRAIN_TIMEOUT": "-1s"}, errText: "drain timeout must be positive"},
		{name: "unknown level", vars: map[string]string{"BOOT_LOG_LEVEL": "trace"}, errText: "log level must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := settings.LoadFrom(tt.vars)
			require.ErrorIs(t, err, domain.ErrInvalidSettings)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoad_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv("BOOT_WORKERS", "7")

	s, err := settings.Load()
	require.NoError(t, err)
	assert.Equal(t, 7, s.Workers)
}
