package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"SNAKE_GRID_WIDTH",
	"SNAKE_GRID_HEIGHT",
	"SNAKE_CELL_SIZE",
	"SNAKE_SEED",
	"SNAKE_DEBUG",
	"SNAKE_FRONTEND",
	"SNAKE_LOG_FILE",
}

// clearEnv unsets every key for the test and restores it afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 20, cfg.GridWidth)
	assert.Equal(t, 15, cfg.GridHeight)
	assert.Equal(t, FrontendRaylib, cfg.Frontend)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAKE_GRID_WIDTH", "30")
	t.Setenv("SNAKE_GRID_HEIGHT", " 12 ")
	t.Setenv("SNAKE_CELL_SIZE", "16")
	t.Setenv("SNAKE_SEED", "99")
	t.Setenv("SNAKE_DEBUG", "true")
	t.Setenv("SNAKE_FRONTEND", "terminal")
	t.Setenv("SNAKE_LOG_FILE", "snake.log")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		GridWidth:  30,
		GridHeight: 12,
		CellSize:   16,
		Frontend:   FrontendTerminal,
		Seed:       99,
		LogFile:    "snake.log",
		Debug:      true,
	}, cfg)
}

func TestFromEnvErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"width not a number", "SNAKE_GRID_WIDTH", "wide"},
		{"negative seed", "SNAKE_SEED", "-1"},
		{"debug not a bool", "SNAKE_DEBUG", "maybe"},
		{"unknown frontend", "SNAKE_FRONTEND", "webgl"},
		{"zero cell size", "SNAKE_CELL_SIZE", "0"},
		{"one cell grid", "SNAKE_GRID_WIDTH", "1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if tt.name == "one cell grid" {
				t.Setenv("SNAKE_GRID_HEIGHT", "1")
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())

	cfg.GridWidth, cfg.GridHeight = 2, 1
	assert.NoError(t, cfg.Validate())

	cfg.GridHeight = 0
	assert.Error(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "snake.env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_GRID_WIDTH=8\nSNAKE_FRONTEND=terminal\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.GridWidth)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
}

func TestLoadDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SNAKE_GRID_WIDTH", "25")

	path := filepath.Join(t.TempDir(), "snake.env")
	require.NoError(t, os.WriteFile(path, []byte("SNAKE_GRID_WIDTH=8\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.GridWidth)
}
