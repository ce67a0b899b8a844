package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/NoDumas/CS3080-Project-Presentation/game/types"

	"github.com/joho/godotenv"
)

// Frontend names.
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

// Config holds the application's configuration values.
type Config struct {
	GridWidth  int    // Grid width in cells
	GridHeight int    // Grid height in cells
	CellSize   int    // Pixels per cell in the raylib window
	Frontend   string // raylib or terminal
	Seed       uint64 // Food seed, 0 picks one from the clock
	LogFile    string // Log destination, empty means stderr
	Debug      bool   // Enables debug log lines
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		GridWidth:  types.DefaultWidth,
		GridHeight: types.DefaultHeight,
		CellSize:   types.DefaultCellSize,
		Frontend:   FrontendRaylib,
	}
}

// Load reads the given .env files (".env" when none are given) if they
// exist, then builds the config from the environment.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables over the defaults.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.GridWidth, err = getEnvAsInt("SNAKE_GRID_WIDTH", cfg.GridWidth); err != nil {
		return Config{}, err
	}
	if cfg.GridHeight, err = getEnvAsInt("SNAKE_GRID_HEIGHT", cfg.GridHeight); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsInt("SNAKE_CELL_SIZE", cfg.CellSize); err != nil {
		return Config{}, err
	}
	if seed, ok := os.LookupEnv("SNAKE_SEED"); ok {
		if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return Config{}, fmt.Errorf("environment variable SNAKE_SEED must be an unsigned integer: %w", err)
		}
	}
	if debug, ok := os.LookupEnv("SNAKE_DEBUG"); ok {
		if cfg.Debug, err = strconv.ParseBool(debug); err != nil {
			return Config{}, fmt.Errorf("environment variable SNAKE_DEBUG must be a boolean: %w", err)
		}
	}
	cfg.Frontend = getEnvWithDefault("SNAKE_FRONTEND", cfg.Frontend)
	cfg.LogFile = getEnvWithDefault("SNAKE_LOG_FILE", cfg.LogFile)

	return cfg, cfg.Validate()
}

// Validate rejects configs the game cannot run with.
func (c Config) Validate() error {
	// A 1x1 grid has no room for food next to the starting snake.
	if c.GridWidth < 1 || c.GridHeight < 1 || c.GridWidth*c.GridHeight < 2 {
		return fmt.Errorf("grid %dx%d is too small", c.GridWidth, c.GridHeight)
	}
	if c.CellSize < 1 {
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	return nil
}

// getEnvAsInt retrieves an environment variable as an integer, or the default if not set.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}
