package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NoDumas/CS3080-Project-Presentation/config"
	"github.com/NoDumas/CS3080-Project-Presentation/driver"
	"github.com/NoDumas/CS3080-Project-Presentation/game"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
	"github.com/NoDumas/CS3080-Project-Presentation/logger"
	"github.com/NoDumas/CS3080-Project-Presentation/ui/terminal"
	"github.com/NoDumas/CS3080-Project-Presentation/ui/window"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"
)

// frontend is a driver backend that owns a window or terminal.
type frontend interface {
	driver.Backend
	Close() error
}

func main() {
	envFile := flag.String("env", ".env", "Optional env file with SNAKE_* settings")
	frontendFlag := flag.String("frontend", "", "raylib or terminal (overrides SNAKE_FRONTEND)")
	flag.Parse()

	if err := run(*envFile, *frontendFlag); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run(envFile, frontendName string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if frontendName != "" {
		cfg.Frontend = frontendName
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logOut, err := logOutput(cfg)
	if err != nil {
		return err
	}
	defer logOut.Close()
	appLogger := logger.New("SNAKE", logColor(cfg, logger.ColorGreen), logOut, cfg.Debug)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	appLogger.Debug("food seed %d", seed)

	g := game.NewGame(cfg.GridWidth, cfg.GridHeight,
		game.WithSource(rand.NewSource(seed)),
		game.WithLogger(appLogger.Named("GAME", logColor(cfg, logger.ColorCyan))),
	)

	fe, err := newFrontend(cfg)
	if err != nil {
		return err
	}
	defer fe.Close()
	appLogger.Info("session %s: %dx%d grid on %s", g.Stats().SessionID(), cfg.GridWidth, cfg.GridHeight, cfg.Frontend)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	d := driver.New(g, fe, appLogger.Named("DRIVER", logColor(cfg, logger.ColorMagenta)))
	if err := d.Run(ctx, types.TickInterval); err != nil {
		return err
	}

	stats := g.Stats()
	appLogger.Info("session over after %s: %s played, best %d, average %.1f",
		time.Since(stats.StartTime()).Round(time.Second),
		pluralRounds(stats.GamesPlayed()), stats.HighScore(), stats.AverageScore())
	return nil
}

func newFrontend(cfg config.Config) (frontend, error) {
	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}
	switch cfg.Frontend {
	case config.FrontendTerminal:
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("opening terminal: %w", err)
		}
		r, err := terminal.New(screen, grid)
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return window.NewRenderer(grid, cfg.CellSize), nil
	}
}

// logOutput picks where logs go. The terminal frontend owns the tty, so
// without a log file its logs are dropped.
func logOutput(cfg config.Config) (io.WriteCloser, error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, nil
	}
	if cfg.Frontend == config.FrontendTerminal {
		return nopCloser{io.Discard}, nil
	}
	return nopCloser{os.Stderr}, nil
}

// logColor drops colors when logging to a file.
func logColor(cfg config.Config, color string) string {
	if cfg.LogFile != "" {
		return ""
	}
	return color
}

func pluralRounds(n int) string {
	if n == 1 {
		return "1 round"
	}
	return humanize.Comma(int64(n)) + " rounds"
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
