// Package driver runs the game loop: read input, advance the game once,
// draw, wait for the next tick.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/NoDumas/CS3080-Project-Presentation/game"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
	"github.com/NoDumas/CS3080-Project-Presentation/logger"
	"github.com/NoDumas/CS3080-Project-Presentation/ui"
)

// Backend is a frontend the driver can read input from and draw on.
type Backend interface {
	PollIntents() []game.Intent
	Present(f ui.Frame) error
}

type Driver struct {
	game    *game.Game
	backend Backend
	log     *logger.Logger
	ticks   int
}

func New(g *game.Game, b Backend, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.Discard()
	}
	return &Driver{
		game:    g,
		backend: b,
		log:     log,
	}
}

// Run steps the game every interval until the player quits or ctx is
// done. Both are normal exits and return nil.
func (d *Driver) Run(ctx context.Context, interval time.Duration) error {
	d.log.Info("running at one tick every %s", interval)
	if err := d.backend.Present(ui.BuildFrame(d.game)); err != nil {
		return fmt.Errorf("drawing first frame: %w", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.log.Info("stopping after %d ticks: %v", d.ticks, ctx.Err())
			return nil
		case <-ticker.C:
			running, err := d.Step()
			if err != nil {
				return err
			}
			if !running {
				d.log.Info("quit requested after %d ticks", d.ticks)
				return nil
			}
		}
	}
}

// Step runs one input, update, draw pass. It returns false when the
// player asked to quit; nothing is advanced or drawn in that case.
func (d *Driver) Step() (bool, error) {
	for _, in := range d.backend.PollIntents() {
		if !d.game.Apply(in) {
			return false, nil
		}
	}

	d.ticks++
	if res := d.game.Advance(); res != types.ResultIdle && res != types.ResultMoved {
		d.log.Debug("tick %d: %s", d.ticks, res)
	}

	if err := d.backend.Present(ui.BuildFrame(d.game)); err != nil {
		return false, fmt.Errorf("drawing frame: %w", err)
	}
	return true, nil
}

// Ticks is the number of completed steps.
func (d *Driver) Ticks() int {
	return d.ticks
}
