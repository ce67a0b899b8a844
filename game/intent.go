package game

import "github.com/NoDumas/CS3080-Project-Presentation/game/types"

// Intent is a discrete player input, independent of the device it came from.
type Intent int

const (
	IntentNone Intent = iota
	MoveUp
	MoveDown
	MoveLeft
	MoveRight
	Restart
	Quit
)

func (i Intent) String() string {
	switch i {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction maps a move intent to its direction, None for anything else.
func (i Intent) Direction() types.Direction {
	switch i {
	case MoveUp:
		return types.Up
	case MoveDown:
		return types.Down
	case MoveLeft:
		return types.Left
	case MoveRight:
		return types.Right
	default:
		return types.None
	}
}

// Apply feeds one intent into the game. Restart only resets a finished
// round. It returns false when the player asked to quit.
func (g *Game) Apply(in Intent) bool {
	switch in {
	case Quit:
		return false
	case Restart:
		if g.IsOver() {
			g.log.Debug("restart after %s", g.lastResult)
			g.Reset()
		}
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		g.SetDirection(in.Direction())
	}
	return true
}
