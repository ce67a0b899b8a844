package terminal

import (
	"fmt"
	"unicode"

	"github.com/NoDumas/CS3080-Project-Presentation/game"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
	"github.com/NoDumas/CS3080-Project-Presentation/ui"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is two columns wide so it looks square in a terminal.
const termCellWidth = 2

var (
	termStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	termSnakeStyle = termStyle.Background(tcell.ColorGreen)
	termHeadStyle  = termStyle.Background(tcell.ColorLime)
	termFoodStyle  = termStyle.Background(tcell.ColorRed)
)

// Renderer draws frames on a tcell screen. Row 0 is the HUD, the
// grid sits inside a border below it.
type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
	events chan tcell.Event
	done   chan struct{}
}

// New takes ownership of screen and initializes it.
func New(screen tcell.Screen, grid types.Grid) (*Renderer, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	screen.SetStyle(termStyle)
	screen.HideCursor()
	screen.Clear()

	t := &Renderer{
		screen: screen,
		grid:   grid,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

// pump forwards screen events until the screen is finalized.
func (t *Renderer) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollIntents drains pending events without blocking.
func (t *Renderer) PollIntents() []game.Intent {
	var intents []game.Intent
	for {
		select {
		case ev := <-t.events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				t.screen.Sync()
			case *tcell.EventKey:
				if in := termIntent(e); in != game.IntentNone {
					intents = append(intents, in)
				}
			}
		default:
			return intents
		}
	}
}

func termIntent(e *tcell.EventKey) game.Intent {
	switch e.Key() {
	case tcell.KeyUp:
		return game.MoveUp
	case tcell.KeyDown:
		return game.MoveDown
	case tcell.KeyLeft:
		return game.MoveLeft
	case tcell.KeyRight:
		return game.MoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Quit
	case tcell.KeyRune:
		switch unicode.ToLower(e.Rune()) {
		case 'w':
			return game.MoveUp
		case 's':
			return game.MoveDown
		case 'a':
			return game.MoveLeft
		case 'd':
			return game.MoveRight
		case ' ':
			return game.Restart
		case 'q':
			return game.Quit
		}
	}
	return game.IntentNone
}

func (t *Renderer) Present(f ui.Frame) error {
	t.screen.Clear()
	t.drawBorder()
	f.Render(t)
	t.screen.Show()
	return nil
}

// drawBorder boxes the grid, which starts at column 1, row 2.
func (t *Renderer) drawBorder() {
	left, top := 0, 1
	right := left + t.grid.Width*termCellWidth + 1
	bottom := top + t.grid.Height + 1

	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, tcell.RuneHLine, nil, termStyle)
		t.screen.SetContent(x, bottom, tcell.RuneHLine, nil, termStyle)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, tcell.RuneVLine, nil, termStyle)
		t.screen.SetContent(right, y, tcell.RuneVLine, nil, termStyle)
	}
	t.screen.SetContent(left, top, tcell.RuneULCorner, nil, termStyle)
	t.screen.SetContent(right, top, tcell.RuneURCorner, nil, termStyle)
	t.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, termStyle)
	t.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, termStyle)
}

func (t *Renderer) FillCell(p types.Point, kind ui.CellKind) {
	style := termSnakeStyle
	switch kind {
	case ui.CellHead:
		style = termHeadStyle
	case ui.CellFood:
		style = termFoodStyle
	}
	x, y := 1+p.X*termCellWidth, 2+p.Y
	for i := 0; i < termCellWidth; i++ {
		t.screen.SetContent(x+i, y, ' ', nil, style)
	}
}

func (t *Renderer) DrawText(text string, anchor ui.Anchor) {
	runes := []rune(text)
	width := t.grid.Width*termCellWidth + 2
	x, y := 1, 0
	switch anchor {
	case ui.AnchorTopRight:
		x = width - len(runes) - 1
	case ui.AnchorCenter:
		x = (width - len(runes)) / 2
		y = 2 + t.grid.Height/2
	case ui.AnchorBelowCenter:
		x = (width - len(runes)) / 2
		y = 2 + t.grid.Height/2 + 1
	}
	if x < 0 {
		x = 0
	}
	for i, r := range runes {
		t.screen.SetContent(x+i, y, r, nil, termStyle)
	}
}

// Close restores the terminal.
func (t *Renderer) Close() error {
	close(t.done)
	t.screen.Fini()
	return nil
}
