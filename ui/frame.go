package ui

import (
	"fmt"

	"github.com/NoDumas/CS3080-Project-Presentation/game"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
)

// CellKind tells a surface what a filled cell holds.
type CellKind int

const (
	CellSnake CellKind = iota
	CellHead
	CellFood
)

// Anchor is where a text line goes on the surface.
type Anchor int

const (
	AnchorTopLeft Anchor = iota
	AnchorTopRight
	AnchorCenter
	AnchorBelowCenter
)

// Surface is anything that can draw cells and text: a raylib window, a
// terminal, or a recorder in tests.
type Surface interface {
	FillCell(p types.Point, kind CellKind)
	DrawText(text string, anchor Anchor)
}

type Cell struct {
	Pos  types.Point
	Kind CellKind
}

type Text struct {
	Text   string
	Anchor Anchor
}

// Frame is the list of draw requests for one state of the game.
type Frame struct {
	Grid  types.Grid
	Cells []Cell
	Texts []Text
}

const (
	gameOverText = "Game Over."
	wonText      = "You Win!"
	restartHint  = "Press SPACE to restart"
	startHint    = "Press WASD or arrows to start"
)

// BuildFrame turns the game state into draw requests: food, then the
// snake from tail to head, then text.
func BuildFrame(g *game.Game) Frame {
	body := g.Snake()
	f := Frame{
		Grid:  g.Grid,
		Cells: make([]Cell, 0, len(body)+1),
	}

	if g.HasFood() {
		f.Cells = append(f.Cells, Cell{Pos: g.Food(), Kind: CellFood})
	}
	for i := len(body) - 1; i >= 0; i-- {
		kind := CellSnake
		if i == 0 {
			kind = CellHead
		}
		f.Cells = append(f.Cells, Cell{Pos: body[i], Kind: kind})
	}

	f.Texts = append(f.Texts,
		Text{Text: fmt.Sprintf("Score: %d", g.Score()), Anchor: AnchorTopLeft},
		Text{Text: fmt.Sprintf("Best: %d", g.Stats().HighScore()), Anchor: AnchorTopRight},
	)
	switch g.Status() {
	case types.NotStarted:
		f.Texts = append(f.Texts, Text{Text: startHint, Anchor: AnchorBelowCenter})
	case types.GameOver:
		f.Texts = append(f.Texts,
			Text{Text: gameOverText, Anchor: AnchorCenter},
			Text{Text: restartHint, Anchor: AnchorBelowCenter})
	case types.Won:
		f.Texts = append(f.Texts,
			Text{Text: wonText, Anchor: AnchorCenter},
			Text{Text: restartHint, Anchor: AnchorBelowCenter})
	}
	return f
}

// Render replays the frame onto s.
func (f Frame) Render(s Surface) {
	for _, c := range f.Cells {
		s.FillCell(c.Pos, c.Kind)
	}
	for _, t := range f.Texts {
		s.DrawText(t.Text, t.Anchor)
	}
}
