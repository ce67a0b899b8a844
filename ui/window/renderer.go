package window

import (
	"github.com/NoDumas/CS3080-Project-Presentation/game"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
	"github.com/NoDumas/CS3080-Project-Presentation/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Text distance from the window edges
	fontSize      = 20
)

var (
	colorSnake = rl.NewColor(0, 255, 0, 255)
	colorHead  = rl.NewColor(150, 255, 150, 255)
	colorFood  = rl.NewColor(255, 0, 0, 255)
	colorText  = rl.White
)

// raylibKeys maps keyboard keys to intents.
var raylibKeys = map[int32]game.Intent{
	rl.KeyW:      game.MoveUp,
	rl.KeyUp:     game.MoveUp,
	rl.KeyS:      game.MoveDown,
	rl.KeyDown:   game.MoveDown,
	rl.KeyA:      game.MoveLeft,
	rl.KeyLeft:   game.MoveLeft,
	rl.KeyD:      game.MoveRight,
	rl.KeyRight:  game.MoveRight,
	rl.KeySpace:  game.Restart,
	rl.KeyEscape: game.Quit,
}

// Renderer draws frames in a raylib window sized to the grid.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
}

// NewRenderer opens the window. It must be called from the goroutine that
// will keep drawing.
func NewRenderer(grid types.Grid, cellSize int) *Renderer {
	r := &Renderer{cellSize: int32(cellSize)}
	rl.InitWindow(int32(grid.Width)*r.cellSize, int32(grid.Height)*r.cellSize, "Snake Game")
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// PollIntents drains the key queue. Closing the window or Escape quits.
func (r *Renderer) PollIntents() []game.Intent {
	if rl.WindowShouldClose() {
		return []game.Intent{game.Quit}
	}
	var intents []game.Intent
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if in, ok := raylibKeys[key]; ok {
			intents = append(intents, in)
		}
	}
	return intents
}

func (r *Renderer) Present(f ui.Frame) error {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	f.Render(r)
	rl.EndDrawing()
	return nil
}

func (r *Renderer) FillCell(p types.Point, kind ui.CellKind) {
	color := colorSnake
	switch kind {
	case ui.CellHead:
		color = colorHead
	case ui.CellFood:
		color = colorFood
	}
	rl.DrawRectangle(int32(p.X)*r.cellSize, int32(p.Y)*r.cellSize, r.cellSize, r.cellSize, color)
}

func (r *Renderer) DrawText(text string, anchor ui.Anchor) {
	textWidth := int32(rl.MeasureText(text, fontSize))
	x, y := int32(borderPadding), int32(borderPadding)
	switch anchor {
	case ui.AnchorTopRight:
		x = r.screenWidth - textWidth - borderPadding
	case ui.AnchorCenter:
		x = (r.screenWidth - textWidth) / 2
		y = (r.screenHeight - fontSize) / 2
	case ui.AnchorBelowCenter:
		x = (r.screenWidth - textWidth) / 2
		y = (r.screenHeight+fontSize)/2 + borderPadding
	}
	rl.DrawText(text, x, y, fontSize, colorText)
}

func (r *Renderer) Close() error {
	rl.CloseWindow()
	return nil
}
