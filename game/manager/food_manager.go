package manager

import (
	"github.com/NoDumas/CS3080-Project-Presentation/game/entity"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"

	"golang.org/x/exp/rand"
)

// MaxSpawnAttempts bounds rejection sampling before falling back to
// picking from an explicit list of free cells.
const MaxSpawnAttempts = 32

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, src rand.Source, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(src),
		collisionMgr: collisionMgr,
	}
}

// Spawn picks a uniformly random cell not covered by the snake.
// It returns false only when the snake covers the whole grid.
func (fm *FoodManager) Spawn(snake *entity.Snake) (types.Point, bool) {
	free := fm.grid.Cells() - snake.Len()
	if free <= 0 {
		return types.Point{}, false
	}

	// Sampling is cheap while the grid is mostly empty.
	if free*2 >= fm.grid.Cells() {
		for i := 0; i < MaxSpawnAttempts; i++ {
			food := types.Point{
				X: fm.rng.Intn(fm.grid.Width),
				Y: fm.rng.Intn(fm.grid.Height),
			}
			if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
				return food, true
			}
		}
	}

	cells := fm.FreeCells(snake)
	if len(cells) == 0 {
		return types.Point{}, false
	}
	return cells[fm.rng.Intn(len(cells))], true
}

// FreeCells lists every cell the snake does not cover, row by row.
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	occupied := make(map[types.Point]struct{}, snake.Len())
	for _, p := range snake.Body {
		occupied[p] = struct{}{}
	}

	cells := make([]types.Point, 0, fm.grid.Cells()-len(occupied))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if _, ok := occupied[p]; !ok {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
