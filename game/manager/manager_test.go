package manager

import (
	"testing"
	"time"

	"github.com/NoDumas/CS3080-Project-Presentation/game/entity"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCheckCollision(t *testing.T) {
	grid := types.Grid{Width: 20, Height: 15}
	cm := NewCollisionManager(grid)
	snake := &entity.Snake{Body: []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}}}

	tests := []struct {
		name string
		pos  types.Point
		want CollisionType
	}{
		{"free cell", types.Point{X: 6, Y: 5}, NoCollision},
		{"right wall", types.Point{X: 20, Y: 7}, WallCollision},
		{"left wall", types.Point{X: -1, Y: 7}, WallCollision},
		{"top wall", types.Point{X: 3, Y: -1}, WallCollision},
		{"bottom wall", types.Point{X: 3, Y: 15}, WallCollision},
		{"body", types.Point{X: 5, Y: 6}, SelfCollision},
		{"tail", types.Point{X: 4, Y: 6}, SelfCollision},
		{"last column", types.Point{X: 19, Y: 14}, NoCollision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cm.CheckCollision(tt.pos, snake))
		})
	}
}

func TestSpawnNeverOnSnake(t *testing.T) {
	grid := types.Grid{Width: 6, Height: 4}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.NewSource(1), cm)
	snake := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}}}

	for i := 0; i < 500; i++ {
		food, ok := fm.Spawn(snake)
		require.True(t, ok)
		assert.True(t, grid.Contains(food))
		assert.False(t, snake.Occupies(food), "food on snake at %v", food)
	}
}

func TestSpawnNearlyFullGrid(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.NewSource(1), cm)

	snake := &entity.Snake{}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x == 2 && y == 1 {
				continue
			}
			snake.Body = append(snake.Body, types.Point{X: x, Y: y})
		}
	}

	food, ok := fm.Spawn(snake)
	require.True(t, ok)
	assert.Equal(t, types.Point{X: 2, Y: 1}, food)
}

func TestSpawnFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 2}
	cm := NewCollisionManager(grid)
	fm := NewFoodManager(grid, rand.NewSource(1), cm)
	snake := &entity.Snake{Body: []types.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}}

	_, ok := fm.Spawn(snake)
	assert.False(t, ok)
	assert.Empty(t, fm.FreeCells(snake))
}

func TestFreeCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 2}
	fm := NewFoodManager(grid, rand.NewSource(1), NewCollisionManager(grid))
	snake := &entity.Snake{Body: []types.Point{{X: 1, Y: 0}, {X: 1, Y: 1}}}

	assert.Equal(t, []types.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 2, Y: 1}}, fm.FreeCells(snake))
}

func TestStatsManager(t *testing.T) {
	sm := NewStatsManager()
	assert.NotEmpty(t, sm.SessionID())
	assert.Zero(t, sm.GamesPlayed())
	assert.Zero(t, sm.AverageScore())
	assert.Zero(t, sm.MedianScore())
	assert.Zero(t, sm.AverageDuration())

	start := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, score := range []int{4, 1, 7} {
		sm.Record(GameRecord{
			RoundID:   string(rune('a' + i)),
			StartTime: start,
			EndTime:   start.Add(time.Duration(i+1) * time.Second),
			Score:     score,
			Outcome:   types.ResultWallCollision,
		})
	}

	assert.Equal(t, 3, sm.GamesPlayed())
	assert.Equal(t, 7, sm.HighScore())
	assert.InDelta(t, 4.0, sm.AverageScore(), 1e-9)
	assert.InDelta(t, 4.0, sm.MedianScore(), 1e-9)
	assert.Equal(t, 2*time.Second, sm.AverageDuration())

	sm.Record(GameRecord{Score: 2, StartTime: start, EndTime: start})
	assert.InDelta(t, 3.0, sm.MedianScore(), 1e-9)

	records := sm.Records()
	require.Len(t, records, 4)
	assert.Equal(t, 2, records[3].Score)
	records[0].Score = 100
	assert.Equal(t, 7, sm.HighScore())
	assert.Equal(t, 4, sm.Records()[0].Score)
}
