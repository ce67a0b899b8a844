package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		dir      Direction
		vec      Point
		opposite Direction
	}{
		{Up, Point{X: 0, Y: -1}, Down},
		{Right, Point{X: 1, Y: 0}, Left},
		{Down, Point{X: 0, Y: 1}, Up},
		{Left, Point{X: -1, Y: 0}, Right},
		{None, Point{}, None},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			assert.Equal(t, tt.vec, tt.dir.ToPoint())
			assert.Equal(t, tt.opposite, tt.dir.Opposite())
		})
	}
}

func TestGrid(t *testing.T) {
	g := Grid{Width: 20, Height: 15}

	assert.Equal(t, 300, g.Cells())
	assert.Equal(t, Point{X: 10, Y: 7}, g.Center())
	assert.True(t, g.Contains(Point{X: 0, Y: 0}))
	assert.True(t, g.Contains(Point{X: 19, Y: 14}))
	assert.False(t, g.Contains(Point{X: 20, Y: 7}))
	assert.False(t, g.Contains(Point{X: 5, Y: -1}))
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, NotStarted.Terminal())
	assert.False(t, Running.Terminal())
	assert.True(t, GameOver.Terminal())
	assert.True(t, Won.Terminal())
}
