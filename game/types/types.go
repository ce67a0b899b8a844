package types

import "time"

// Point is a single grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the total number of cells.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Center is where a fresh snake starts.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Game constants
const (
	DefaultWidth    = 20
	DefaultHeight   = 15
	DefaultCellSize = 20
	TickRate        = 10 // Updates per second
)

// TickInterval is the fixed time between two updates.
const TickInterval = time.Second / TickRate

// Direction is a cardinal direction, or None before the first input.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// ToPoint converts a Direction into its unit vector.
// Up decreases Y (screen coordinates).
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse direction. None is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// Status is the state of a round.
type Status int

const (
	NotStarted Status = iota
	Running
	GameOver
	Won
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case GameOver:
		return "game-over"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (s Status) Terminal() bool {
	return s == GameOver || s == Won
}

// TickResult is what a single update step did.
type TickResult string

const (
	// ResultIdle is returned when the round is not running.
	ResultIdle TickResult = "idle"
	// ResultMoved is a normal step, with or without eating.
	ResultMoved TickResult = "moved"
	// ResultWallCollision is when the head leaves the grid.
	ResultWallCollision TickResult = "collision-wall"
	// ResultSelfCollision is when the head enters a body cell.
	ResultSelfCollision TickResult = "collision-self"
	// ResultWon is when the snake fills the whole grid.
	ResultWon TickResult = "won"
)
