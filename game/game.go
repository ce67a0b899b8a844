package game

import (
	"time"

	"github.com/NoDumas/CS3080-Project-Presentation/game/entity"
	"github.com/NoDumas/CS3080-Project-Presentation/game/manager"
	"github.com/NoDumas/CS3080-Project-Presentation/game/types"
	"github.com/NoDumas/CS3080-Project-Presentation/logger"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game is the whole state of a snake round. It is owned by a single
// goroutine; nothing in here locks.
type Game struct {
	Grid types.Grid

	roundID    string
	snake      *entity.Snake
	direction  types.Direction // applied on the next Advance
	heading    types.Direction // direction of the last applied move
	food       types.Point
	hasFood    bool
	score      int
	status     types.Status
	steps      int
	lastResult types.TickResult
	startTime  time.Time

	src          rand.Source
	log          *logger.Logger
	stats        *manager.StatsManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSource sets the random source used to place food.
func WithSource(src rand.Source) Option {
	return func(g *Game) {
		g.src = src
	}
}

func WithLogger(l *logger.Logger) Option {
	return func(g *Game) {
		g.log = l
	}
}

// WithStats shares a session stats manager across games.
func WithStats(sm *manager.StatsManager) Option {
	return func(g *Game) {
		g.stats = sm
	}
}

func NewGame(width, height int, opts ...Option) *Game {
	g := &Game{
		Grid: types.Grid{
			Width:  width,
			Height: height,
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	if g.log == nil {
		g.log = logger.Discard()
	}
	if g.stats == nil {
		g.stats = manager.NewStatsManager()
	}

	g.collisionMgr = manager.NewCollisionManager(g.Grid)
	g.foodMgr = manager.NewFoodManager(g.Grid, g.src, g.collisionMgr)

	g.Reset()
	return g
}

// Reset starts a fresh round: one segment at the grid center, no
// direction, score 0, new food. Session stats are kept.
func (g *Game) Reset() {
	g.roundID = uuid.New().String()
	g.snake = entity.NewSnake(g.Grid.Center())
	g.direction = types.None
	g.heading = types.None
	g.score = 0
	g.status = types.NotStarted
	g.steps = 0
	g.lastResult = types.ResultIdle
	g.startTime = time.Time{}

	if !g.spawnFood() {
		g.log.Warn("no free cell for food on a %dx%d grid", g.Grid.Width, g.Grid.Height)
	}
	g.log.Debug("round %s ready, food at (%d,%d)", g.roundID, g.food.X, g.food.Y)
}

// SetDirection requests a new direction of travel. Reversing onto the
// neck is ignored once the snake is longer than one segment, as is any
// request after the round ended. The first accepted request starts the
// round.
func (g *Game) SetDirection(dir types.Direction) {
	if dir == types.None || g.status.Terminal() {
		return
	}
	if g.snake.Len() > 1 && (dir == g.direction.Opposite() || dir == g.heading.Opposite()) {
		return
	}

	g.direction = dir
	if g.status == types.NotStarted {
		g.status = types.Running
		g.startTime = time.Now()
		g.log.Debug("round %s started heading %s", g.roundID, dir)
	}
}

// Advance runs one tick. It does nothing until the round is running.
func (g *Game) Advance() types.TickResult {
	if g.status != types.Running {
		return types.ResultIdle
	}
	g.steps++

	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	// Checked before the tail moves: the tail cell is still occupied.
	switch g.collisionMgr.CheckCollision(newHead, g.snake) {
	case manager.WallCollision:
		return g.finish(types.GameOver, types.ResultWallCollision)
	case manager.SelfCollision:
		return g.finish(types.GameOver, types.ResultSelfCollision)
	}

	g.snake.Move(newHead)
	g.heading = g.direction

	if g.hasFood && g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.score++
		if !g.spawnFood() {
			return g.finish(types.Won, types.ResultWon)
		}
	} else {
		g.snake.RemoveTail()
	}

	g.lastResult = types.ResultMoved
	return types.ResultMoved
}

func (g *Game) spawnFood() bool {
	food, ok := g.foodMgr.Spawn(g.snake)
	g.food, g.hasFood = food, ok
	return ok
}

func (g *Game) finish(status types.Status, result types.TickResult) types.TickResult {
	g.status = status
	g.lastResult = result

	g.stats.Record(manager.GameRecord{
		RoundID:   g.roundID,
		StartTime: g.startTime,
		EndTime:   time.Now(),
		Score:     g.score,
		Steps:     g.steps,
		Outcome:   result,
	})
	g.log.Info("%s round over (%s): score %d after %d steps, best %d",
		humanize.Ordinal(g.stats.GamesPlayed()), result, g.score, g.steps, g.stats.HighScore())

	return result
}

// Snake returns the body, head first. The slice is a copy.
func (g *Game) Snake() []types.Point {
	return g.snake.Segments()
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Food() types.Point {
	return g.food
}

// HasFood is false only when no free cell was left for food.
func (g *Game) HasFood() bool {
	return g.hasFood
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Status() types.Status {
	return g.status
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) Started() bool {
	return g.status != types.NotStarted
}

func (g *Game) IsOver() bool {
	return g.status.Terminal()
}

func (g *Game) Steps() int {
	return g.steps
}

// LastResult is the outcome of the last tick that did something.
func (g *Game) LastResult() types.TickResult {
	return g.lastResult
}

func (g *Game) RoundID() string {
	return g.roundID
}

func (g *Game) Stats() *manager.StatsManager {
	return g.stats
}
