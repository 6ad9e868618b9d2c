package engine

import (
	"math/rand"
	"time"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/world"
)

const (
	// BaseTickInterval is the tick interval at the start of every game.
	BaseTickInterval = 100 * time.Millisecond
	// MinTickInterval is the fastest the game will ever run.
	MinTickInterval = 10 * time.Millisecond
	// speedupStep is multiplied by the difficulty on every food eaten.
	speedupStep = 3 * time.Millisecond
)

// Collision names what ended a game.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
)

// String returns a human-readable collision name.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	default:
		return "unknown"
	}
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Skipped   bool      // the engine was over and did nothing
	Ate       bool      // food was eaten and respawned
	Collision Collision // set when the tick ended the game
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithTickSource sets the scheduler used while the engine is running.
func WithTickSource(src TickSource) Option {
	return func(e *Engine) {
		e.source = src
	}
}

// WithRand sets the random source used for spawning, overriding Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// Engine owns one game: grid, snake, food, score and speed. It is not safe
// for concurrent use; every call must come from the same goroutine as the
// tick source's frames.
type Engine struct {
	pending Config // applied on the next Reset
	active  Config // in effect for the current game

	rng    *rand.Rand
	source TickSource

	grid  *world.Grid
	snake *entity.Snake
	food  *entity.Food

	score    int
	interval time.Duration
	state    RunState
	ticks    int

	onGameOver    func()
	onScoreUpdate func(score int)
}

// New creates an engine and resets it into a fresh idle game.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{pending: cfg}
	for _, opt := range opts {
		opt(e)
	}

	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}

	e.Reset()
	return e, nil
}

// Configure stores new options. They take effect on the next Reset.
func (e *Engine) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.pending = cfg
	return nil
}

// Config returns the options of the game currently in progress.
func (e *Engine) Config() Config {
	return e.active
}

// OnGameOver registers the game-over handler, replacing any previous one.
func (e *Engine) OnGameOver(fn func()) {
	e.onGameOver = fn
}

// OnScoreUpdate registers the score handler, replacing any previous one.
// It is called at the end of every completed tick.
func (e *Engine) OnScoreUpdate(fn func(score int)) {
	e.onScoreUpdate = fn
}

// State returns the current run state.
func (e *Engine) State() RunState {
	return e.state
}

// IsRunning reports whether the game has been started and not stopped.
// A paused game is still running.
func (e *Engine) IsRunning() bool {
	return e.state.Started()
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// TickInterval returns the current delay between scheduled ticks.
func (e *Engine) TickInterval() time.Duration {
	return e.interval
}

// Ticks returns the number of ticks run since the last reset.
func (e *Engine) Ticks() int {
	return e.ticks
}

// SnakeLength returns the number of snake segments on the grid.
func (e *Engine) SnakeLength() int {
	return e.snake.Len()
}

// FoodScore returns what the current food is worth.
func (e *Engine) FoodScore() int {
	return e.food.Score()
}

// Snapshot returns a copy of the occupancy grid for rendering.
func (e *Engine) Snapshot() [][]world.Cell {
	return e.grid.Snapshot()
}

// Start begins scheduled ticking from Idle. It does nothing in any other state.
func (e *Engine) Start() {
	if e.state != StateIdle {
		return
	}
	e.state = StateRunning
	if e.source != nil {
		e.source.Start(e)
	}
}

// Stop cancels scheduled ticking and returns a started game to Idle.
// A finished game stays over.
func (e *Engine) Stop() {
	if e.source != nil {
		e.source.Stop()
	}
	if e.state != StateGameOver {
		e.state = StateIdle
	}
}

// TogglePause flips between Running and Paused.
func (e *Engine) TogglePause() {
	switch e.state {
	case StateRunning:
		e.state = StatePaused
	case StatePaused:
		e.state = StateRunning
	}
}

// Reset discards the current game and builds a new idle one from the
// configured options, then runs one tick to produce the first frame.
func (e *Engine) Reset() {
	if e.source != nil {
		e.source.Stop()
	}

	e.active = e.pending
	rows, cols := e.active.BoardSize.Dimensions()
	difficulty := int(e.active.Difficulty)

	e.grid = world.NewGrid(rows, cols)
	e.snake = entity.NewSnake(e.grid, e.rng, difficulty)
	e.food = e.spawnFoodClearOfStart()
	e.grid.Place(e.food.Position(), world.CellFood)

	e.score = 0
	e.interval = BaseTickInterval
	e.state = StateIdle
	e.ticks = 0

	e.Tick()
}

// spawnFoodClearOfStart keeps the first food off the unmarked spawn cell and
// off the cell the opening tick moves into, so a new game never starts with
// food already eaten.
func (e *Engine) spawnFoodClearOfStart() *entity.Food {
	head := e.snake.Head()
	first := head.Add(e.snake.Heading().Delta())
	for {
		f := entity.NewFood(e.grid, e.rng, int(e.active.Difficulty))
		if p := f.Position(); p != head && p != first {
			return f
		}
	}
}

// ChangeHeading handles a direction request from the player. It is ignored
// while paused or after game over. Before the game is started a reversal is
// allowed, since the snake has nothing behind it yet. The request is
// followed by an immediate tick so the move shows without waiting for the
// scheduler.
func (e *Engine) ChangeHeading(dir entity.Direction) TickResult {
	if e.state == StatePaused || e.state == StateGameOver {
		return TickResult{Skipped: true}
	}
	e.snake.SetHeading(dir, !e.state.Started())
	return e.Tick()
}

// Frame is the tick source entry point. It ticks only while running.
func (e *Engine) Frame() {
	if e.state == StateRunning {
		e.Tick()
	}
}

// Tick advances the simulation one step: move, check collisions, then eat or
// decay the food, then report the score.
func (e *Engine) Tick() TickResult {
	if e.state == StateGameOver {
		return TickResult{Skipped: true}
	}
	e.ticks++

	if e.snake.Advance(e.grid) == entity.MoveWallCollision {
		e.gameOver()
		return TickResult{Collision: CollisionWall}
	}
	if e.snake.SelfCollision() {
		e.gameOver()
		return TickResult{Collision: CollisionSelf}
	}

	var result TickResult
	if e.food.IsEatenBy(e.snake.Head()) {
		e.eat()
		result.Ate = true
	} else {
		e.food.DecayScore()
	}

	if e.onScoreUpdate != nil {
		e.onScoreUpdate(e.score)
	}
	return result
}

func (e *Engine) eat() {
	e.snake.Grow(e.food.Growth())
	e.score += e.food.Score()

	step := speedupStep * time.Duration(e.active.Difficulty)
	e.interval = max(MinTickInterval, e.interval-step)

	e.grid.Place(e.food.Position(), world.CellSnake)
	e.food = entity.NewFood(e.grid, e.rng, int(e.active.Difficulty))
	e.grid.Place(e.food.Position(), world.CellFood)
}

func (e *Engine) gameOver() {
	e.Stop()
	e.state = StateGameOver
	if e.onGameOver != nil {
		e.onGameOver()
	}
}
