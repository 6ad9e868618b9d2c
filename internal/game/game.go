package game

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridsnake/internal/audio"
	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/logger"
	"github.com/samdwyer/gridsnake/internal/store"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// Sounder plays sound effects.
type Sounder interface {
	Play(s audio.Sound)
}

type silent struct{}

func (silent) Play(audio.Sound) {}

// Game is the terminal application: one screen, one engine and the
// collaborators around it. All of its methods run on the loop goroutine.
type Game struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	theme    *gamedata.Theme
	ticks    *TimerSource
	engine   *engine.Engine
	store    *store.Store
	sound    Sounder

	ctx     context.Context
	mode    Mode
	running bool
	gameID  uuid.UUID
	score   int

	// options being edited in ModeOptions
	optDifficulty engine.Difficulty
	optBoardSize  engine.BoardSize

	scores   []store.ScoreEntry
	finished finishedGame
}

// finishedGame is what the game over dialog shows.
type finishedGame struct {
	score  int
	length int
	ticks  int
}

// New creates a game on a real terminal.
func New(cfg Config, st *store.Store, theme *gamedata.Theme, sound Sounder) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	g, err := newWithScreen(screen, cfg, st, theme, sound)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

func newWithScreen(screen *ui.Screen, cfg Config, st *store.Store, theme *gamedata.Theme, sound Sounder) (*Game, error) {
	if sound == nil {
		sound = silent{}
	}

	g := &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		theme:    theme,
		ticks:    NewTimerSource(screen.PostEvent),
		store:    st,
		sound:    sound,
		ctx:      context.Background(),
		mode:     ModePlay,
		running:  true,
	}

	eng, err := engine.New(cfg.Engine, engine.WithTickSource(g.ticks))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	eng.OnScoreUpdate(g.handleScore)
	eng.OnGameOver(g.handleGameOver)
	g.engine = eng
	g.gameID = uuid.New()

	return g, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	g.ctx = ctx
	tracer := telemetry.Tracer("game")

	_, initSpan := tracer.Start(ctx, "game.init")
	g.newGame()
	initSpan.SetAttributes(
		attribute.String("difficulty", g.cfg.Engine.Difficulty.String()),
		attribute.String("board_size", g.cfg.Engine.BoardSize.String()),
		attribute.Bool("sound", g.cfg.Sound),
	)
	initSpan.End()

	for g.running {
		g.render()
		g.handleEvent(g.screen.PollEvent())
	}

	g.engine.Stop()
	g.screen.Close()
	return nil
}

// handleEvent processes one terminal or tick event.
func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		g.ticks.Deliver(ev)
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent routes keyboard input by mode.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		g.running = false
		return
	}

	switch g.mode {
	case ModePlay:
		g.handlePlayKey(ev)
	case ModeConfirmNew:
		g.handleConfirmKey(ev)
	case ModeGameOver:
		g.handleGameOverKey(ev)
	case ModeOptions:
		g.handleOptionsKey(ev)
	}
}

func (g *Game) handlePlayKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		g.running = false
	case tcell.KeyUp:
		g.steer(entity.DirUp)
	case tcell.KeyDown:
		g.steer(entity.DirDown)
	case tcell.KeyLeft:
		g.steer(entity.DirLeft)
	case tcell.KeyRight:
		g.steer(entity.DirRight)
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			g.engine.TogglePause()
		case 'n', 'N':
			g.engine.Stop()
			g.mode = ModeConfirmNew
		case 'o', 'O':
			g.openOptions()
		case 'q', 'Q':
			g.running = false
		}
	}
}

// steer turns the snake and starts the game if it is not running yet.
func (g *Game) steer(dir entity.Direction) {
	g.engine.ChangeHeading(dir)
	if g.mode == ModePlay {
		g.engine.Start()
	}
}

func (g *Game) handleConfirmKey(ev *tcell.EventKey) {
	switch {
	case ev.Key() == tcell.KeyEnter, ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
		g.newGame()
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
		g.mode = ModePlay
	}
}

func (g *Game) handleGameOverKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEnter || ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
		if g.finished.score > 0 {
			g.recordScore(g.finished.score)
		}
		g.newGame()
	}
}

// handleScore runs after every tick. The score only rises when food is eaten.
func (g *Game) handleScore(score int) {
	if score > g.score {
		g.sound.Play(audio.SoundEat)
	}
	g.score = score
}

func (g *Game) handleGameOver() {
	cfg := g.engine.Config()
	g.finished = finishedGame{
		score:  g.score,
		length: g.engine.SnakeLength(),
		ticks:  g.engine.Ticks(),
	}
	g.mode = ModeGameOver
	g.sound.Play(audio.SoundGameOver)

	_, span := telemetry.Tracer("game").Start(g.ctx, "game.over")
	span.SetAttributes(
		attribute.String("game.id", g.gameID.String()),
		attribute.Int("score", g.finished.score),
		attribute.Int("ticks", g.finished.ticks),
		attribute.Int("snake.length", g.finished.length),
		attribute.String("difficulty", cfg.Difficulty.String()),
		attribute.String("board_size", cfg.BoardSize.String()),
	)
	span.End()

	logger.Log.WithFields(logrus.Fields{
		"game_id": g.gameID.String(),
		"score":   g.finished.score,
		"ticks":   g.finished.ticks,
		"length":  g.finished.length,
	}).Info("game over")
}

// newGame applies the current options and resets the engine.
func (g *Game) newGame() {
	_, span := telemetry.Tracer("game").Start(g.ctx, "game.reset")
	defer span.End()

	g.engine.Stop()
	if err := g.engine.Configure(g.cfg.Engine); err != nil {
		logger.Log.WithError(err).Warn("keeping previous options")
	}

	g.finished = finishedGame{}
	g.score = 0
	g.engine.Reset()
	g.mode = ModePlay
	g.gameID = uuid.New()

	cfg := g.engine.Config()
	span.SetAttributes(
		attribute.String("game.id", g.gameID.String()),
		attribute.String("difficulty", cfg.Difficulty.String()),
		attribute.String("board_size", cfg.BoardSize.String()),
		attribute.Int64("seed", cfg.Seed),
	)
	logger.Log.WithFields(logrus.Fields{
		"game_id":    g.gameID.String(),
		"difficulty": cfg.Difficulty.String(),
		"board_size": cfg.BoardSize.String(),
	}).Debug("new game")
}

// recordScore adds a finished game's score to the high-score table.
func (g *Game) recordScore(score int) {
	_, span := telemetry.Tracer("game").Start(g.ctx, "scores.save")
	defer span.End()
	span.SetAttributes(attribute.Int("score", score))

	entry, kept, err := g.store.AddScore(score)
	if err != nil {
		span.SetAttributes(attribute.Bool("failed", true))
		logger.Log.WithError(err).Warn("failed to save high score")
		return
	}
	span.SetAttributes(attribute.Bool("high_score", kept))
	if kept {
		g.sound.Play(audio.SoundHighScore)
	}
	logger.Log.WithFields(logrus.Fields{
		"entry_id": entry.ID.String(),
		"score":    score,
		"kept":     kept,
	}).Info("score recorded")
}

// render draws the current frame.
func (g *Game) render() {
	cfg := g.engine.Config()
	state := g.engine.State().String()

	g.renderer.Render(ui.View{
		Cells:      g.engine.Snapshot(),
		Score:      g.score,
		FoodScore:  g.engine.FoodScore(),
		IntervalMs: g.engine.TickInterval().Milliseconds(),
		State:      state,
		Difficulty: g.theme.DifficultyLabel(int(cfg.Difficulty)),
		BoardSize:  g.theme.BoardSizeLabel(int(cfg.BoardSize)),
		Overlay:    g.overlay(),
	})
}

// overlay returns the dialog for the current mode, if any.
func (g *Game) overlay() *ui.Overlay {
	switch g.mode {
	case ModeConfirmNew:
		return &ui.Overlay{
			Title: "New Game",
			Lines: []string{"Abandon the current game?"},
			Hint:  "[y] yes  [n] no",
		}
	case ModeGameOver:
		return &ui.Overlay{
			Title: "Game Over",
			Lines: []string{
				fmt.Sprintf("Score: %d", g.finished.score),
				fmt.Sprintf("Length: %d", g.finished.length),
			},
			Hint: "[enter] new game",
		}
	case ModeOptions:
		return g.optionsOverlay()
	}

	if g.engine.State() == engine.StatePaused {
		return &ui.Overlay{Title: "Paused", Hint: "[space] resume"}
	}
	return nil
}
