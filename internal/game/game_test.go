package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gridsnake/internal/audio"
	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/store"
	"github.com/samdwyer/gridsnake/internal/ui"
)

type recordingSounder struct {
	played []audio.Sound
}

func (r *recordingSounder) Play(s audio.Sound) {
	r.played = append(r.played, s)
}

func (r *recordingSounder) count(s audio.Sound) int {
	n := 0
	for _, p := range r.played {
		if p == s {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T) (*Game, *recordingSounder) {
	t.Helper()

	screen, _, err := ui.NewSimulationScreen(200, 80)
	if err != nil {
		t.Fatalf("NewSimulationScreen() error = %v", err)
	}
	st, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}

	cfg := Config{Engine: engine.Config{
		Difficulty: engine.DifficultyEasy,
		BoardSize:  engine.BoardSmall,
		Seed:       7,
	}}
	sound := &recordingSounder{}
	g, err := newWithScreen(screen, cfg, st, gamedata.MustLoadTheme(), sound)
	if err != nil {
		t.Fatalf("newWithScreen() error = %v", err)
	}
	g.newGame()
	t.Cleanup(func() {
		g.engine.Stop()
		screen.Close()
	})
	return g, sound
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", runeKey('q')},
		{"escape", key(tcell.KeyEscape)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t)
			g.handleEvent(tt.ev)
			if g.running {
				t.Error("running = true after quit key, want false")
			}
		})
	}
}

func TestArrowKeyStartsGame(t *testing.T) {
	g, _ := newTestGame(t)
	if got := g.engine.State(); got != engine.StateIdle {
		t.Fatalf("State() = %v before input, want %v", got, engine.StateIdle)
	}

	ticks := g.engine.Ticks()
	g.handleEvent(key(tcell.KeyRight))

	if got := g.engine.State(); got != engine.StateRunning {
		t.Errorf("State() = %v, want %v", got, engine.StateRunning)
	}
	if got := g.engine.Ticks(); got != ticks+1 {
		t.Errorf("Ticks() = %d, want %d", got, ticks+1)
	}
}

func TestSpaceTogglesPause(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleEvent(key(tcell.KeyRight))

	g.handleEvent(runeKey(' '))
	if got := g.engine.State(); got != engine.StatePaused {
		t.Fatalf("State() = %v, want %v", got, engine.StatePaused)
	}
	if ov := g.overlay(); ov == nil || ov.Title != "Paused" {
		t.Errorf("overlay() = %+v, want Paused dialog", ov)
	}

	g.handleEvent(runeKey(' '))
	if got := g.engine.State(); got != engine.StateRunning {
		t.Errorf("State() = %v, want %v", got, engine.StateRunning)
	}
	if ov := g.overlay(); ov != nil {
		t.Errorf("overlay() = %+v while running, want nil", ov)
	}
}

func TestConfirmNewGame(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleEvent(key(tcell.KeyRight))

	g.handleEvent(runeKey('n'))
	if g.mode != ModeConfirmNew {
		t.Fatalf("mode = %v, want %v", g.mode, ModeConfirmNew)
	}
	if got := g.engine.State(); got != engine.StateIdle {
		t.Errorf("State() = %v while confirming, want %v", got, engine.StateIdle)
	}

	g.handleEvent(runeKey('n'))
	if g.mode != ModePlay {
		t.Fatalf("mode = %v after declining, want %v", g.mode, ModePlay)
	}

	g.handleEvent(runeKey('n'))
	oldID := g.gameID
	g.handleEvent(runeKey('y'))
	if g.mode != ModePlay {
		t.Errorf("mode = %v after confirming, want %v", g.mode, ModePlay)
	}
	if g.gameID == oldID {
		t.Error("gameID unchanged after new game")
	}
	if got := g.engine.Ticks(); got != 1 {
		t.Errorf("Ticks() = %d after new game, want 1", got)
	}
}

// crash drives the snake up until it hits the top wall.
func crash(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 200 && g.mode != ModeGameOver; i++ {
		g.handleEvent(key(tcell.KeyUp))
	}
	if g.mode != ModeGameOver {
		t.Fatal("snake never reached the wall")
	}
}

func TestGameOverShowsDialog(t *testing.T) {
	g, sound := newTestGame(t)
	crash(t, g)

	if got := g.engine.State(); got != engine.StateGameOver {
		t.Errorf("State() = %v, want %v", got, engine.StateGameOver)
	}
	if got := sound.count(audio.SoundGameOver); got != 1 {
		t.Errorf("game over sounds = %d, want 1", got)
	}
	if ov := g.overlay(); ov == nil || ov.Title != "Game Over" {
		t.Errorf("overlay() = %+v, want Game Over dialog", ov)
	}

	// Keys other than Ctrl-C only dismiss the dialog.
	g.handleEvent(runeKey('q'))
	if !g.running {
		t.Error("running = false, want game over dialog to swallow q")
	}

	g.handleEvent(key(tcell.KeyEnter))
	if g.mode != ModePlay {
		t.Errorf("mode = %v after dismiss, want %v", g.mode, ModePlay)
	}
	if got := g.engine.State(); got != engine.StateIdle {
		t.Errorf("State() = %v after dismiss, want %v", got, engine.StateIdle)
	}
}

func TestGameOverRecordsScore(t *testing.T) {
	g, sound := newTestGame(t)
	crash(t, g)
	g.finished.score = 300

	g.handleEvent(key(tcell.KeyEnter))

	scores, err := g.store.Scores()
	if err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 300 {
		t.Errorf("Scores() = %+v, want one entry of 300", scores)
	}
	if got := sound.count(audio.SoundHighScore); got != 1 {
		t.Errorf("high score sounds = %d, want 1", got)
	}
}

func TestGameOverZeroScoreNotRecorded(t *testing.T) {
	g, _ := newTestGame(t)
	crash(t, g)
	g.finished.score = 0

	g.handleEvent(key(tcell.KeyEnter))

	scores, err := g.store.Scores()
	if err != nil {
		t.Fatalf("Scores() error = %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Scores() = %+v, want none", scores)
	}
}

func TestScoreIncreasePlaysEatSound(t *testing.T) {
	g, sound := newTestGame(t)

	g.handleScore(0)
	if got := sound.count(audio.SoundEat); got != 0 {
		t.Errorf("eat sounds = %d for unchanged score, want 0", got)
	}
	g.handleScore(250)
	g.handleScore(250)
	if got := sound.count(audio.SoundEat); got != 1 {
		t.Errorf("eat sounds = %d, want 1", got)
	}
	if g.score != 250 {
		t.Errorf("score = %d, want 250", g.score)
	}
}

func TestOptionsSaveAndApply(t *testing.T) {
	g, _ := newTestGame(t)

	g.handleEvent(runeKey('o'))
	if g.mode != ModeOptions {
		t.Fatalf("mode = %v, want %v", g.mode, ModeOptions)
	}

	g.handleEvent(runeKey('d'))
	g.handleEvent(runeKey('d'))
	g.handleEvent(runeKey('s'))
	g.handleEvent(key(tcell.KeyEnter))

	if g.mode != ModePlay {
		t.Errorf("mode = %v after saving, want %v", g.mode, ModePlay)
	}
	got := g.engine.Config()
	if got.Difficulty != engine.DifficultyHard {
		t.Errorf("Difficulty = %v, want %v", got.Difficulty, engine.DifficultyHard)
	}
	if got.BoardSize != engine.BoardMedium {
		t.Errorf("BoardSize = %v, want %v", got.BoardSize, engine.BoardMedium)
	}
	if rows := len(g.engine.Snapshot()); rows != 45 {
		t.Errorf("grid rows = %d, want 45", rows)
	}

	saved, ok, err := g.store.LoadOptions()
	if err != nil || !ok {
		t.Fatalf("LoadOptions() = %v, %v", ok, err)
	}
	if saved.Difficulty != 3 || saved.BoardSize != 2 {
		t.Errorf("saved options = %+v, want {3 2}", saved)
	}
}

func TestOptionsClearScores(t *testing.T) {
	g, _ := newTestGame(t)
	if _, _, err := g.store.AddScore(500); err != nil {
		t.Fatalf("AddScore() error = %v", err)
	}

	g.handleEvent(runeKey('o'))
	if len(g.scores) != 1 {
		t.Fatalf("scores = %d entries, want 1", len(g.scores))
	}

	g.handleEvent(runeKey('c'))
	if len(g.scores) != 0 {
		t.Errorf("scores = %d entries after clear, want 0", len(g.scores))
	}
}

func TestNextDifficultyWraps(t *testing.T) {
	tests := []struct {
		from engine.Difficulty
		step int
		want engine.Difficulty
	}{
		{engine.DifficultyEasy, 1, engine.DifficultyMedium},
		{engine.DifficultyHard, 1, engine.DifficultyEasy},
		{engine.DifficultyEasy, -1, engine.DifficultyHard},
	}

	for _, tt := range tests {
		if got := nextDifficulty(tt.from, tt.step); got != tt.want {
			t.Errorf("nextDifficulty(%v, %d) = %v, want %v", tt.from, tt.step, got, tt.want)
		}
	}
}

func TestNextBoardSizeWraps(t *testing.T) {
	if got := nextBoardSize(engine.BoardLarge, 1); got != engine.BoardSmall {
		t.Errorf("nextBoardSize(large, 1) = %v, want %v", got, engine.BoardSmall)
	}
}

func TestRenderDrawsFrame(t *testing.T) {
	g, _ := newTestGame(t)
	g.handleEvent(runeKey('o'))
	g.render()
}
