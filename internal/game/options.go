package game

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/logger"
	"github.com/samdwyer/gridsnake/internal/store"
	"github.com/samdwyer/gridsnake/internal/ui"
)

const scoreDateLayout = "2006-01-02 15:04"

// openOptions stops the game and shows the options dialog.
func (g *Game) openOptions() {
	g.engine.Stop()
	g.optDifficulty = g.cfg.Engine.Difficulty
	g.optBoardSize = g.cfg.Engine.BoardSize
	g.loadScores()
	g.mode = ModeOptions
}

func (g *Game) loadScores() {
	scores, err := g.store.Scores()
	if err != nil {
		logger.Log.WithError(err).Warn("failed to load high scores")
		scores = nil
	}
	g.scores = scores
}

func (g *Game) handleOptionsKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter, tcell.KeyEscape:
		g.applyOptions()
		return
	case tcell.KeyUp, tcell.KeyRight:
		g.optDifficulty = nextDifficulty(g.optDifficulty, 1)
		return
	case tcell.KeyDown, tcell.KeyLeft:
		g.optDifficulty = nextDifficulty(g.optDifficulty, -1)
		return
	case tcell.KeyRune:
	default:
		return
	}

	switch ev.Rune() {
	case 'd', 'D':
		g.optDifficulty = nextDifficulty(g.optDifficulty, 1)
	case 's', 'S':
		g.optBoardSize = nextBoardSize(g.optBoardSize, 1)
	case 'c', 'C':
		if err := g.store.ClearScores(); err != nil {
			logger.Log.WithError(err).Warn("failed to clear high scores")
		}
		g.loadScores()
	case 'o', 'O':
		g.applyOptions()
	}
}

// applyOptions saves the edited options and starts a new game with them.
func (g *Game) applyOptions() {
	g.cfg.Engine.Difficulty = g.optDifficulty
	g.cfg.Engine.BoardSize = g.optBoardSize

	opts := store.Options{
		Difficulty: int(g.optDifficulty),
		BoardSize:  int(g.optBoardSize),
	}
	if err := g.store.SaveOptions(opts); err != nil {
		logger.Log.WithError(err).Warn("failed to save options")
	}
	logger.Log.WithFields(logrus.Fields{
		"difficulty": g.optDifficulty.String(),
		"board_size": g.optBoardSize.String(),
	}).Info("options changed")

	g.newGame()
}

func (g *Game) optionsOverlay() *ui.Overlay {
	lines := []string{
		fmt.Sprintf("Difficulty: %s", g.theme.DifficultyLabel(int(g.optDifficulty))),
		fmt.Sprintf("Board size: %s", g.theme.BoardSizeLabel(int(g.optBoardSize))),
		"",
		"High scores",
	}
	if len(g.scores) == 0 {
		lines = append(lines, "  none yet")
	}
	for i, s := range g.scores {
		lines = append(lines, fmt.Sprintf("%d. %6d  %s", i+1, s.Score, s.Date.Local().Format(scoreDateLayout)))
	}

	return &ui.Overlay{
		Title: "Options",
		Lines: lines,
		Hint:  "[d] difficulty  [s] size  [c] clear scores  [enter] save",
	}
}

// nextDifficulty cycles through the difficulty levels, wrapping at both ends.
func nextDifficulty(d engine.Difficulty, step int) engine.Difficulty {
	n := int(engine.DifficultyHard)
	return engine.Difficulty((int(d)-1+step+n)%n + 1)
}

// nextBoardSize cycles through the board sizes.
func nextBoardSize(b engine.BoardSize, step int) engine.BoardSize {
	n := int(engine.BoardLarge)
	return engine.BoardSize((int(b)-1+step+n)%n + 1)
}
