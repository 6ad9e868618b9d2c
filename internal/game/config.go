package game

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/samdwyer/gridsnake/internal/engine"
	"github.com/samdwyer/gridsnake/internal/store"
)

// Config holds the resolved application settings.
type Config struct {
	// Engine options. Zero Difficulty or BoardSize means "not given"; they are
	// filled from saved options or defaults by WithSavedOptions.
	Engine engine.Config

	DataDir   string // where options, scores and the log live
	LogFile   string // empty means DataDir/gridsnake.log
	ThemePath string // optional theme.json override
	Sound     bool
}

// LoadConfig reads settings from the environment, then lets command-line
// flags override them.
func LoadConfig(args []string, getenv func(string) string) (Config, error) {
	var cfg Config

	difficulty := getenv("SNAKE_DIFFICULTY")
	size := getenv("SNAKE_BOARD_SIZE")
	seed := getenv("SNAKE_SEED")
	sound := getenv("SNAKE_SOUND")
	cfg.DataDir = getenv("SNAKE_DATA_DIR")
	cfg.ThemePath = getenv("SNAKE_THEME")
	cfg.LogFile = getenv("LOG_FILE")

	fs := flag.NewFlagSet("gridsnake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&difficulty, "difficulty", difficulty, "difficulty: 1-3 or easy/medium/hard")
	fs.StringVar(&size, "size", size, "board size: 1-3 or small/medium/large")
	fs.StringVar(&seed, "seed", seed, "random seed (0 for time-based)")
	fs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "directory for options, scores and logs")
	fs.StringVar(&cfg.ThemePath, "theme", cfg.ThemePath, "path to a theme.json override")
	fs.StringVar(&sound, "sound", sound, "enable sound effects (true/false)")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid arguments: %w", err)
	}

	var err error
	if difficulty != "" {
		if cfg.Engine.Difficulty, err = engine.ParseDifficulty(difficulty); err != nil {
			return cfg, err
		}
	}
	if size != "" {
		if cfg.Engine.BoardSize, err = engine.ParseBoardSize(size); err != nil {
			return cfg, err
		}
	}
	if seed != "" {
		if cfg.Engine.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return cfg, fmt.Errorf("invalid seed %q: %w", seed, err)
		}
	}
	if sound != "" {
		if cfg.Sound, err = strconv.ParseBool(sound); err != nil {
			return cfg, fmt.Errorf("invalid sound flag %q: %w", sound, err)
		}
	}

	if cfg.DataDir == "" {
		if cfg.DataDir, err = store.DefaultDir(); err != nil {
			cfg.DataDir = filepath.Join(os.TempDir(), "gridsnake")
		}
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "gridsnake.log")
	}

	return cfg, nil
}

// WithSavedOptions fills difficulty and board size that were not given
// explicitly from the saved options, falling back to the defaults.
func (c Config) WithSavedOptions(saved store.Options, ok bool) Config {
	def := engine.DefaultConfig()

	if !c.Engine.Difficulty.Valid() {
		c.Engine.Difficulty = def.Difficulty
		if d := engine.Difficulty(saved.Difficulty); ok && d.Valid() {
			c.Engine.Difficulty = d
		}
	}
	if !c.Engine.BoardSize.Valid() {
		c.Engine.BoardSize = def.BoardSize
		if b := engine.BoardSize(saved.BoardSize); ok && b.Valid() {
			c.Engine.BoardSize = b
		}
	}
	return c
}
