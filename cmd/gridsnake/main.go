// Package main is the entry point for GridSnake.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/gridsnake/internal/audio"
	"github.com/samdwyer/gridsnake/internal/game"
	"github.com/samdwyer/gridsnake/internal/gamedata"
	"github.com/samdwyer/gridsnake/internal/logger"
	"github.com/samdwyer/gridsnake/internal/store"
	"github.com/samdwyer/gridsnake/internal/telemetry"
)

func main() {
	// .env is optional; the variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := game.LoadConfig(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data directory: %v", err)
	}

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		log.Printf("Warning: logging disabled: %v", err)
	}
	defer logFile.Close()
	logger.Init(logFile)

	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	saved, ok, err := st.LoadOptions()
	if err != nil {
		logger.Log.WithError(err).Warn("ignoring unreadable options file")
	}
	cfg = cfg.WithSavedOptions(saved, ok)

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	switch {
	case errors.Is(err, telemetry.ErrNotConfigured):
		logger.Log.Debug("telemetry not configured")
	case err != nil:
		logger.Log.WithError(err).Warn("telemetry setup failed, running without tracing")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Warn("telemetry shutdown failed")
			}
		}()
	}

	theme, err := loadTheme(cfg.ThemePath)
	if err != nil {
		log.Fatalf("Failed to load theme: %v", err)
	}

	var sound game.Sounder
	if cfg.Sound {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			logger.Log.WithError(err).Warn("sound disabled")
		} else {
			defer player.Close()
			sound = player
		}
	}

	g, err := game.New(cfg, st, theme, sound)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		log.Fatalf("Game error: %v", err)
	}
}

func loadTheme(path string) (*gamedata.Theme, error) {
	if path == "" {
		return gamedata.LoadTheme()
	}
	return gamedata.LoadThemeFile(path)
}
