package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/beelazy/internal/config"
	"github.com/vovakirdan/beelazy/internal/highscore"
	"github.com/vovakirdan/beelazy/internal/platform/tui"
	"github.com/vovakirdan/beelazy/internal/storage"
)

// newLogger creates the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		path, err := config.ExpandHome(flagLogFile)
		if err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "beelazy",
		Level:           level,
	})
	return logger, closer, nil
}

// loadDeps loads the game config and opens both score stores.
// The high-score list and run history are optional: failures are logged and
// the game runs without them. The returned closer releases the database.
func loadDeps(logger *log.Logger) (tui.Deps, func(), error) {
	cfg, err := config.LoadBee(flagConfig)
	if err != nil {
		return tui.Deps{}, nil, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return tui.Deps{}, nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyBeePreset(&cfg, preset)
	}

	deps := tui.Deps{Config: cfg, Logger: logger}

	if path, pathErr := config.ExpandHome(flagScoresPath); pathErr != nil {
		logger.Warn("high scores disabled", "err", pathErr)
	} else {
		doc := highscore.NewJSONStore(path)
		logger.Debug("high-score list", "path", doc.Path())
		board := highscore.NewBoard(doc, cfg.Scores.Keep, logger.WithPrefix("highscore"))
		// Load logs its own problems and leaves the board usable
		_ = board.Load()
		deps.Board = board
	}

	closer := func() {}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", flagDBPath, "err", err)
	} else {
		deps.Store = store
		closer = func() {
			if err := store.Close(); err != nil {
				logger.Warn("closing run history", "err", err)
			}
		}
	}

	return deps, closer, nil
}
