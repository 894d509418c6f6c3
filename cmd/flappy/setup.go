package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// appName names the gdata save directory.
const appName = "flappy"

// loadConfig resolves the effective configuration from the config search
// path, the difficulty preset and the --store flag.
func loadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return cfg, err
		}
		logger.Warn("using default config", "err", err)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, preset)

	switch flagStore {
	case "":
	case config.BackendSQLite, config.BackendGdata, config.BackendMemory:
		cfg.Persistence.Backend = flagStore
	default:
		return cfg, fmt.Errorf("unknown store %q (want sqlite, gdata or memory)", flagStore)
	}

	cfg.Normalize()
	return cfg, nil
}

// stores bundles the best-score slot with the optional score history.
type stores struct {
	best    storage.BestScore
	history *storage.Store // nil when the database is unavailable
}

func (s stores) Close() {
	if s.history != nil {
		s.history.Close()
	}
}

// openStores opens the configured best-score backend. Any failure falls
// back to an in-memory slot so the game stays playable.
func openStores(cfg config.PersistenceConfig) stores {
	var s stores

	if cfg.Backend != config.BackendMemory {
		db, err := storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("score history unavailable", "db", flagDBPath, "err", err)
		} else {
			s.history = db
		}
	}

	switch cfg.Backend {
	case config.BackendSQLite:
		if s.history != nil {
			s.best = s.history.Slot(cfg.Slot)
		}
	case config.BackendGdata:
		slot, err := storage.OpenGdataSlot(appName, cfg.Slot)
		if err != nil {
			logger.Warn("gdata store unavailable", "err", err)
		} else {
			s.best = slot
		}
	}

	if s.best == nil {
		if cfg.Backend != config.BackendMemory {
			logger.Warn("best score will not be persisted", "backend", cfg.Backend)
		}
		s.best = storage.NewMemorySlot()
	}
	return s
}

// sessionLogger returns the logger used while a game owns the terminal.
// Without --log-file the output is discarded.
func sessionLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          "flappy",
		Level:           log.DebugLevel,
	})
	return l, func() { f.Close() }, nil
}

// seed returns --seed, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
