package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// withFlags isolates the global flags and the config search path.
func withFlags(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	saved := [...]string{flagConfig, flagDifficulty, flagStore, flagDBPath}
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagStore, flagDBPath = saved[0], saved[1], saved[2], saved[3]
	})
	flagConfig, flagDifficulty, flagStore = "", "", ""
	flagDBPath = filepath.Join(t.TempDir(), "scores.db")
}

func TestLoadConfigDefaults(t *testing.T) {
	withFlags(t)

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg != config.DefaultFlappyConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	withFlags(t)
	flagDifficulty = "hard"
	flagStore = config.BackendMemory

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() = %v", err)
	}
	if cfg.Persistence.Backend != config.BackendMemory {
		t.Errorf("backend = %q, want memory", cfg.Persistence.Backend)
	}
	if cfg.Obstacles.SpawnInterval != 80 {
		t.Errorf("spawn interval = %d, want 80", cfg.Obstacles.SpawnInterval)
	}
}

func TestLoadConfigRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		store      string
		config     string
	}{
		{"unknown preset", "insane", "", ""},
		{"unknown store", "", "redis", ""},
		{"missing config file", "", "", "/nonexistent/flappy.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withFlags(t)
			flagDifficulty, flagStore, flagConfig = tt.difficulty, tt.store, tt.config
			if _, err := loadConfig(); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOpenStoresSQLite(t *testing.T) {
	withFlags(t)

	st := openStores(config.PersistenceConfig{Backend: config.BackendSQLite, Slot: "flappyHighScore"})
	defer st.Close()

	if st.history == nil {
		t.Fatal("expected score history")
	}
	if _, ok := st.best.(*storage.SQLiteSlot); !ok {
		t.Errorf("best = %T, want *storage.SQLiteSlot", st.best)
	}
}

func TestOpenStoresFallsBackToMemory(t *testing.T) {
	withFlags(t)

	// A regular file where the database directory should be.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	flagDBPath = filepath.Join(blocker, "scores.db")

	st := openStores(config.PersistenceConfig{Backend: config.BackendSQLite, Slot: "flappyHighScore"})
	defer st.Close()

	if st.history != nil {
		t.Error("history should be unavailable")
	}
	if _, ok := st.best.(*storage.MemorySlot); !ok {
		t.Errorf("best = %T, want *storage.MemorySlot", st.best)
	}
}

func TestOpenStoresMemory(t *testing.T) {
	withFlags(t)

	st := openStores(config.PersistenceConfig{Backend: config.BackendMemory, Slot: "flappyHighScore"})
	defer st.Close()

	if st.history != nil {
		t.Error("memory backend should not open the database")
	}
	if _, ok := st.best.(*storage.MemorySlot); !ok {
		t.Errorf("best = %T, want *storage.MemorySlot", st.best)
	}
}
