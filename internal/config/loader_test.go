package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// isolate points the user and working directories at empty temp dirs
// so implicit search paths find nothing.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg FlappyConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("embedded defaults differ from DefaultFlappyConfig()\n got: %+v\nwant: %+v", cfg, DefaultFlappyConfig())
	}
}

func TestLoadFlappyFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFlappyCustomPathPartial(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 0.25\nobstacles:\n  gap: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy(path)
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.25 {
		t.Errorf("Gravity = %v, expected 0.25", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.Gap != 200 {
		t.Errorf("Gap = %v, expected 200", cfg.Obstacles.Gap)
	}
	// Untouched keys keep reference values
	if cfg.Physics.JumpImpulse != -5 {
		t.Errorf("JumpImpulse = %v, expected -5", cfg.Physics.JumpImpulse)
	}
	if cfg.Playfield.Width != 400 {
		t.Errorf("Playfield.Width = %v, expected 400", cfg.Playfield.Width)
	}
}

func TestLoadFlappyCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := LoadFlappy(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("physics: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFlappy(path)
	if err == nil {
		t.Error("expected parse error for broken config")
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("broken config should still return defaults")
	}
}

func TestLoadFlappyLocalConfigsDir(t *testing.T) {
	dir := isolate(t)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("obstacles:\n  spawn_interval: 120\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "flappy.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlappy("")
	if err != nil {
		t.Fatalf("LoadFlappy() failed: %v", err)
	}
	if cfg.Obstacles.SpawnInterval != 120 {
		t.Errorf("SpawnInterval = %d, expected 120", cfg.Obstacles.SpawnInterval)
	}
}

func TestNormalize(t *testing.T) {
	cfg := FlappyConfig{
		Physics: FlappyPhysics{MinRotation: 90, MaxRotation: -30},
		Persistence: PersistenceConfig{
			Backend: "cloud",
		},
	}
	cfg.Normalize()

	def := DefaultFlappyConfig()
	if cfg.Playfield != def.Playfield {
		t.Errorf("Playfield = %+v, expected %+v", cfg.Playfield, def.Playfield)
	}
	if cfg.Obstacles.SpawnInterval != def.Obstacles.SpawnInterval {
		t.Errorf("SpawnInterval = %d, expected %d", cfg.Obstacles.SpawnInterval, def.Obstacles.SpawnInterval)
	}
	if cfg.Physics.MinRotation != -30 || cfg.Physics.MaxRotation != 90 {
		t.Errorf("rotation bounds should be swapped, got [%v, %v]", cfg.Physics.MinRotation, cfg.Physics.MaxRotation)
	}
	if cfg.Persistence.Backend != BackendSQLite {
		t.Errorf("unknown backend should fall back to sqlite, got %q", cfg.Persistence.Backend)
	}
	if cfg.Persistence.Slot != "flappyHighScore" {
		t.Errorf("Slot = %q, expected flappyHighScore", cfg.Persistence.Slot)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultFlappyConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var cfg FlappyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if cfg != DefaultFlappyConfig() {
		t.Error("marshalled config should decode to the same values")
	}
}
