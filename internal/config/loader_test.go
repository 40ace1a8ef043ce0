package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseBee(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBeeConfig()) {
		t.Errorf("embedded YAML and DefaultBeeConfig diverge:\n yaml: %+v\n code: %+v", cfg, DefaultBeeConfig())
	}
}

func TestLoadBeeCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bee.yaml")
	data := []byte("physics:\n  gravity: 0.75\nobstacles:\n  max_count: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBee(path)
	if err != nil {
		t.Fatalf("LoadBee() failed: %v", err)
	}

	if cfg.Physics.Gravity != 0.75 {
		t.Errorf("Gravity = %f, expected 0.75", cfg.Physics.Gravity)
	}
	if cfg.Obstacles.MaxCount != 3 {
		t.Errorf("MaxCount = %d, expected 3", cfg.Obstacles.MaxCount)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Lift != DefaultBeeConfig().Physics.Lift {
		t.Errorf("Lift = %f, expected default %f", cfg.Physics.Lift, DefaultBeeConfig().Physics.Lift)
	}
	if len(cfg.Obstacles.Sizes) != 3 {
		t.Errorf("Sizes should keep the 3 default presets, got %v", cfg.Obstacles.Sizes)
	}
}

func TestLoadBeeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBee(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBee(broken); err == nil {
		t.Error("unparsable custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  history_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadBee(invalid)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadBeeSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	// Nothing on the search path: embedded defaults
	cfg, err := LoadBee("")
	if err != nil {
		t.Fatalf("LoadBee() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBeeConfig()) {
		t.Error("expected embedded defaults when no config files exist")
	}

	// Local ./configs/bee.yaml
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "bee.yaml"), []byte("physics:\n  lift: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBee("")
	if cfg.Physics.Lift != 12 {
		t.Errorf("local config not picked up, Lift = %f", cfg.Physics.Lift)
	}

	// User config wins over local
	userDir := filepath.Join(home, AppDirName, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "bee.yaml"), []byte("physics:\n  lift: 14\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBee("")
	if cfg.Physics.Lift != 14 {
		t.Errorf("user config should take precedence, Lift = %f", cfg.Physics.Lift)
	}

	// A broken user config is skipped
	if err := os.WriteFile(filepath.Join(userDir, "bee.yaml"), []byte("physics: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadBee("")
	if cfg.Physics.Lift != 12 {
		t.Errorf("broken user config should fall through to local, Lift = %f", cfg.Physics.Lift)
	}
}

func TestApplyBeePreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		reinforce   int
		obstacleGap int
	}{
		{DifficultyEasy, true, 150, 45},
		{DifficultyNormal, true, 100, 30},
		{DifficultyHard, true, 60, 20},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBeeConfig()
			ApplyBeePreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.ReinforcementStep != tc.reinforce {
				t.Errorf("ReinforcementStep = %d, expected %d", cfg.Difficulty.ReinforcementStep, tc.reinforce)
			}
			if cfg.Difficulty.ObstacleStep != tc.obstacleGap {
				t.Errorf("ObstacleStep = %d, expected %d", cfg.Difficulty.ObstacleStep, tc.obstacleGap)
			}
		})
	}

	cfg := DefaultBeeConfig()
	ApplyBeePreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should map to empty")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.beelazy/highscores.json")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, ".beelazy", "highscores.json")
	if got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("/tmp/x.json"); got != "/tmp/x.json" {
		t.Errorf("absolute paths should pass through, got %q", got)
	}
}
