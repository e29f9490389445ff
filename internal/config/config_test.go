package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var embedded HomeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if !reflect.DeepEqual(embedded, DefaultHomeConfig()) {
		t.Error("defaults/home.yaml and DefaultHomeConfig() have drifted apart")
	}
}

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultHomeConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	if cfg.Interaction.Radius != 100 {
		t.Errorf("radius = %d, expected 100", cfg.Interaction.Radius)
	}
	if cfg.Interaction.HoldDuration != 4*time.Second {
		t.Errorf("hold duration = %v, expected 4s", cfg.Interaction.HoldDuration)
	}
	if cfg.Happiness.BadTaskInterval != 1300 {
		t.Errorf("bad task interval = %d, expected 1300", cfg.Happiness.BadTaskInterval)
	}
	if cfg.Interaction.SecretCode != "69420" {
		t.Errorf("secret code = %q", cfg.Interaction.SecretCode)
	}

	penalties := []int{}
	for _, b := range cfg.BadTasks {
		penalties = append(penalties, b.Penalty)
	}
	if !reflect.DeepEqual(penalties, []int{10, 10, 15}) {
		t.Errorf("penalties = %v, expected [10 10 15]", penalties)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HomeConfig)
	}{
		{"zero radius", func(c *HomeConfig) { c.Interaction.Radius = 0 }},
		{"code longer than pad", func(c *HomeConfig) { c.Interaction.SecretCode = "123456" }},
		{"non numeric code", func(c *HomeConfig) { c.Interaction.SecretCode = "69a20" }},
		{"initial above max", func(c *HomeConfig) { c.Happiness.Initial = 101 }},
		{"inverted opacity", func(c *HomeConfig) { c.Happiness.MinOpacity = 200; c.Happiness.MaxOpacity = 100 }},
		{"no tasks", func(c *HomeConfig) { c.Tasks = nil }},
		{"duplicate task", func(c *HomeConfig) { c.Tasks = append(c.Tasks, c.Tasks[0]) }},
		{"unknown completion", func(c *HomeConfig) { c.Tasks[1].Completion = "wish" }},
		{"duplicate bad task", func(c *HomeConfig) { c.BadTasks[1].ID = c.BadTasks[0].ID }},
		{"negative penalty", func(c *HomeConfig) { c.BadTasks[0].Penalty = -1 }},
		{"zero cell", func(c *HomeConfig) { c.Render.CellWidth = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHomeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadHomeCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.yaml")
	data := []byte("interaction:\n  hold_duration: 2500ms\nhappiness:\n  initial: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHome(path)
	if err != nil {
		t.Fatalf("LoadHome() failed: %v", err)
	}
	if cfg.Interaction.HoldDuration != 2500*time.Millisecond {
		t.Errorf("hold duration = %v", cfg.Interaction.HoldDuration)
	}
	if cfg.Happiness.Initial != 50 {
		t.Errorf("initial = %d", cfg.Happiness.Initial)
	}
	// Untouched keys keep their defaults
	if cfg.Interaction.SecretCode != "69420" || len(cfg.Tasks) != 7 {
		t.Error("custom file should overlay, not replace, the defaults")
	}
}

func TestLoadHomeErrors(t *testing.T) {
	if _, err := LoadHome(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("interaction:\n  radius: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHome(path); err == nil {
		t.Error("invalid custom file should fail")
	}
}

func TestDifficultyPresets(t *testing.T) {
	if p, err := ParseDifficultyPreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, err)
	}
	if _, err := ParseDifficultyPreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}

	easy := DefaultHomeConfig()
	ApplyHomePreset(&easy, DifficultyEasy)
	if easy.Happiness.BadTaskInterval != 1950 || easy.Happiness.Initial != 90 {
		t.Errorf("easy = %+v", easy.Happiness)
	}

	hard := DefaultHomeConfig()
	ApplyHomePreset(&hard, DifficultyHard)
	if hard.Happiness.BadTaskInterval != 866 || hard.Happiness.Initial != 70 {
		t.Errorf("hard = %+v", hard.Happiness)
	}

	normal := DefaultHomeConfig()
	ApplyHomePreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultHomeConfig()) {
		t.Error("normal preset should not change the config")
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Setenv("HOMEBOUND_FPS", "30")
	t.Setenv("HOMEBOUND_DB", "/tmp/runs.db")

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() failed: %v", err)
	}
	if s.FPS != 30 || s.DBPath != "/tmp/runs.db" {
		t.Errorf("settings = %+v", s)
	}
	if s.Difficulty != "normal" {
		t.Errorf("difficulty default = %q", s.Difficulty)
	}

	t.Setenv("HOMEBOUND_FPS", "fast")
	if _, err := LoadSettings(); err == nil {
		t.Error("non-numeric FPS should fail")
	}
}
