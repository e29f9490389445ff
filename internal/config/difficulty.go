package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a preset name. Empty means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyHomePreset modifies the config based on a difficulty preset.
// Easy spaces bad tasks further apart and starts happier; hard does the opposite.
func ApplyHomePreset(cfg *HomeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Happiness.BadTaskInterval = cfg.Happiness.BadTaskInterval * 3 / 2
		cfg.Happiness.Initial = min(cfg.Happiness.Max, cfg.Happiness.Initial+10)
	case DifficultyHard:
		cfg.Happiness.BadTaskInterval = cfg.Happiness.BadTaskInterval * 2 / 3
		cfg.Happiness.Initial = max(1, cfg.Happiness.Initial-10)
	}
}
