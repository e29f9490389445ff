// Package config provides YAML-based game configuration loading and
// difficulty presets for homebound.
package config

import (
	"fmt"
	"time"
	"unicode"
)

// Completion names how a task is completed.
type Completion string

const (
	// CompletionHold completes a task by holding the interact key next to its object.
	CompletionHold Completion = "hold"
	// CompletionCode completes a task by entering the secret code on the keypad.
	CompletionCode Completion = "code"
)

// HomeConfig contains all configuration for the game.
type HomeConfig struct {
	Player      PlayerConfig            `yaml:"player"`
	Interaction InteractionConfig       `yaml:"interaction"`
	Happiness   HappinessConfig         `yaml:"happiness"`
	Tasks       []TaskConfig            `yaml:"tasks"`
	BadTasks    []BadTaskConfig         `yaml:"bad_tasks"`
	Notes       NotesConfig             `yaml:"notes"`
	Render      RenderConfig            `yaml:"render"`
	Sprites     map[string]SpriteConfig `yaml:"sprites"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	BaseSpeed   float64 `yaml:"base_speed"`   // World units per tick at full happiness
	Size        int     `yaml:"size"`         // Sprite rect edge in world units
	HitboxInset int     `yaml:"hitbox_inset"` // Vertical shrink of the collision box
}

// InteractionConfig defines object interaction parameters.
type InteractionConfig struct {
	Radius       int           `yaml:"radius"`        // Per-axis catchment half-width
	HoldDuration time.Duration `yaml:"hold_duration"` // Hold time to complete a task
	SecretCode   string        `yaml:"secret_code"`
	CodeCapacity int           `yaml:"code_capacity"` // Max digits on the keypad
}

// HappinessConfig defines the mood model.
type HappinessConfig struct {
	Initial         int `yaml:"initial"`
	Max             int `yaml:"max"`
	BadTaskInterval int `yaml:"bad_task_interval"` // Ticks between bad-task popups
	MinOpacity      int `yaml:"min_opacity"`
	MaxOpacity      int `yaml:"max_opacity"`
}

// TaskConfig defines one entry of the ordered task list.
type TaskConfig struct {
	Label        string     `yaml:"label"`
	Object       string     `yaml:"object"`
	Completion   Completion `yaml:"completion"`
	Instructions []string   `yaml:"instructions"`
}

// BadTaskConfig defines one entry of the bad-task catalog.
type BadTaskConfig struct {
	ID      int      `yaml:"id"`
	Lines   []string `yaml:"lines"`
	Penalty int      `yaml:"penalty"`
}

// NotesConfig defines the read-only notes display.
type NotesConfig struct {
	Object string   `yaml:"object"`
	Title  string   `yaml:"title"`
	Lines  []string `yaml:"lines"`
}

// RenderConfig defines how world units map to terminal cells.
type RenderConfig struct {
	CellWidth  int  `yaml:"cell_width"`  // World units per column
	CellHeight int  `yaml:"cell_height"` // World units per row
	Vignette   bool `yaml:"vignette"`
}

// SpriteConfig defines the character art for one object type.
type SpriteConfig struct {
	Rows        []string `yaml:"rows"`
	Color       string   `yaml:"color"`
	ActiveColor string   `yaml:"active_color"`
	ReadRows    []string `yaml:"read_rows,omitempty"` // Art after the object was used
}

// Validate checks the configuration for values the game cannot run with.
func (c HomeConfig) Validate() error {
	if c.Player.BaseSpeed <= 0 {
		return fmt.Errorf("config: player.base_speed must be positive")
	}
	if c.Player.Size <= 0 || c.Player.HitboxInset < 0 || c.Player.HitboxInset >= c.Player.Size {
		return fmt.Errorf("config: player.size/hitbox_inset out of range")
	}
	if c.Interaction.Radius <= 0 {
		return fmt.Errorf("config: interaction.radius must be positive")
	}
	if c.Interaction.HoldDuration <= 0 {
		return fmt.Errorf("config: interaction.hold_duration must be positive")
	}
	if c.Interaction.CodeCapacity <= 0 {
		return fmt.Errorf("config: interaction.code_capacity must be positive")
	}
	if n := len([]rune(c.Interaction.SecretCode)); n == 0 || n > c.Interaction.CodeCapacity {
		return fmt.Errorf("config: interaction.secret_code must have 1..%d digits", c.Interaction.CodeCapacity)
	}
	for _, r := range c.Interaction.SecretCode {
		if !unicode.IsDigit(r) {
			return fmt.Errorf("config: interaction.secret_code must be numeric")
		}
	}
	if c.Happiness.Max <= 0 || c.Happiness.Initial < 0 || c.Happiness.Initial > c.Happiness.Max {
		return fmt.Errorf("config: happiness.initial must be within [0, %d]", c.Happiness.Max)
	}
	if c.Happiness.BadTaskInterval <= 0 {
		return fmt.Errorf("config: happiness.bad_task_interval must be positive")
	}
	if c.Happiness.MinOpacity < 0 || c.Happiness.MaxOpacity > 255 || c.Happiness.MinOpacity > c.Happiness.MaxOpacity {
		return fmt.Errorf("config: happiness opacity range must satisfy 0 <= min <= max <= 255")
	}
	if len(c.Tasks) == 0 {
		return fmt.Errorf("config: at least one task is required")
	}
	labels := make(map[string]bool, len(c.Tasks))
	for _, t := range c.Tasks {
		if t.Label == "" || t.Object == "" {
			return fmt.Errorf("config: task needs a label and an object")
		}
		if labels[t.Label] {
			return fmt.Errorf("config: duplicate task %q", t.Label)
		}
		labels[t.Label] = true
		if t.Completion != CompletionHold && t.Completion != CompletionCode {
			return fmt.Errorf("config: task %q has unknown completion %q", t.Label, t.Completion)
		}
	}
	if len(c.BadTasks) == 0 {
		return fmt.Errorf("config: at least one bad task is required")
	}
	ids := make(map[int]bool, len(c.BadTasks))
	for _, b := range c.BadTasks {
		if ids[b.ID] {
			return fmt.Errorf("config: duplicate bad task id %d", b.ID)
		}
		ids[b.ID] = true
		if b.Penalty < 0 {
			return fmt.Errorf("config: bad task %d has a negative penalty", b.ID)
		}
	}
	if c.Render.CellWidth <= 0 || c.Render.CellHeight <= 0 {
		return fmt.Errorf("config: render cell size must be positive")
	}
	return nil
}
