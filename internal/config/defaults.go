package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/home.yaml
var defaultHomeYAML []byte

// DefaultHomeConfig returns the default configuration.
// It mirrors defaults/home.yaml and is used when the embedded YAML cannot be parsed.
func DefaultHomeConfig() HomeConfig {
	return HomeConfig{
		Player: PlayerConfig{
			BaseSpeed:   10,
			Size:        64,
			HitboxInset: 26,
		},
		Interaction: InteractionConfig{
			Radius:       100,
			HoldDuration: 4 * time.Second,
			SecretCode:   "69420",
			CodeCapacity: 5,
		},
		Happiness: HappinessConfig{
			Initial:         80,
			Max:             100,
			BadTaskInterval: 1300,
			MinOpacity:      0,
			MaxOpacity:      255,
		},
		Tasks: []TaskConfig{
			{Label: "Talk on phone", Object: "telephone", Completion: CompletionCode,
				Instructions: []string{"Dial the number from the notes.", "Type digits, Backspace to erase, Enter to call."}},
			{Label: "Go to balcony", Object: "chair", Completion: CompletionHold,
				Instructions: []string{"Sit down and get some fresh air."}},
			{Label: "Clean out the trash", Object: "trashcan", Completion: CompletionHold,
				Instructions: []string{"Tie the bag and take it out."}},
			{Label: "Take a bath", Object: "bathtub", Completion: CompletionHold,
				Instructions: []string{"Relax in warm water for a while."}},
			{Label: "Do the dishes", Object: "sink", Completion: CompletionHold,
				Instructions: []string{"Scrub every plate until it shines."}},
			{Label: "Read a book", Object: "books", Completion: CompletionHold,
				Instructions: []string{"Pick a book and read a chapter."}},
			{Label: "Do the laundry", Object: "washing_machine", Completion: CompletionHold,
				Instructions: []string{"Load the machine and start a cycle."}},
		},
		BadTasks: []BadTaskConfig{
			{ID: 1, Penalty: 10, Lines: []string{"You browsed through social media for 2 hours.", "Your happiness is reduced by 10 points."}},
			{ID: 2, Penalty: 10, Lines: []string{"You ate a lot of junk food.", "Your happiness is reduced by 10 points."}},
			{ID: 3, Penalty: 15, Lines: []string{"You watched TV for 3 hours", "Your happiness is reduced by 15 points"}},
		},
		Notes: NotesConfig{
			Object: "notes",
			Title:  "Check the notes",
			Lines:  []string{"Mom called while you were out.", "Call her back: 69420"},
		},
		Render: RenderConfig{
			CellWidth:  16,
			CellHeight: 32,
			Vignette:   true,
		},
		Sprites: map[string]SpriteConfig{
			"telephone":       {Rows: []string{"┌──┐", "│☎ │"}, Color: "yellow", ActiveColor: "bright_yellow"},
			"chair":           {Rows: []string{"╓──╖", "╙  ╜"}, Color: "brown", ActiveColor: "orange"},
			"trashcan":        {Rows: []string{"▄▄▄▄", "█▒▒█"}, Color: "gray", ActiveColor: "bright_white"},
			"bathtub":         {Rows: []string{"╭──╮", "╰~~╯"}, Color: "cyan", ActiveColor: "bright_cyan"},
			"sink":            {Rows: []string{"┬~~┬", "└──┘"}, Color: "blue", ActiveColor: "bright_blue"},
			"books":           {Rows: []string{"▐▌▐▌", "████"}, Color: "red", ActiveColor: "bright_red"},
			"notes":           {Rows: []string{"┌≡≡┐", "└──┘"}, ReadRows: []string{"┌──┐", "└✓─┘"}, Color: "white", ActiveColor: "bright_white"},
			"washing_machine": {Rows: []string{"┌──┐", "│◎ │"}, Color: "white", ActiveColor: "bright_white"},
			"furniture":       {Rows: []string{"▓▓▓▓", "▓▓▓▓"}, Color: "brown"},
			"player_down":     {Rows: []string{" ◕◕ ", " ██ "}, Color: "bright_green"},
			"player_up":       {Rows: []string{" ●● ", " ██ "}, Color: "bright_green"},
			"player_left":     {Rows: []string{" ◕  ", " ██ "}, Color: "bright_green"},
			"player_right":    {Rows: []string{"  ◕ ", " ██ "}, Color: "bright_green"},
			"floor":           {Rows: []string{"·"}, Color: "dark_gray"},
			"wall":            {Rows: []string{"█"}, Color: "gray"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHomeYAML
}
