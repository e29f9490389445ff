package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/registry"
)

// defaultMap is played when no map is named.
const defaultMap = "apartment"

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Play a map",
	Long: `Start a run on the specified map (default: apartment).

Controls:
  WASD/Arrows  - Walk
  I (hold)     - Do the current task at the highlighted object
  P            - Use the phone keypad or read the notes
  0-9          - Type digits on the keypad
  Enter        - Dial
  Backspace    - Erase a digit
  Esc          - Close the popup, keypad or notes
  R            - Restart (after the run ends)
  Q/Ctrl+C     - Quit
  Ctrl+S       - Save a screenshot

Difficulty options:
  easy   - Bad habits strike rarely, start fully happy
  normal - The default balance
  hard   - Bad habits strike often, start less happy

Examples:
  homebound play
  homebound play studio
  homebound play --difficulty hard
  homebound play --config ./my-home.yaml
  homebound play --map-file ./maps/loft.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMapFile, "map-file", "", "Play a map from this YAML file")
	playCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Register every map file under this directory")
}

func runPlay(_ *cobra.Command, args []string) error {
	fileMap, err := registerExtraMaps()
	if err != nil {
		return err
	}

	mapID := defaultMap
	switch {
	case len(args) == 1:
		mapID = args[0]
	case fileMap != "":
		mapID = fileMap
	}

	// Check if map exists
	if !registry.Exists(mapID) {
		return fmt.Errorf("unknown map %q (run 'homebound list' to see available maps)", mapID)
	}

	game, err := registry.Create(mapID)
	if err != nil {
		return err
	}

	store, history := openHistory()
	defer closeHistory(store)

	var recorder tui.RunRecorder
	if history != nil {
		recorder = history
	}

	if err := tui.Run(game, recorder, runtimeConfig(), gameOptions()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
