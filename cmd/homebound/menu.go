package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start homebound with a map picker menu",
	Long: `Start homebound in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a map.
After a run ends, press Esc to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select map
  Tab          - Run history
  ?            - Show game controls
  Q            - Quit

Examples:
  homebound menu
  homebound menu --fps 30
  homebound menu --db ./runs.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMapsDir, "maps", "", "Register every map file under this directory")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if _, err := registerExtraMaps(); err != nil {
		return err
	}

	store, history := openHistory()
	defer closeHistory(store)

	var recorder tui.RunRecorder
	if history != nil {
		recorder = history
	}

	cfg := runtimeConfig()
	opts := gameOptions()
	opts.AllowBack = true

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(history, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(history, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.MapID)
		if err != nil {
			logger.Error("cannot create game", "map", menuResult.MapID, "err", err)
			continue
		}

		// Fresh seed for each run unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		model, err := tui.RunModel(game, recorder, runCfg, opts)
		if err != nil {
			return err
		}
		if model.IsQuitting() {
			return nil
		}
	}
}
