package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
	"github.com/vovakirdan/homebound/internal/platform/tui"
	"github.com/vovakirdan/homebound/internal/storage"
)

var (
	flagMapFile string
	flagMapsDir string
)

// runtimeConfig sizes the run to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openHistory opens the run database. A failure is logged and play goes on
// without history; the returned History is nil then, never a nil *Store.
func openHistory() (*storage.Store, tui.History) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("could not open run history", "err", err, "path", flagDBPath)
		return nil, nil
	}
	return store, store
}

func closeHistory(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close run history", "err", err)
	}
}

// registerExtraMaps registers maps from --maps and --map-file. It returns the
// id of the --map-file map, if any.
func registerExtraMaps() (string, error) {
	if flagMapsDir != "" {
		maps, err := layout.NewLoader(flagMapsDir).LoadAll()
		if err != nil {
			return "", err
		}
		if err := home.RegisterMaps(maps); err != nil {
			return "", err
		}
		logger.Info("maps loaded", "dir", flagMapsDir, "count", len(maps))
	}

	if flagMapFile == "" {
		return "", nil
	}
	m, err := layout.NewLoader("").LoadFile(flagMapFile)
	if err != nil {
		return "", err
	}
	if err := home.RegisterMaps([]*layout.Map{m}); err != nil {
		return "", err
	}
	logger.Info("map loaded", "file", flagMapFile, "map", m.ID)
	return m.ID, nil
}

func gameOptions() tui.Options {
	return tui.Options{Logger: logger}
}
