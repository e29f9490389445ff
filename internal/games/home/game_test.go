package home

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
	"github.com/vovakirdan/homebound/internal/registry"
)

func TestEmbeddedMapsRegistered(t *testing.T) {
	for _, id := range []string{"apartment", "studio"} {
		if !registry.Exists(id) {
			t.Errorf("map %q is not registered", id)
		}
	}
}

func TestRegisterMapsSkipsDuplicates(t *testing.T) {
	m, err := layout.LoadEmbedded("studio")
	if err != nil {
		t.Fatal(err)
	}
	if err := RegisterMaps([]*layout.Map{m}); err == nil {
		t.Error("expected an error for an already registered map")
	}
}

func TestGameRunsOnEmbeddedMaps(t *testing.T) {
	for _, info := range registry.List() {
		t.Run(info.ID, func(t *testing.T) {
			g, err := registry.Create(info.ID)
			if err != nil {
				t.Fatal(err)
			}
			cfg := core.DefaultConfig()
			cfg.Seed = 42
			cfg.Clock = core.NewManualClock()
			g.Reset(cfg)

			hg := g.(*Game)
			if hg.Err() != nil {
				t.Fatalf("level failed to start: %v", hg.Err())
			}

			for i := 0; i < 30; i++ {
				g.Step(held(core.ActionRight))
			}
			st := g.State()
			if st.Score != 80 || st.TasksTotal != 7 || st.Finished() {
				t.Errorf("state = %+v", st)
			}

			scr := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
			g.Render(scr)
			if !strings.Contains(scr.Row(0), "Happiness") {
				t.Errorf("HUD row = %q", scr.Row(0))
			}
			if hg.Vignette() != 92 {
				t.Errorf("Vignette() = %d, expected 92", hg.Vignette())
			}
		})
	}
}

func TestRenderShowsKeypadPrompt(t *testing.T) {
	l, _ := newTestLevel(t)
	l.Step(press(core.ActionUse))
	l.Step(typed("69"))

	scr := core.NewScreen(80, 24)
	renderPresentation(scr, l.Presentation())
	if !strings.Contains(scr.String(), "Number: 6 9 _ _ _") {
		t.Errorf("keypad not rendered:\n%s", scr.String())
	}
}

func TestRenderGameOver(t *testing.T) {
	scr := core.NewScreen(80, 24)
	renderPresentation(scr, Presentation{MaxHappy: 100, GameOver: GameOverMessage, TasksTotal: 7})
	out := scr.String()
	if !strings.Contains(out, "Game Over.") || !strings.Contains(out, "Press R to restart") {
		t.Errorf("game over panel missing:\n%s", out)
	}
}

func TestGameReportsUnplayableMap(t *testing.T) {
	bare := &layout.Map{ID: "bare", Name: "Bare", TileSize: 64, Cols: 3, Rows: 3}
	g := New(bare)
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10, Seed: 1, Clock: core.NewManualClock()})

	if g.Err() == nil {
		t.Fatal("expected error for a map without task objects")
	}
	if res := g.Step(core.NewInputFrame()); !res.State.GameOver {
		t.Error("an unplayable map should report game over")
	}

	scr := core.NewScreen(40, 10)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Cannot start level") {
		t.Errorf("error panel missing:\n%s", scr.String())
	}
}

func TestGameReportsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "home.yaml")
	if err := os.WriteFile(path, []byte("happiness: [not, a, map]\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	m, err := layout.LoadEmbedded("apartment")
	if err != nil {
		t.Fatal(err)
	}
	g := New(m)
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 12, Seed: 1, Clock: core.NewManualClock()})

	if g.Err() == nil || !strings.Contains(g.Err().Error(), path) {
		t.Fatalf("Err() = %v, expected the config error naming %s", g.Err(), path)
	}
	scr := core.NewScreen(60, 12)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Cannot start level") {
		t.Errorf("error panel missing:\n%s", scr.String())
	}
}
