package home

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
)

// hallMap has a telephone right above the spawn point, the notes two tiles to
// the right and a chair at the far end.
const hallMap = `id: hall
name: Test Hall
tile_size: 64
spawn: {col: 1, row: 2}
objects:
  - {code: 1357, name: telephone}
  - {code: 1391, name: notes}
  - {code: 1419, name: chair}
layers:
  boundary: |
    395,395,395,395,395,395,395,395,395
    395,-1,-1,-1,-1,-1,-1,-1,395
    395,-1,-1,-1,-1,-1,-1,-1,395
    395,-1,-1,-1,-1,-1,-1,-1,395
    395,395,395,395,395,395,395,395,395
  floor: |
    -1,-1,-1,-1,-1,-1,-1,-1,-1
    -1,0,0,0,0,0,0,0,-1
    -1,0,0,0,0,0,0,0,-1
    -1,0,0,0,0,0,0,0,-1
    -1,-1,-1,-1,-1,-1,-1,-1,-1
  object: |
    -1,-1,-1,-1,-1,-1,-1,-1,-1
    -1,1357,-1,1391,-1,-1,-1,1419,-1
    -1,-1,-1,-1,-1,-1,-1,-1,-1
    -1,-1,-1,-1,-1,-1,-1,-1,-1
    -1,-1,-1,-1,-1,-1,-1,-1,-1
`

func hallConfig() config.HomeConfig {
	cfg := config.DefaultHomeConfig()
	cfg.Tasks = []config.TaskConfig{
		{Label: "Talk on phone", Object: "telephone", Completion: config.CompletionCode},
		{Label: "Go to balcony", Object: "chair", Completion: config.CompletionHold},
	}
	return cfg
}

func newTestLevel(t *testing.T) (*Level, *core.ManualClock) {
	t.Helper()
	m, err := layout.Parse([]byte(hallMap))
	if err != nil {
		t.Fatalf("parse hall map: %v", err)
	}
	clock := core.NewManualClock()
	l, err := NewLevel(hallConfig(), m, clock, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewLevel() failed: %v", err)
	}
	return l, clock
}

// teleport moves the player sprite's top-left corner to (x, y).
func teleport(l *Level, x, y int) {
	p := l.player
	p.rect = core.NewRect(x, y, p.rect.W, p.rect.H)
	p.hitbox = p.rect.Inflate(0, -l.cfg.Player.HitboxInset)
	p.posX, p.posY = float64(p.hitbox.X), float64(p.hitbox.Y)
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
		in.Hold(a, true)
	}
	return in
}

func held(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a, true)
	}
	return in
}

func release(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Release(a)
	return in
}

func typed(text string, actions ...core.Action) core.InputFrame {
	in := press(actions...)
	for _, r := range text {
		in.Type(r)
	}
	return in
}

func idle() core.InputFrame {
	return core.NewInputFrame()
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
