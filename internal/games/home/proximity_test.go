package home

import (
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestProximityCatchmentIsSquare(t *testing.T) {
	player := core.NewRect(0, 0, 64, 64) // center (32, 32)

	tests := []struct {
		name string
		x, y int
		near bool
	}{
		{"same spot", 0, 0, true},
		{"dx 99", 99, 0, true},
		{"dx 100", 100, 0, false},
		{"dy 99", 0, 99, true},
		{"dy 100", 0, 100, false},
		{"diagonal 99", 99, 99, true},
		{"negative side", -99, -99, true},
		{"negative edge", -100, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProximityTracker(100)
			o := NewWorldObject("sink", core.NewRect(tt.x, tt.y, 64, 64), nil)
			p.Update(player, []*WorldObject{o})

			if p.Contains(o) != tt.near {
				t.Errorf("Contains() = %v, expected %v", p.Contains(o), tt.near)
			}
			if o.Active() != tt.near {
				t.Errorf("Active() = %v, expected %v", o.Active(), tt.near)
			}
		})
	}
}

func TestProximityEntersAndLeaves(t *testing.T) {
	p := NewProximityTracker(100)
	sink := NewWorldObject("sink", core.NewRect(200, 0, 64, 64), nil)
	objects := []*WorldObject{sink}

	p.Update(core.NewRect(0, 0, 64, 64), objects)
	if !p.Empty() || sink.Active() {
		t.Fatal("sink should start out of range")
	}

	p.Update(core.NewRect(150, 0, 64, 64), objects)
	if !p.Contains(sink) || !sink.Active() {
		t.Fatal("sink should be added once in range")
	}

	p.Update(core.NewRect(150, 0, 64, 64), objects)
	if len(p.Near()) != 1 {
		t.Errorf("repeated updates should not duplicate entries, got %d", len(p.Near()))
	}

	p.Update(core.NewRect(100, 0, 64, 64), objects)
	if p.Contains(sink) || sink.Active() {
		t.Error("sink at dx=100 should be removed and inactive")
	}
}

func TestProximityIgnoresFurniture(t *testing.T) {
	p := NewProximityTracker(100)
	couch := NewWorldObject("", core.NewRect(0, 0, 64, 64), nil)
	p.Update(core.NewRect(0, 0, 64, 64), []*WorldObject{couch})

	if !p.Empty() || couch.Active() {
		t.Error("unnamed objects should never be tracked")
	}
}

func TestProximityActiveNear(t *testing.T) {
	p := NewProximityTracker(100)
	phone := NewWorldObject("telephone", core.NewRect(0, 0, 64, 64), nil)
	books := NewWorldObject("books", core.NewRect(64, 0, 64, 64), nil)
	p.Update(core.NewRect(0, 64, 64, 64), []*WorldObject{phone, books})

	if !p.ActiveNear("telephone") || !p.ActiveNear("books") {
		t.Error("both objects should be active nearby")
	}
	if p.ActiveNear("sink") {
		t.Error("no sink is nearby")
	}
	if p.Find("books") != books {
		t.Error("Find() should return the books object")
	}

	names := []string{}
	for _, o := range p.Near() {
		names = append(names, o.Name())
	}
	if len(names) != 2 || names[0] != "telephone" || names[1] != "books" {
		t.Errorf("Near() = %v, expected insertion order", names)
	}
}

func TestObjectVariantFollowsFlags(t *testing.T) {
	sprite := &Sprite{
		Inactive:   NewImage([]string{"a"}, core.ColorWhite),
		Active:     NewImage([]string{"b"}, core.ColorWhite),
		Used:       NewImage([]string{"c"}, core.ColorWhite),
		UsedActive: NewImage([]string{"d"}, core.ColorWhite),
	}
	o := NewWorldObject("notes", core.NewRect(0, 0, 64, 64), sprite)

	if o.Image() != sprite.Inactive {
		t.Error("new object should show the inactive variant")
	}
	o.SetActive(true)
	if o.Image() != sprite.Active {
		t.Error("active object should show the active variant")
	}
	o.MarkUsed()
	if o.Image() != sprite.UsedActive {
		t.Error("used active object should show the used active variant")
	}
	o.SetActive(false)
	if o.Image() != sprite.Used {
		t.Error("used object should keep its used variant when inactive")
	}
}
