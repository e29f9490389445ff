package core

import "testing"

func TestInputFrameEdges(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionInteract)
	f.Release(ActionBack)
	f.Hold(ActionUp, true)
	f.Type('6')
	f.Type('9')

	if !f.Has(ActionInteract) {
		t.Error("Interact should be pressed")
	}
	if f.Has(ActionBack) {
		t.Error("Back was released, not pressed")
	}
	if !f.WasReleased(ActionBack) {
		t.Error("Back should be released")
	}
	if !f.IsHeld(ActionUp) {
		t.Error("Up should be held")
	}
	if string(f.Text) != "69" {
		t.Errorf("Text = %q, expected \"69\"", string(f.Text))
	}

	f.Clear()

	if f.Has(ActionInteract) || f.WasReleased(ActionBack) || len(f.Text) != 0 {
		t.Error("Clear should drop edges and text")
	}
	if !f.IsHeld(ActionUp) {
		t.Error("Clear should keep held state")
	}

	f.Hold(ActionUp, false)
	if f.IsHeld(ActionUp) {
		t.Error("Up should no longer be held")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUse) || f.IsHeld(ActionUse) || f.WasReleased(ActionUse) {
		t.Error("zero frame should report nothing")
	}
	f.Set(ActionUse)
	if !f.Has(ActionUse) {
		t.Error("Set on zero frame should work")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.Type('1')

	c := f.Clone()
	f.Clear()

	if !c.Has(ActionConfirm) || string(c.Text) != "1" {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionInteract.String() != "Interact" {
		t.Errorf("got %q", ActionInteract.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("got %q", Action(99).String())
	}
}
