package home

import (
	"strings"
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestVignetteZeroOpacityIsNoop(t *testing.T) {
	s := core.NewScreen(10, 5)
	s.Fill('x')
	ApplyVignette(s, 0)
	for y := 0; y < 5; y++ {
		if s.Row(y) != "xxxxxxxxxx" {
			t.Fatalf("row %d changed: %q", y, s.Row(y))
		}
	}
}

func TestVignetteDarkensEdgesFirst(t *testing.T) {
	s := core.NewScreen(21, 11)
	s.Fill('x')
	ApplyVignette(s, 60) // center 60, corners 240

	if c := s.GetCell(10, 5); c.Rune != 'x' || c.Color != core.ColorDefault {
		t.Errorf("center cell = %+v, expected untouched", c)
	}
	if c := s.GetCell(0, 0); c.Rune != ' ' {
		t.Errorf("corner cell = %+v, expected hidden", c)
	}
	if c := s.GetCell(10, 0); c.Rune != 'x' || c.Color != core.ColorDarkGray {
		t.Errorf("top middle cell = %+v, expected dimmed", c)
	}
}

func TestVignetteFullOpacityHidesWorld(t *testing.T) {
	s := core.NewScreen(8, 4)
	s.Fill('x')
	ApplyVignette(s, 255)
	for y := 0; y < 4; y++ {
		if s.Row(y) != strings.Repeat(" ", 8) {
			t.Errorf("row %d = %q, expected blank", y, s.Row(y))
		}
	}
}
