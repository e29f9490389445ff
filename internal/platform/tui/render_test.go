package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/homebound/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawTextColor(0, 1, "de", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "abc") || !strings.Contains(out, "de") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
