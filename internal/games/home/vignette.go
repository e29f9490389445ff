package home

import (
	"math"

	"github.com/vovakirdan/homebound/internal/core"
)

// Vignette shade thresholds on the 0-255 opacity scale.
const (
	dimShade   = 96  // Cells at or above are drawn dark gray
	blankShade = 200 // Cells at or above are hidden
)

// ApplyVignette darkens the screen toward its edges. The shade rises from
// opacity at the center to EdgeOpacity at the corners. Terminals cannot
// blend, so shaded cells are dimmed and then blanked out.
func ApplyVignette(s *core.Screen, opacity uint8) {
	if opacity == 0 {
		return
	}
	w, h := s.Width(), s.Height()
	if w == 0 || h == 0 {
		return
	}
	inner := float64(opacity)
	outer := float64(EdgeOpacity(opacity))
	cx, cy := float64(w-1)/2, float64(h-1)/2

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / math.Max(cx, 1)
			dy := (float64(y) - cy) / math.Max(cy, 1)
			d := math.Min(math.Hypot(dx, dy)/math.Sqrt2, 1)
			shade := inner + (outer-inner)*d

			c := s.GetCell(x, y)
			switch {
			case shade >= blankShade:
				s.SetWithColor(x, y, ' ', core.ColorDefault)
			case shade >= dimShade && c.Rune != ' ':
				s.SetWithColor(x, y, c.Rune, core.ColorDarkGray)
			}
		}
	}
}
