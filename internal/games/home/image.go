// Package home implements the homebound life simulation: the player walks a
// tile-based home, completes a fixed sequence of household tasks next to the
// right objects, and loses happiness to randomly scheduled bad habits.
package home

import (
	"fmt"

	"github.com/vovakirdan/homebound/internal/config"
	"github.com/vovakirdan/homebound/internal/core"
)

// Image is an opaque block of colored cells. Space runes are transparent.
type Image struct {
	cells [][]core.Cell
}

// NewImage builds an image from rows of text in one color.
func NewImage(rows []string, color core.Color) *Image {
	img := &Image{cells: make([][]core.Cell, len(rows))}
	for y, row := range rows {
		for _, r := range row {
			img.cells[y] = append(img.cells[y], core.Cell{Rune: r, Color: color})
		}
	}
	return img
}

// Width returns the widest row in cells.
func (img *Image) Width() int {
	w := 0
	for _, row := range img.cells {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (img *Image) Height() int {
	return len(img.cells)
}

// Blit draws the image with its top-left cell at (x, y), skipping transparent cells.
func (img *Image) Blit(dst *core.Screen, x, y int) {
	for dy, row := range img.cells {
		for dx, c := range row {
			if c.Rune == ' ' {
				continue
			}
			dst.SetWithColor(x+dx, y+dy, c.Rune, c.Color)
		}
	}
}

// Sprite holds the visual variants of one object type.
type Sprite struct {
	Inactive   *Image
	Active     *Image
	Used       *Image
	UsedActive *Image
}

// Variant picks the image for the given object flags.
func (s *Sprite) Variant(active, used bool) *Image {
	switch {
	case used && active:
		return s.UsedActive
	case used:
		return s.Used
	case active:
		return s.Active
	default:
		return s.Inactive
	}
}

// spriteSheet maps sprite names to their variants.
type spriteSheet map[string]*Sprite

// newSpriteSheet resolves sprite configs into images.
func newSpriteSheet(cfgs map[string]config.SpriteConfig) (spriteSheet, error) {
	sheet := make(spriteSheet, len(cfgs))
	for name, sc := range cfgs {
		if len(sc.Rows) == 0 {
			return nil, fmt.Errorf("sprite %q has no rows", name)
		}
		base, err := parseColor(sc.Color, core.ColorDefault)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
		active, err := parseColor(sc.ActiveColor, base)
		if err != nil {
			return nil, fmt.Errorf("sprite %q: %w", name, err)
		}
		usedRows := sc.ReadRows
		if len(usedRows) == 0 {
			usedRows = sc.Rows
		}
		sheet[name] = &Sprite{
			Inactive:   NewImage(sc.Rows, base),
			Active:     NewImage(sc.Rows, active),
			Used:       NewImage(usedRows, base),
			UsedActive: NewImage(usedRows, active),
		}
	}
	return sheet, nil
}

// lookup returns the named sprite, falling back to the generic one, then to a
// single placeholder block.
func (s spriteSheet) lookup(name, fallback string) *Sprite {
	if sp, ok := s[name]; ok {
		return sp
	}
	if sp, ok := s[fallback]; ok {
		return sp
	}
	img := NewImage([]string{"?"}, core.ColorMagenta)
	return &Sprite{Inactive: img, Active: img, Used: img, UsedActive: img}
}

func parseColor(name string, fallback core.Color) (core.Color, error) {
	if name == "" {
		return fallback, nil
	}
	c, ok := core.ParseColor(name)
	if !ok {
		return 0, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
