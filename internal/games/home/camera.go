package home

import (
	"sort"

	"github.com/vovakirdan/homebound/internal/core"
)

// Drawable is anything the camera can place on screen.
type Drawable interface {
	Bounds() core.Rect
	Image() *Image
}

// DrawCommand is an image positioned in view space, in world units.
type DrawCommand struct {
	Image *Image
	X, Y  int
}

// Camera keeps the player centered in a viewport of the given world size.
type Camera struct {
	viewW, viewH int
	offX, offY   int
}

// NewCamera creates a camera for a viewport measured in world units.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

// Resize changes the viewport.
func (c *Camera) Resize(viewW, viewH int) {
	c.viewW, c.viewH = viewW, viewH
}

// Offset returns the world position of the viewport's top-left corner.
func (c *Camera) Offset() (int, int) {
	return c.offX, c.offY
}

// Follow centers the viewport on target.
func (c *Camera) Follow(target core.Rect) {
	c.offX = target.CenterX() - c.viewW/2
	c.offY = target.CenterY() - c.viewH/2
}

// Frame follows focus and returns the draw list: the floor first, then every
// entity in ascending order of its center Y, ties kept in input order.
func (c *Camera) Frame(focus core.Rect, floor Drawable, entities []Drawable) []DrawCommand {
	c.Follow(focus)

	sorted := append([]Drawable(nil), entities...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Bounds().CenterY() < sorted[j].Bounds().CenterY()
	})

	cmds := make([]DrawCommand, 0, len(sorted)+1)
	if floor != nil {
		cmds = append(cmds, c.place(floor))
	}
	for _, d := range sorted {
		if d.Image() == nil {
			continue
		}
		cmds = append(cmds, c.place(d))
	}
	return cmds
}

func (c *Camera) place(d Drawable) DrawCommand {
	b := d.Bounds()
	return DrawCommand{Image: d.Image(), X: b.X - c.offX, Y: b.Y - c.offY}
}
