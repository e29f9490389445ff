package home

import (
	"github.com/vovakirdan/homebound/internal/core"
	"github.com/vovakirdan/homebound/internal/games/home/layout"
)

// Floor is the pre-rendered ground of a map, drawn beneath every entity.
type Floor struct {
	bounds core.Rect
	image  *Image
}

// NewFloor rasterizes the map tiles into terminal cells. Each tile spans
// TileSize/cellW columns and TileSize/cellH rows; tile art repeats across it.
func NewFloor(m *layout.Map, cellW, cellH int, sheet spriteSheet) *Floor {
	tw := max(1, m.TileSize/cellW)
	th := max(1, m.TileSize/cellH)

	art := map[layout.Tile]*Image{
		layout.TileFloor:  sheet.lookup("floor", "floor").Inactive,
		layout.TileWall:   sheet.lookup("wall", "wall").Inactive,
		layout.TileDetail: sheet.lookup("detail", "floor").Inactive,
	}

	img := &Image{cells: make([][]core.Cell, m.Rows*th)}
	for y := range img.cells {
		img.cells[y] = make([]core.Cell, m.Cols*tw)
		for x := range img.cells[y] {
			img.cells[y][x] = core.Cell{Rune: ' '}
		}
	}
	for r, row := range m.Tiles {
		for c, t := range row {
			src := art[t]
			if src == nil || src.Height() == 0 {
				continue
			}
			for dy := 0; dy < th; dy++ {
				line := src.cells[dy%src.Height()]
				if len(line) == 0 {
					continue
				}
				for dx := 0; dx < tw; dx++ {
					img.cells[r*th+dy][c*tw+dx] = line[dx%len(line)]
				}
			}
		}
	}
	return &Floor{bounds: core.NewRect(0, 0, m.Width(), m.Height()), image: img}
}

// Bounds returns the floor rect, covering the whole map.
func (f *Floor) Bounds() core.Rect { return f.bounds }

// Image returns the rasterized floor.
func (f *Floor) Image() *Image { return f.image }
