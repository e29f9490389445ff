// Package layout loads home maps: tile grids of small integer codes, one grid
// per layer, where -1 marks an empty cell.
// This package depends on core but core does not depend on layout.
package layout

import (
	"fmt"

	"github.com/vovakirdan/homebound/internal/core"
)

// Empty is the layer code of a cell with nothing in it.
const Empty = -1

// Tile is the floor-level appearance of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota // Outside the home
	TileFloor
	TileWall
	TileDetail // Floor with a decoration (rug, carpet)
)

// Placement is an object placed on the map.
type Placement struct {
	Code int
	Name string // Empty for decorative objects that cannot be interacted with
	Rect core.Rect
}

// Interactable reports whether the placement is a named, usable object.
func (p Placement) Interactable() bool {
	return p.Name != ""
}

// Map is a parsed home map in world units.
type Map struct {
	ID       string
	Name     string
	TileSize int
	Cols     int
	Rows     int
	Spawn    core.Rect    // Tile-sized rect the player starts in
	Tiles    [][]Tile     // [row][col] floor appearance
	Walls    []core.Rect  // Invisible obstacles from the boundary layer
	Objects  []Placement  // Visible obstacles from the object layer, in row-major order
	Names    map[int]string
	FilePath string
}

// Width returns the map width in world units.
func (m *Map) Width() int {
	return m.Cols * m.TileSize
}

// Height returns the map height in world units.
func (m *Map) Height() int {
	return m.Rows * m.TileSize
}

// ObjectNames returns the distinct interactable object names on the map.
func (m *Map) ObjectNames() map[string]bool {
	names := make(map[string]bool)
	for _, o := range m.Objects {
		if o.Interactable() {
			names[o.Name] = true
		}
	}
	return names
}

// build converts layer grids into world geometry.
func build(doc document, grids map[string][][]int) (*Map, error) {
	boundary := grids[LayerBoundary]
	rows := len(boundary)
	if rows == 0 {
		return nil, fmt.Errorf("boundary layer is empty")
	}
	cols := len(boundary[0])
	for name, g := range grids {
		if len(g) != rows || len(g[0]) != cols {
			return nil, fmt.Errorf("layer %s is %dx%d, expected %dx%d", name, len(g[0]), len(g), cols, rows)
		}
	}
	if doc.Spawn.Col < 0 || doc.Spawn.Col >= cols || doc.Spawn.Row < 0 || doc.Spawn.Row >= rows {
		return nil, fmt.Errorf("spawn (%d, %d) is outside the %dx%d map", doc.Spawn.Col, doc.Spawn.Row, cols, rows)
	}

	ts := doc.TileSize
	m := &Map{
		ID:       doc.ID,
		Name:     doc.Name,
		TileSize: ts,
		Cols:     cols,
		Rows:     rows,
		Spawn:    core.NewRect(doc.Spawn.Col*ts, doc.Spawn.Row*ts, ts, ts),
		Tiles:    make([][]Tile, rows),
		Names:    make(map[int]string, len(doc.Objects)),
	}
	for _, o := range doc.Objects {
		m.Names[o.Code] = o.Name
	}

	for r := 0; r < rows; r++ {
		m.Tiles[r] = make([]Tile, cols)
		for c := 0; c < cols; c++ {
			cell := core.NewRect(c*ts, r*ts, ts, ts)

			switch {
			case boundary[r][c] != Empty:
				m.Tiles[r][c] = TileWall
				m.Walls = append(m.Walls, cell)
			case at(grids[LayerDetails], r, c) != Empty:
				m.Tiles[r][c] = TileDetail
			case at(grids[LayerFloor], r, c) != Empty:
				m.Tiles[r][c] = TileFloor
			}

			if code := at(grids[LayerObject], r, c); code != Empty {
				m.Objects = append(m.Objects, Placement{
					Code: code,
					Name: m.Names[code],
					Rect: cell,
				})
			}
		}
	}

	return m, nil
}

// at reads a grid cell, treating a missing layer as empty.
func at(g [][]int, r, c int) int {
	if g == nil {
		return Empty
	}
	return g[r][c]
}
