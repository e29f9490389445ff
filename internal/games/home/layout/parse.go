package layout

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Layer names understood by the loader.
const (
	LayerBoundary = "boundary"
	LayerFloor    = "floor"
	LayerObject   = "object"
	LayerDetails  = "details"
)

// document is the YAML structure of a map file.
type document struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	TileSize int               `yaml:"tile_size"`
	Spawn    spawnPoint        `yaml:"spawn"`
	Objects  []objectName      `yaml:"objects"`
	Layers   map[string]string `yaml:"layers"`
}

type spawnPoint struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type objectName struct {
	Code int    `yaml:"code"`
	Name string `yaml:"name"`
}

// Parse decodes and validates a map file.
func Parse(data []byte) (*Map, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("layout: decode: %w", err)
	}

	grids := make(map[string][][]int, len(doc.Layers))
	for name, text := range doc.Layers {
		g, err := parseGrid(text)
		if err != nil {
			return nil, fmt.Errorf("layout: layer %s: %w", name, err)
		}
		grids[name] = g
	}

	m, err := build(doc, grids)
	if err != nil {
		return nil, fmt.Errorf("layout: %s: %w", doc.ID, err)
	}
	return m, nil
}

// parseGrid reads a comma-separated grid of integer codes.
func parseGrid(text string) ([][]int, error) {
	r := csv.NewReader(strings.NewReader(strings.TrimSpace(text)))
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no rows")
	}

	grid := make([][]int, len(records))
	for y, rec := range records {
		grid[y] = make([]int, len(rec))
		for x, field := range rec {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			if v < Empty {
				return nil, fmt.Errorf("row %d col %d: code %d below -1", y+1, x+1, v)
			}
			grid[y][x] = v
		}
	}
	return grid, nil
}

// validateDocument checks the decoded YAML against the map schema.
// The value is round-tripped through JSON so the validator sees JSON types.
func validateDocument(raw any) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("layout: map file is not a plain document: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if err := mapSchema().Validate(v); err != nil {
		return fmt.Errorf("layout: schema: %w", err)
	}
	return nil
}
