package layout

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed maps/*.yaml
var embeddedMaps embed.FS

// Loader handles loading maps from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new map loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all map files.
// Returns maps sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]*Map, error) {
	var maps []*Map

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMapFile(path) {
			return nil
		}

		m, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		maps = append(maps, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("layout: walking directory %s: %w", l.Root, err)
	}

	sortMaps(maps)
	return maps, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: reading file %s: %w", path, err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// LoadByID loads a specific map by ID.
func (l *Loader) LoadByID(id string) (*Map, error) {
	maps, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return findByID(maps, id)
}

// Embedded returns the maps bundled with the binary, sorted by ID.
func Embedded() ([]*Map, error) {
	entries, err := fs.ReadDir(embeddedMaps, "maps")
	if err != nil {
		return nil, fmt.Errorf("layout: reading embedded maps: %w", err)
	}

	var maps []*Map
	for _, e := range entries {
		if e.IsDir() || !isMapFile(e.Name()) {
			continue
		}
		data, err := embeddedMaps.ReadFile("maps/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("layout: reading embedded map %s: %w", e.Name(), err)
		}
		m, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("embedded %s: %w", e.Name(), err)
		}
		maps = append(maps, m)
	}

	sortMaps(maps)
	return maps, nil
}

// LoadEmbedded returns one bundled map by ID.
func LoadEmbedded(id string) (*Map, error) {
	maps, err := Embedded()
	if err != nil {
		return nil, err
	}
	return findByID(maps, id)
}

func findByID(maps []*Map, id string) (*Map, error) {
	for _, m := range maps {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("layout: map not found: %s", id)
}

func sortMaps(maps []*Map) {
	sort.Slice(maps, func(i, j int) bool {
		return maps[i].ID < maps[j].ID
	})
}

// isMapFile checks if the file extension is a supported map format.
func isMapFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
