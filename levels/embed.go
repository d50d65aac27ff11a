package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultLevel is the level loaded when none is requested.
const DefaultLevel = "jungle.json"

// ErrNoPlayerSpawn is returned when a level has no Player object.
var ErrNoPlayerSpawn = errors.New("levels: no player spawn")

// Level is a tile map stored as JSON. Each layer is a list of rows, one rune
// per tile; '.' and ' ' are empty cells.
type Level struct {
	Name     string              `json:"name"`
	TileSize int                 `json:"tile_size"`
	Tileset  map[string]TileInfo `json:"tileset"`
	Layers   Layers              `json:"layers"`
	Objects  []Object            `json:"objects,omitempty"`
}

type Layers struct {
	Background []string `json:"background,omitempty"`
	Main       []string `json:"main"`
	Decoration []string `json:"decoration,omitempty"`
}

// TileInfo describes one tileset entry. Top is the number of transparent
// rows at the top of the tile, used for ledges that are thinner than a
// full cell.
type TileInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Top   int    `json:"top,omitempty"`
}

// Object is a named placement in unscaled level pixels.
type Object struct {
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Load reads a level from the embedded levels first, then from disk.
func Load(name string) (*Level, error) {
	if name == "" {
		return nil, fmt.Errorf("levels: level path is empty")
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		data, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: read %s: %w", name, err)
		}
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", name, err)
	}
	return lvl, nil
}

// Parse decodes and validates level JSON.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks that every tile rune is known to the tileset.
func (l *Level) Validate() error {
	if l.TileSize <= 0 {
		return fmt.Errorf("tile_size must be positive, got %d", l.TileSize)
	}
	if len(l.Layers.Main) == 0 {
		return fmt.Errorf("main layer is empty")
	}
	for key, info := range l.Tileset {
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("tileset key %q must be a single character", key)
		}
		if info.Top < 0 || info.Top >= l.TileSize {
			return fmt.Errorf("tile %q: top %d out of range", info.Name, info.Top)
		}
	}
	for name, rows := range l.layerRows() {
		for y, row := range rows {
			for _, r := range row {
				if isEmpty(r) {
					continue
				}
				if _, ok := l.Tileset[string(r)]; !ok {
					return fmt.Errorf("layer %s row %d: unknown tile %q", name, y, r)
				}
			}
		}
	}
	return nil
}

// Columns returns the width of the widest row across all layers.
func (l *Level) Columns() int {
	n := 0
	for _, rows := range l.layerRows() {
		for _, row := range rows {
			n = max(n, utf8.RuneCountInString(row))
		}
	}
	return n
}

// Rows returns the height of the tallest layer.
func (l *Level) Rows() int {
	n := 0
	for _, rows := range l.layerRows() {
		n = max(n, len(rows))
	}
	return n
}

func (l *Level) layerRows() map[string][]string {
	return map[string][]string{
		"background": l.Layers.Background,
		"main":       l.Layers.Main,
		"decoration": l.Layers.Decoration,
	}
}

func isEmpty(r rune) bool {
	return r == '.' || r == ' '
}
