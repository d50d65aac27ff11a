package levels

import (
	"fmt"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
)

// TileSource supplies the frame for a tileset entry at the given pixel size.
type TileSource interface {
	Tile(info TileInfo, size int) *component.Frame
}

// Placement is a tile frame positioned in world pixels.
type Placement struct {
	Pos   cp.Vector
	Frame *component.Frame
}

// Map is a level scaled into world pixels and ready to populate a world.
type Map struct {
	Width  float64
	Height float64

	Background []Placement
	Main       []Placement
	Decoration []Placement

	PlayerSpawn cp.Vector
	Snakes      []common.Rect
	Goals       []common.Rect
}

// Build scales l by scale and resolves each tile through tiles. Frames are
// shared between cells using the same tileset entry.
func Build(l *Level, tiles TileSource, scale int) (*Map, error) {
	if l == nil {
		return nil, fmt.Errorf("levels: nil level")
	}
	if scale <= 0 {
		return nil, fmt.Errorf("levels: scale must be positive, got %d", scale)
	}
	cell := l.TileSize * scale
	m := &Map{
		Width:  float64(l.Columns() * cell),
		Height: float64(l.Rows() * cell),
	}

	cache := make(map[rune]*component.Frame)
	place := func(rows []string) []Placement {
		var out []Placement
		for y, row := range rows {
			x := 0
			for _, r := range row {
				if !isEmpty(r) {
					f, ok := cache[r]
					if !ok {
						f = tiles.Tile(l.Tileset[string(r)], cell)
						cache[r] = f
					}
					if f != nil {
						out = append(out, Placement{
							Pos:   cp.Vector{X: float64(x * cell), Y: float64(y * cell)},
							Frame: f,
						})
					}
				}
				x++
			}
		}
		return out
	}
	m.Background = place(l.Layers.Background)
	m.Main = place(l.Layers.Main)
	m.Decoration = place(l.Layers.Decoration)

	s := float64(scale)
	spawn := false
	for _, o := range l.Objects {
		rect := common.Rect{X: o.X * s, Y: o.Y * s, Width: o.Width * s, Height: o.Height * s}
		switch strings.ToLower(o.Name) {
		case "player":
			if !spawn {
				m.PlayerSpawn = cp.Vector{X: rect.X, Y: rect.Y}
				spawn = true
			}
		case "snake":
			m.Snakes = append(m.Snakes, rect)
		case "goal":
			m.Goals = append(m.Goals, rect)
		}
	}
	if !spawn {
		return nil, ErrNoPlayerSpawn
	}
	return m, nil
}
