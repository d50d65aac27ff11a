package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
)

// Sprite is a positioned frame. On its own it is static scenery; the other
// entity kinds embed it for their rectangle, frame and mask.
type Sprite struct {
	Rect common.Rect

	id    ecs.Entity
	frame *component.Frame
}

// NewSprite places frame with its top-left corner at pos.
func NewSprite(id ecs.Entity, pos cp.Vector, frame *component.Frame) *Sprite {
	s := &Sprite{id: id, Rect: common.Rect{X: pos.X, Y: pos.Y}}
	s.SetFrame(frame)
	return s
}

func (s *Sprite) ID() ecs.Entity          { return s.id }
func (s *Sprite) Kind() Kind              { return KindSprite }
func (s *Sprite) Bounds() common.Rect     { return s.Rect }
func (s *Sprite) Frame() *component.Frame { return s.frame }

// Mask returns the opacity mask of the current frame.
func (s *Sprite) Mask() *component.Mask {
	return s.frame.Mask()
}

// SetFrame swaps the visual frame and resizes the rectangle to match,
// keeping the top-left corner fixed.
func (s *Sprite) SetFrame(f *component.Frame) {
	s.frame = f
	w, h := f.Size()
	s.Rect.Width = float64(w)
	s.Rect.Height = float64(h)
}

// CollisionTile is invisible solid geometry covering the opaque part of a
// tile image.
type CollisionTile struct {
	id   ecs.Entity
	rect common.Rect
}

// NewCollisionTile derives the solid rectangle from the opaque-pixel bounds
// of frame placed at pos. It returns nil for a fully transparent tile.
func NewCollisionTile(id ecs.Entity, pos cp.Vector, frame *component.Frame) *CollisionTile {
	bounds := frame.Mask().BoundingRect()
	if bounds.Empty() {
		return nil
	}
	return &CollisionTile{
		id: id,
		rect: common.Rect{
			X:      pos.X + float64(bounds.Min.X),
			Y:      pos.Y + float64(bounds.Min.Y),
			Width:  float64(bounds.Dx()),
			Height: float64(bounds.Dy()),
		},
	}
}

func (t *CollisionTile) ID() ecs.Entity      { return t.id }
func (t *CollisionTile) Kind() Kind          { return KindCollisionTile }
func (t *CollisionTile) Bounds() common.Rect { return t.rect }

// Goal is the zone that wins the level on contact.
type Goal struct {
	id   ecs.Entity
	rect common.Rect
}

func NewGoal(id ecs.Entity, rect common.Rect) *Goal {
	return &Goal{id: id, rect: rect}
}

func (g *Goal) ID() ecs.Entity      { return g.id }
func (g *Goal) Kind() Kind          { return KindGoal }
func (g *Goal) Bounds() common.Rect { return g.rect }
