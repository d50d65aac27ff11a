package obj

import "github.com/milk9111/jungle/common"

// CollisionWorld holds the static solid rectangles of a level and resolves
// movement against them one axis at a time. It is a linear scan; levels are
// small enough that no broad phase is needed.
type CollisionWorld struct {
	solids []common.Rect
}

func NewCollisionWorld() *CollisionWorld {
	return &CollisionWorld{}
}

// Add registers a solid rectangle.
func (cw *CollisionWorld) Add(r common.Rect) {
	if cw == nil || r.Width <= 0 || r.Height <= 0 {
		return
	}
	cw.solids = append(cw.solids, r)
}

// Solids returns the registered rectangles.
func (cw *CollisionWorld) Solids() []common.Rect {
	if cw == nil {
		return nil
	}
	return cw.solids
}

func (cw *CollisionWorld) Clear() {
	if cw == nil {
		return
	}
	cw.solids = cw.solids[:0]
}

// Overlaps reports whether r intersects any solid.
func (cw *CollisionWorld) Overlaps(r common.Rect) bool {
	if cw == nil {
		return false
	}
	for _, s := range cw.solids {
		if s.Intersects(r) {
			return true
		}
	}
	return false
}

// ResolveX pushes r out of every solid it intersects, using the sign of dx
// to decide which edge to clamp. A zero dx leaves r untouched.
func (cw *CollisionWorld) ResolveX(r *common.Rect, dx float64) {
	if cw == nil || r == nil {
		return
	}
	for _, s := range cw.solids {
		if !s.Intersects(*r) {
			continue
		}
		switch {
		case dx > 0:
			r.SetRight(s.Left())
		case dx < 0:
			r.X = s.Right()
		}
	}
}

// ResolveY pushes r out of every solid it intersects vertically and zeroes
// *vy on any contact. It reports whether a contact happened.
func (cw *CollisionWorld) ResolveY(r *common.Rect, vy *float64) bool {
	if cw == nil || r == nil || vy == nil {
		return false
	}
	hit := false
	for _, s := range cw.solids {
		if !s.Intersects(*r) {
			continue
		}
		switch {
		case *vy > 0:
			r.SetBottom(s.Top())
		case *vy < 0:
			r.Y = s.Bottom()
		}
		*vy = 0
		hit = true
	}
	return hit
}

// IsGrounded probes a strip of the given height directly under r.
func (cw *CollisionWorld) IsGrounded(r common.Rect, probe float64) bool {
	feet := common.Rect{Width: r.Width, Height: probe}
	feet.SetMidTop(r.MidBottom())
	return cw.Overlaps(feet)
}
