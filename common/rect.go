package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Right() float64   { return r.X + r.Width }
func (r Rect) Bottom() float64  { return r.Y + r.Height }
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Center returns the rectangle midpoint.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.CenterX(), Y: r.CenterY()}
}

// MidBottom returns the midpoint of the bottom edge.
func (r Rect) MidBottom() cp.Vector {
	return cp.Vector{X: r.CenterX(), Y: r.Bottom()}
}

// MidLeft returns the midpoint of the left edge.
func (r Rect) MidLeft() cp.Vector {
	return cp.Vector{X: r.X, Y: r.CenterY()}
}

// MidRight returns the midpoint of the right edge.
func (r Rect) MidRight() cp.Vector {
	return cp.Vector{X: r.Right(), Y: r.CenterY()}
}

func (r *Rect) SetRight(v float64)  { r.X = v - r.Width }
func (r *Rect) SetBottom(v float64) { r.Y = v - r.Height }

// SetMidLeft moves the rectangle so its left edge midpoint sits at p.
func (r *Rect) SetMidLeft(p cp.Vector) {
	r.X = p.X
	r.Y = p.Y - r.Height/2
}

// SetMidRight moves the rectangle so its right edge midpoint sits at p.
func (r *Rect) SetMidRight(p cp.Vector) {
	r.X = p.X - r.Width
	r.Y = p.Y - r.Height/2
}

// SetMidTop moves the rectangle so its top edge midpoint sits at p.
func (r *Rect) SetMidTop(p cp.Vector) {
	r.X = p.X - r.Width/2
	r.Y = p.Y
}

// Intersects reports whether the interiors overlap. Rectangles that only
// share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Contains reports whether other lies entirely inside r, edges included.
func (r Rect) Contains(other Rect) bool {
	return r.BB().Contains(other.BB())
}

// BB converts the rectangle to a chipmunk bounding box.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.X, B: r.Y, R: r.Right(), T: r.Bottom()}
}

// RectFromBB converts a chipmunk bounding box back to a Rect.
func RectFromBB(bb cp.BB) Rect {
	return Rect{X: bb.L, Y: bb.B, Width: bb.R - bb.L, Height: bb.T - bb.B}
}

// Offset returns a copy translated by v.
func (r Rect) Offset(v cp.Vector) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}
