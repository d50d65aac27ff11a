package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
)

// Camera follows a world position. When the world is larger than the view
// the camera is clamped so nothing beyond the world edge is shown; when it
// is smaller the world is centred.
type Camera struct {
	PosX float64
	PosY float64

	screenW int
	screenH int

	// smoothing factor (0..1). higher -> faster follow. 0 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size.
func NewCamera(screenW, screenH int) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH}
	c.PosX = float64(screenW) / 2.0
	c.PosY = float64(screenH) / 2.0
	return c
}

// SetWorldBounds sets the world pixel dimensions for clamping camera position.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// Update moves the camera toward the target world coordinate.
func (c *Camera) Update(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX = targetX
		c.PosY = targetY
	} else {
		c.PosX = common.Lerp(c.PosX, targetX, c.smooth)
		c.PosY = common.Lerp(c.PosY, targetY, c.smooth)
	}
	c.clamp()
}

// SnapTo immediately centres the camera on (x, y), then clamps.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX = x
	c.PosY = y
	c.clamp()
}

func (c *Camera) clamp() {
	c.PosX = clampAxis(c.PosX, float64(c.screenW), c.worldW)
	c.PosY = clampAxis(c.PosY, float64(c.screenH), c.worldH)
}

// clampAxis keeps the view inside the world. A world no larger than the
// view is centred on whole pixels.
func clampAxis(pos, view, world float64) float64 {
	if world <= 0 {
		return pos
	}
	half := view / 2.0
	if world <= view {
		return half - math.Floor((view-world)/2)
	}
	return common.Clamp(pos, half, world-half)
}

// Offset returns the translation from world to screen coordinates.
func (c *Camera) Offset() cp.Vector {
	return cp.Vector{
		X: float64(c.screenW)/2.0 - c.PosX,
		Y: float64(c.screenH)/2.0 - c.PosY,
	}
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	off := c.Offset()
	return -off.X, -off.Y
}

// Visible reports whether r overlaps the current view.
func (c *Camera) Visible(r common.Rect) bool {
	x, y := c.ViewTopLeft()
	return r.Intersects(common.Rect{X: x, Y: y, Width: float64(c.screenW), Height: float64(c.screenH)})
}
