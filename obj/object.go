package obj

import (
	"math"
	"time"

	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
)

// Kind tags the concrete type behind an Object.
type Kind int

const (
	KindSprite Kind = iota
	KindCollisionTile
	KindGoal
	KindPlayer
	KindBullet
	KindBee
	KindSnake
	KindFire
)

func (k Kind) String() string {
	switch k {
	case KindSprite:
		return "sprite"
	case KindCollisionTile:
		return "collision_tile"
	case KindGoal:
		return "goal"
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindBee:
		return "bee"
	case KindSnake:
		return "snake"
	case KindFire:
		return "fire"
	}
	return "unknown"
}

// Object is anything stored in the simulation arena.
type Object interface {
	ID() ecs.Entity
	Kind() Kind
	Bounds() common.Rect
}

// Drawable objects expose the frame the renderer should blit at Bounds.
type Drawable interface {
	Object
	Frame() *component.Frame
}

// Updatable objects advance once per simulation step.
type Updatable interface {
	Object
	Update(ctx *Context)
}

// Hostile is implemented by every enemy variant.
type Hostile interface {
	Updatable
	Base() *Enemy
}

// Collidable objects take part in mask-accurate overlap tests.
type Collidable interface {
	Bounds() common.Rect
	Mask() *component.Mask
}

// Context is handed to every Update call. It carries the simulation clock
// and the only way an entity may remove itself.
type Context struct {
	// Now is the simulation clock, used to arm and tick timers.
	Now time.Duration
	// Dt is the frame delta in seconds.
	Dt float64
	// Kill removes an entity from every group. Repeated calls are harmless.
	Kill func(ecs.Entity)
}

// Elapsed returns the simulation clock in seconds.
func (c *Context) Elapsed() float64 {
	return c.Now.Seconds()
}

func (c *Context) kill(e ecs.Entity) {
	if c != nil && c.Kill != nil {
		c.Kill(e)
	}
}

// Collide reports a pixel-accurate hit between a and b: their rectangles
// must intersect and at least one opaque pixel must coincide.
func Collide(a, b Collidable) bool {
	ra, rb := a.Bounds(), b.Bounds()
	if !ra.Intersects(rb) {
		return false
	}
	ma, mb := a.Mask(), b.Mask()
	if ma == nil || mb == nil {
		return false
	}
	dx := int(math.Floor(rb.X)) - int(math.Floor(ra.X))
	dy := int(math.Floor(rb.Y)) - int(math.Floor(ra.Y))
	return ma.Overlap(mb, dx, dy)
}
