package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// EnemySource walks the enemies a bullet may hit, in group order, until fn
// returns false.
type EnemySource interface {
	EachEnemy(fn func(e *Enemy) bool)
}

// HitFunc receives a bullet and the enemies it struck.
type HitFunc func(b *Bullet, hits []*Enemy)

// Bullet travels horizontally at a fixed speed and reports the first enemy
// it touches.
type Bullet struct {
	Sprite

	Direction float64
	Speed     float64

	maxStep float64
	targets EnemySource
	onHit   HitFunc
	limited bool
	minX    float64
	maxX    float64
}

// NewBullet places a bullet with its top-left corner at pos. A direction of
// -1 mirrors the frame.
func NewBullet(id ecs.Entity, pos cp.Vector, dir float64, frame *component.Frame, tuning prefabs.BulletTuning, targets EnemySource, onHit HitFunc) *Bullet {
	if dir < 0 {
		frame = frame.Flipped()
	}
	b := &Bullet{
		Direction: dir,
		Speed:     tuning.Speed,
		maxStep:   tuning.MaxStep,
		targets:   targets,
		onHit:     onHit,
	}
	b.Sprite = *NewSprite(id, pos, frame)
	if b.maxStep <= 0 {
		b.maxStep = 4
	}
	return b
}

func (b *Bullet) Kind() Kind { return KindBullet }

// SetLimits removes the bullet once it lies entirely outside [minX, maxX].
func (b *Bullet) SetLimits(minX, maxX float64) {
	b.limited = true
	b.minX = minX
	b.maxX = maxX
}

// Steps returns how many sub-steps cover a displacement of dx.
func (b *Bullet) Steps(dx float64) int {
	return max(1, int(math.Abs(dx)/b.maxStep)+1)
}

// Update advances the bullet in sub-steps no longer than the configured
// maximum, testing for hits after each so fast bullets cannot skip over a
// thin enemy. The first hit ends the bullet's movement for the frame.
func (b *Bullet) Update(ctx *Context) {
	dx := b.Direction * b.Speed * ctx.Dt
	steps := b.Steps(dx)
	step := dx / float64(steps)

	for i := 0; i < steps; i++ {
		b.Rect.X += step
		if hit := b.firstHit(); hit != nil {
			if b.onHit != nil {
				b.onHit(b, []*Enemy{hit})
			}
			return
		}
	}

	if b.limited && (b.Rect.Right() < b.minX || b.Rect.X > b.maxX) {
		ctx.kill(b.id)
	}
}

func (b *Bullet) firstHit() *Enemy {
	if b.targets == nil {
		return nil
	}
	var hit *Enemy
	b.targets.EachEnemy(func(e *Enemy) bool {
		if Collide(b, e) {
			hit = e
			return false
		}
		return true
	})
	return hit
}
