package obj

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// Enemy is the shared part of every hostile entity: a looping animation and
// a death delay. Once destroyed it freezes as a silhouette until the delay
// runs out and it removes itself.
type Enemy struct {
	Sprite

	kind  Kind
	anim  *component.Animation
	death *component.Timer
	dying bool
}

func newEnemy(id ecs.Entity, kind Kind, frames []*component.Frame, pos cp.Vector, tuning prefabs.EnemyTuning) Enemy {
	e := Enemy{
		kind:  kind,
		anim:  component.NewAnimation(frames, tuning.AnimationSpeed),
		death: component.NewTimer(tuning.DeathDelay.Duration(), false, nil),
	}
	e.Sprite = *NewSprite(id, pos, e.anim.Current())
	return e
}

func (e *Enemy) Kind() Kind { return e.kind }

// Base returns the shared enemy state of a variant.
func (e *Enemy) Base() *Enemy { return e }

// Dying reports whether the enemy has been destroyed.
func (e *Enemy) Dying() bool { return e.dying }

// Destroy starts the death sequence. It reports false if the enemy was
// already dying, in which case nothing changes.
func (e *Enemy) Destroy(now time.Duration) bool {
	if e.dying {
		return false
	}
	e.dying = true
	e.death.Arm(now)
	e.anim.Speed = 0
	e.SetFrame(e.frame.Silhouette())
	return true
}

// step runs the shared per-frame logic around the variant's motion rules.
func (e *Enemy) step(ctx *Context, move, constrain func(ctx *Context)) {
	if e.death.Tick(ctx.Now) {
		ctx.kill(e.id)
		return
	}
	if e.dying {
		return
	}
	move(ctx)
	e.anim.Advance(ctx.Dt)
	if f := e.anim.Current(); f != nil {
		e.SetFrame(f)
	}
	constrain(ctx)
}
