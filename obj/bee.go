package obj

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// BeeMotion holds the per-bee flight parameters.
type BeeMotion struct {
	Speed     float64
	Amplitude float64
	Period    float64
	Phase     float64
}

// RandomBeeMotion draws flight parameters uniformly from the tuning ranges.
// Speed is a whole number in [SpeedMin, SpeedMax].
func RandomBeeMotion(rng *rand.Rand, t prefabs.BeeTuning) BeeMotion {
	return BeeMotion{
		Speed:     float64(t.SpeedMin + rng.Intn(t.SpeedMax-t.SpeedMin+1)),
		Amplitude: t.AmplitudeMin + rng.Float64()*(t.AmplitudeMax-t.AmplitudeMin),
		Period:    t.PeriodMin + rng.Float64()*(t.PeriodMax-t.PeriodMin),
		Phase:     rng.Float64() * 2 * math.Pi,
	}
}

// Bee flies left at constant speed while bobbing on a sine wave driven by
// the shared simulation clock.
type Bee struct {
	Enemy
	BeeMotion

	BaseY float64
}

func NewBee(id ecs.Entity, pos cp.Vector, frames []*component.Frame, tuning prefabs.EnemyTuning, motion BeeMotion) *Bee {
	b := &Bee{
		Enemy:     newEnemy(id, KindBee, frames, pos, tuning),
		BeeMotion: motion,
		BaseY:     pos.Y,
	}
	return b
}

// HeightAt returns the bee's Y at elapsed seconds t.
func (b *Bee) HeightAt(t float64) float64 {
	if b.Period == 0 {
		return b.BaseY
	}
	return b.BaseY + math.Sin(2*math.Pi*t/b.Period+b.Phase)*b.Amplitude
}

func (b *Bee) Update(ctx *Context) {
	b.step(ctx, b.move, b.constrain)
}

func (b *Bee) move(ctx *Context) {
	b.Rect.X -= b.Speed * ctx.Dt
	b.Rect.Y = b.HeightAt(ctx.Elapsed())
}

func (b *Bee) constrain(ctx *Context) {
	if b.Rect.Right() <= 0 {
		ctx.kill(b.id)
	}
}
