package obj

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// Fire is the muzzle flash. It sticks to the player's leading side and
// disappears after a short lifetime or as soon as the player turns around.
type Fire struct {
	Sprite

	player *Player
	flip   bool
	offset cp.Vector
	timer  *component.Timer
}

// NewFire creates a flash for player, starting its lifetime at now.
func NewFire(id ecs.Entity, pos cp.Vector, frame *component.Frame, player *Player, tuning prefabs.FireTuning, now time.Duration) *Fire {
	f := &Fire{
		player: player,
		flip:   player.Flipped(),
		offset: cp.Vector{X: 0, Y: tuning.OffsetY},
		timer:  component.NewTimer(tuning.Lifetime.Duration(), false, nil),
	}
	if f.flip {
		frame = frame.Flipped()
	}
	f.Sprite = *NewSprite(id, pos, frame)
	f.timer.Arm(now)
	f.anchor()
	return f
}

func (f *Fire) Kind() Kind { return KindFire }

func (f *Fire) Update(ctx *Context) {
	if f.timer.Tick(ctx.Now) {
		ctx.kill(f.id)
	}
	f.anchor()
	if f.flip != f.player.Flipped() {
		ctx.kill(f.id)
	}
}

func (f *Fire) anchor() {
	if f.player.Flipped() {
		f.Rect.SetMidRight(f.player.Rect.MidLeft().Add(f.offset))
	} else {
		f.Rect.SetMidLeft(f.player.Rect.MidRight().Add(f.offset))
	}
}
