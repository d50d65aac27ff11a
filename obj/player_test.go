package obj

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/prefabs"
)

const testDt = 0.02

type shot struct {
	pos cp.Vector
	dir float64
}

type playerRig struct {
	player *Player
	input  *Input
	world  *CollisionWorld
	frames PlayerFrames
	shots  []shot
	kills  killLog
	frame  int
}

func newPlayerRig(t *testing.T, pos cp.Vector, solids ...common.Rect) *playerRig {
	t.Helper()
	return newPlayerRigWithFrames(t, pos, PlayerFrames{
		Idle: solidFrames(2, 10, 20),
		Run:  solidFrames(4, 10, 20),
		Jump: solidFrames(3, 10, 20),
	}, solids...)
}

func newPlayerRigWithFrames(t *testing.T, pos cp.Vector, frames PlayerFrames, solids ...common.Rect) *playerRig {
	t.Helper()
	r := &playerRig{
		input:  &Input{},
		world:  NewCollisionWorld(),
		frames: frames,
	}
	for _, s := range solids {
		r.world.Add(s)
	}
	id := ids(1)[0]
	r.player = NewPlayer(id, pos, r.frames, prefabs.DefaultTuning().Player, r.input, r.world, func(p cp.Vector, dir float64) {
		r.shots = append(r.shots, shot{p, dir})
	})
	return r
}

func (r *playerRig) step(n int) {
	for i := 0; i < n; i++ {
		r.frame++
		r.player.Update(r.kills.ctx(time.Duration(r.frame)*20*time.Millisecond, testDt))
	}
}

func contains(frames []*component.Frame, f *component.Frame) bool {
	for _, c := range frames {
		if c == f {
			return true
		}
	}
	return false
}

var ground = common.Rect{X: -100, Y: 100, Width: 400, Height: 50}

func TestPlayerFallsAndLands(t *testing.T) {
	r := newPlayerRig(t, cp.Vector{X: 0, Y: 0}, ground)
	r.step(1)
	if r.player.Velocity.Y <= 0 {
		t.Fatalf("gravity did not pull the player down: vy=%v", r.player.Velocity.Y)
	}
	r.step(120)
	p := r.player
	if p.Rect.Bottom() != 100 {
		t.Fatalf("bottom = %v, want 100", p.Rect.Bottom())
	}
	if p.Velocity.Y != 0 {
		t.Fatalf("vertical velocity = %v after landing", p.Velocity.Y)
	}
	if !p.OnFloor {
		t.Fatalf("player not on ground after landing")
	}
	if p.State() != "idle" {
		t.Fatalf("state = %q, want idle", p.State())
	}
}

func TestPlayerFramesKeepFeetOnGround(t *testing.T) {
	// A short jump frame is still showing on the landing step; swapping
	// back to the tall idle frame must grow the player upwards.
	r := newPlayerRigWithFrames(t, cp.Vector{X: 0, Y: 0}, PlayerFrames{
		Idle: solidFrames(2, 10, 20),
		Run:  solidFrames(4, 10, 20),
		Jump: solidFrames(3, 10, 12),
	}, ground)

	landed := false
	for i := 0; i < 120; i++ {
		r.step(1)
		p := r.player
		if !landed && p.Rect.Bottom() == 100 {
			landed = true
		}
		if !landed {
			continue
		}
		if p.Rect.Bottom() != 100 {
			t.Fatalf("step %d: bottom = %v, want 100 (height %v)", i, p.Rect.Bottom(), p.Rect.Height)
		}
		if p.Rect.X != 0 {
			t.Fatalf("step %d: x drifted to %v", i, p.Rect.X)
		}
	}
	if !landed {
		t.Fatal("player never landed")
	}
	if r.player.State() != "idle" || r.player.Rect.Height != 20 {
		t.Fatalf("state = %q height = %v, want idle at 20", r.player.State(), r.player.Rect.Height)
	}
}

func TestPlayerJumpOnlyFromFloor(t *testing.T) {
	cases := []struct {
		name     string
		start    cp.Vector
		wantJump bool
	}{
		{"standing", cp.Vector{X: 0, Y: 80}, true},
		{"airborne", cp.Vector{X: 0, Y: 0}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newPlayerRig(t, c.start, ground)
			r.input.Jump = true
			r.step(1)
			jumped := r.player.Velocity.Y < 0
			if jumped != c.wantJump {
				t.Fatalf("jumped = %v, want %v (vy=%v)", jumped, c.wantJump, r.player.Velocity.Y)
			}
		})
	}
}

func TestPlayerJumpStateHoldsLastFrame(t *testing.T) {
	r := newPlayerRig(t, cp.Vector{X: 0, Y: 80}, ground)
	r.input.Jump = true
	r.step(1)
	r.input.Jump = false
	if r.player.Rect.Y >= 80 {
		t.Fatalf("player did not rise, y=%v", r.player.Rect.Y)
	}
	r.step(1)
	if r.player.State() != "jump" {
		t.Fatalf("state = %q, want jump", r.player.State())
	}
	r.step(15)
	if r.player.OnFloor {
		t.Fatalf("player landed too early")
	}
	if got := r.player.Frame(); got != r.frames.Jump[2] {
		t.Fatalf("jump animation did not hold on its last frame")
	}
}

func TestPlayerBlockedByWall(t *testing.T) {
	wall := common.Rect{X: 30, Y: 0, Width: 10, Height: 100}
	r := newPlayerRig(t, cp.Vector{X: 15, Y: 80}, ground, wall)
	r.input.MoveX = 1
	r.step(30)
	if got := r.player.Rect.Right(); got != 30 {
		t.Fatalf("right edge = %v, want 30", got)
	}
	if r.player.Rect.Bottom() != 100 {
		t.Fatalf("wall contact disturbed vertical position: bottom=%v", r.player.Rect.Bottom())
	}
	if r.player.State() != "run" {
		t.Fatalf("state = %q, want run", r.player.State())
	}
}

func TestPlayerFacingIsSticky(t *testing.T) {
	r := newPlayerRig(t, cp.Vector{X: 0, Y: 80}, ground)
	r.input.MoveX = -1
	r.step(1)
	if !r.player.Flipped() || r.player.Direction() != -1 {
		t.Fatalf("moving left should face left")
	}
	r.input.MoveX = 0
	r.step(5)
	if !r.player.Flipped() {
		t.Fatalf("releasing the keys turned the player around")
	}
	if !contains(r.frames.Idle, r.player.Frame().Flipped()) {
		t.Fatalf("idle frame is not mirrored while facing left")
	}
	r.input.MoveX = 1
	r.step(1)
	if r.player.Flipped() {
		t.Fatalf("moving right should face right")
	}
}

func TestPlayerShootCooldown(t *testing.T) {
	r := newPlayerRig(t, cp.Vector{X: 0, Y: 80}, ground)
	r.input.Shoot = true
	r.step(1)
	if len(r.shots) != 1 {
		t.Fatalf("shots = %d after first frame, want 1", len(r.shots))
	}
	if r.shots[0].dir != 1 {
		t.Fatalf("shot direction = %v, want 1", r.shots[0].dir)
	}
	if r.player.ShootReady() {
		t.Fatalf("cooldown not armed after shooting")
	}
	// Frames 2..50 cover t=40ms..1000ms; the cooldown expires once, at 520ms.
	r.step(49)
	if len(r.shots) != 2 {
		t.Fatalf("shots = %d over one second, want 2", len(r.shots))
	}
	r.step(1)
	if len(r.shots) != 3 {
		t.Fatalf("shots = %d at 1020ms, want 3", len(r.shots))
	}
}

func TestPlayerShootUsesPreviousFacing(t *testing.T) {
	r := newPlayerRig(t, cp.Vector{X: 0, Y: 80}, ground)
	r.input.MoveX = -1
	r.input.Shoot = true
	r.step(1)
	if len(r.shots) != 1 || r.shots[0].dir != 1 {
		t.Fatalf("shot on turning frame should use the old facing, got %+v", r.shots)
	}
}
