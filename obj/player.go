package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// PlayerFrames holds the player's animation sequences per state.
type PlayerFrames struct {
	Idle []*component.Frame
	Run  []*component.Frame
	Jump []*component.Frame
}

// playerState is the interface each concrete animation state implements.
type playerState interface {
	Name() string
	Frames(f PlayerFrames) []*component.Frame
	Advance(a *component.Animation, dt float64)
}

type idleState struct{}

type runningState struct{}

type jumpingState struct{}

func (idleState) Name() string                                  { return "idle" }
func (idleState) Frames(f PlayerFrames) []*component.Frame      { return f.Idle }
func (idleState) Advance(a *component.Animation, dt float64)    { a.Advance(dt) }
func (runningState) Name() string                               { return "run" }
func (runningState) Frames(f PlayerFrames) []*component.Frame   { return f.Run }
func (runningState) Advance(a *component.Animation, dt float64) { a.Advance(dt) }
func (jumpingState) Name() string                               { return "jump" }
func (jumpingState) Frames(f PlayerFrames) []*component.Frame   { return f.Jump }

// Advance holds the jump pose on its last frame instead of cycling.
func (jumpingState) Advance(a *component.Animation, dt float64) { a.AdvanceClamped(dt) }

var (
	stateIdle    playerState = idleState{}
	stateRunning playerState = runningState{}
	stateJumping playerState = jumpingState{}
)

// ShootFunc spawns a projectile from pos travelling in dir (+1 or -1).
type ShootFunc func(pos cp.Vector, dir float64)

// Player is the controllable character.
type Player struct {
	Sprite

	// Velocity.X is the horizontal intent in [-1, 1]; Velocity.Y is a
	// position-scale vertical velocity added to Y every frame.
	Velocity cp.Vector
	OnFloor  bool

	tuning     prefabs.PlayerTuning
	input      *Input
	world      *CollisionWorld
	frames     PlayerFrames
	anim       *component.Animation
	state      playerState
	facing     float64
	flip       bool
	shootTimer *component.Timer
	shoot      ShootFunc
}

// NewPlayer creates the player at world pixel pos. input and world are
// read each frame; shoot is called when a shot is fired.
func NewPlayer(id ecs.Entity, pos cp.Vector, frames PlayerFrames, tuning prefabs.PlayerTuning, input *Input, world *CollisionWorld, shoot ShootFunc) *Player {
	p := &Player{
		tuning: tuning,
		input:  input,
		world:  world,
		frames: frames,
		state:  stateIdle,
		facing: 1,
		shoot:  shoot,
	}
	p.Sprite = Sprite{id: id, Rect: common.Rect{X: pos.X, Y: pos.Y}}
	p.anim = component.NewAnimation(frames.Idle, tuning.AnimationSpeed)
	p.shootTimer = component.NewTimer(tuning.ShootCooldown.Duration(), false, nil)
	p.SetFrame(p.anim.Current())
	return p
}

func (p *Player) Kind() Kind { return KindPlayer }

// State returns the current animation state name.
func (p *Player) State() string { return p.state.Name() }

// Flipped reports whether the player faces left.
func (p *Player) Flipped() bool { return p.flip }

// Direction returns -1 when facing left and 1 otherwise.
func (p *Player) Direction() float64 {
	if p.flip {
		return -1
	}
	return 1
}

// ShootReady reports whether the shot cooldown has elapsed.
func (p *Player) ShootReady() bool { return !p.shootTimer.Active() }

// SetTuning applies new motion constants. The cooldown currently running
// keeps its old duration.
func (p *Player) SetTuning(t prefabs.PlayerTuning) {
	p.tuning = t
	p.anim.Speed = t.AnimationSpeed
	p.shootTimer.Duration = t.ShootCooldown.Duration()
}

// Update runs one frame: cooldown, floor probe, input, motion, animation.
// The floor probe runs before input so jumping depends on where the previous
// frame left the player.
func (p *Player) Update(ctx *Context) {
	p.shootTimer.Tick(ctx.Now)
	p.checkFloor()
	p.handleInput(ctx)
	p.move(ctx.Dt)
	p.animate(ctx.Dt)
}

func (p *Player) checkFloor() {
	p.OnFloor = p.world.IsGrounded(p.Rect, p.tuning.FloorProbe)
}

func (p *Player) handleInput(ctx *Context) {
	var in Input
	if p.input != nil {
		in = *p.input
	}
	p.Velocity.X = in.MoveX
	if in.Jump && p.OnFloor {
		p.Velocity.Y = p.tuning.JumpImpulse
	}
	if in.Shoot && !p.shootTimer.Active() {
		if p.shoot != nil {
			p.shoot(p.Rect.Center(), p.Direction())
		}
		p.shootTimer.Arm(ctx.Now)
	}
}

func (p *Player) move(dt float64) {
	p.Rect.X += p.Velocity.X * p.tuning.Speed * dt
	p.world.ResolveX(&p.Rect, p.Velocity.X)

	p.Velocity.Y += p.tuning.Gravity * dt
	p.Rect.Y += p.Velocity.Y
	p.world.ResolveY(&p.Rect, &p.Velocity.Y)
}

func (p *Player) animate(dt float64) {
	switch {
	case !p.OnFloor:
		p.state = stateJumping
	case p.Velocity.X != 0:
		p.state = stateRunning
	default:
		p.state = stateIdle
	}

	if p.Velocity.X < 0 {
		p.facing = -1
	} else if p.Velocity.X > 0 {
		p.facing = 1
	}
	p.flip = p.facing == -1

	p.anim.Frames = p.state.Frames(p.frames)
	p.state.Advance(p.anim, dt)

	frame := p.anim.Current()
	if frame == nil {
		return
	}
	if p.flip {
		frame = frame.Flipped()
	}
	// Frames may differ in height; keep the feet where they are.
	bottom := p.Rect.Bottom()
	p.SetFrame(frame)
	p.Rect.SetBottom(bottom)
}
