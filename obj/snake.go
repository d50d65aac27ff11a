package obj

import (
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
	"github.com/milk9111/jungle/prefabs"
)

// RandomSnakeSpeed draws a whole-number speed from the tuning range.
func RandomSnakeSpeed(rng *rand.Rand, t prefabs.SnakeTuning) float64 {
	return float64(t.SpeedMin + rng.Intn(t.SpeedMax-t.SpeedMin+1))
}

// Snake walks back and forth inside its patrol rectangle.
type Snake struct {
	Enemy

	Patrol    common.Rect
	Speed     float64
	Direction float64
}

// NewSnake stands a snake on the bottom-left corner of patrol, heading right.
func NewSnake(id ecs.Entity, patrol common.Rect, frames []*component.Frame, tuning prefabs.EnemyTuning, speed float64) *Snake {
	s := &Snake{
		Enemy:     newEnemy(id, KindSnake, frames, cp.Vector{X: patrol.X, Y: patrol.Y}, tuning),
		Patrol:    patrol,
		Speed:     speed,
		Direction: 1,
	}
	s.Rect.X = patrol.X
	s.Rect.SetBottom(patrol.Bottom())
	return s
}

func (s *Snake) Update(ctx *Context) {
	s.step(ctx, s.move, s.constrain)
}

func (s *Snake) move(ctx *Context) {
	s.Rect.X += s.Direction * s.Speed * ctx.Dt
}

// constrain turns the snake around whenever it is not fully inside its
// patrol rectangle, mirroring its frames at the same moment.
func (s *Snake) constrain(*Context) {
	if s.Patrol.Contains(s.Rect) {
		return
	}
	s.Direction *= -1
	s.anim.Frames = component.FlipAll(s.anim.Frames)
	if f := s.anim.Current(); f != nil {
		s.SetFrame(f)
	}
}
