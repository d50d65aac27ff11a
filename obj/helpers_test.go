package obj

import (
	"image"
	"image/color"
	"time"

	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/ecs"
)

func solidFrame(w, h int) *component.Frame {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 90, G: 160, B: 60, A: 255})
		}
	}
	return component.NewFrame(img)
}

// topHalfFrame is opaque only in its upper half.
func topHalfFrame(w, h int) *component.Frame {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
		}
	}
	return component.NewFrame(img)
}

func solidFrames(n, w, h int) []*component.Frame {
	frames := make([]*component.Frame, n)
	for i := range frames {
		frames[i] = solidFrame(w, h)
	}
	return frames
}

// killLog records every Kill call made through a Context.
type killLog struct {
	killed []ecs.Entity
}

func (k *killLog) ctx(now time.Duration, dt float64) *Context {
	return &Context{Now: now, Dt: dt, Kill: func(e ecs.Entity) { k.killed = append(k.killed, e) }}
}

func (k *killLog) has(e ecs.Entity) bool {
	for _, got := range k.killed {
		if got == e {
			return true
		}
	}
	return false
}

// enemyList is a fixed EnemySource.
type enemyList []*Enemy

func (l enemyList) EachEnemy(fn func(e *Enemy) bool) {
	for _, e := range l {
		if !fn(e) {
			return
		}
	}
}

// ids hands out distinct entity handles for tests.
func ids(n int) []ecs.Entity {
	w := ecs.NewWorld()
	out := make([]ecs.Entity, n)
	for i := range out {
		out[i] = w.CreateEntity()
	}
	return out
}
