package obj

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/prefabs"
)

func newTestBullet(pos cp.Vector, dir float64, targets EnemySource, onHit HitFunc) *Bullet {
	return NewBullet(ids(1)[0], pos, dir, solidFrame(4, 2), prefabs.DefaultTuning().Bullet, targets, onHit)
}

func TestBulletSteps(t *testing.T) {
	b := newTestBullet(cp.Vector{}, 1, nil, nil)
	cases := []struct {
		dx   float64
		want int
	}{
		{0, 1},
		{3.9, 1},
		{4, 2},
		{14.2, 4},
		{-8, 3},
	}
	for _, c := range cases {
		if got := b.Steps(c.dx); got != c.want {
			t.Errorf("Steps(%v) = %d, want %d", c.dx, got, c.want)
		}
	}
}

func TestBulletDoesNotTunnelThroughThinEnemy(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	thin := NewBee(ids(1)[0], cp.Vector{X: 15, Y: 0}, solidFrames(1, 2, 10), tuning.Enemy, BeeMotion{})

	var hits [][]*Enemy
	b := newTestBullet(cp.Vector{X: 0, Y: 4}, 1, enemyList{&thin.Enemy}, func(_ *Bullet, h []*Enemy) {
		hits = append(hits, h)
	})
	// 850px/s over 1/30s moves ~28px, far more than the enemy is wide.
	var kills killLog
	b.Update(kills.ctx(0, 1.0/30))

	if len(hits) != 1 {
		t.Fatalf("hits = %d, want 1", len(hits))
	}
	if len(hits[0]) != 1 || hits[0][0] != &thin.Enemy {
		t.Fatalf("unexpected hit list %v", hits[0])
	}
	if b.Rect.X >= 15 {
		t.Fatalf("bullet kept moving past the hit, x=%v", b.Rect.X)
	}
}

func TestBulletHitsAtMostOneEnemy(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	a := NewBee(ids(1)[0], cp.Vector{X: 10, Y: 0}, solidFrames(1, 8, 10), tuning.Enemy, BeeMotion{})
	c := NewBee(ids(1)[0], cp.Vector{X: 10, Y: 0}, solidFrames(1, 8, 10), tuning.Enemy, BeeMotion{})

	var got []*Enemy
	calls := 0
	b := newTestBullet(cp.Vector{X: 0, Y: 4}, 1, enemyList{&a.Enemy, &c.Enemy}, func(_ *Bullet, h []*Enemy) {
		calls++
		got = h
	})
	var kills killLog
	b.Update(kills.ctx(0, 1.0/60))
	if calls != 1 || len(got) != 1 || got[0] != &a.Enemy {
		t.Fatalf("calls=%d hits=%v, want one call with the first enemy", calls, got)
	}
}

func TestBulletIgnoresTransparentOverlap(t *testing.T) {
	tuning := prefabs.DefaultTuning()
	e := NewBee(ids(1)[0], cp.Vector{X: 15, Y: 0}, []*component.Frame{topHalfFrame(10, 10)}, tuning.Enemy, BeeMotion{})

	hit := false
	b := newTestBullet(cp.Vector{X: 0, Y: 7}, 1, enemyList{&e.Enemy}, func(*Bullet, []*Enemy) { hit = true })
	var kills killLog
	for i := 0; i < 5; i++ {
		b.Update(kills.ctx(time.Duration(i)*16*time.Millisecond, 1.0/60))
	}
	if hit {
		t.Fatalf("bullet hit through transparent pixels")
	}
	if b.Rect.X <= 25 {
		t.Fatalf("bullet should have passed the enemy, x=%v", b.Rect.X)
	}
}

func TestBulletDespawnsOutsideLimits(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		dir  float64
		want bool
	}{
		{"inside", 50, 1, false},
		{"past_right", 120, 1, true},
		{"past_left", -10, -1, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := newTestBullet(cp.Vector{X: c.x, Y: 0}, c.dir, nil, nil)
			b.SetLimits(0, 100)
			var kills killLog
			b.Update(kills.ctx(0, 1.0/60))
			if got := kills.has(b.ID()); got != c.want {
				t.Fatalf("killed = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBulletMirrorsFrameWhenFiredLeft(t *testing.T) {
	frame := solidFrame(4, 2)
	b := NewBullet(ids(1)[0], cp.Vector{}, -1, frame, prefabs.DefaultTuning().Bullet, nil, nil)
	if b.Frame() != frame.Flipped() {
		t.Fatalf("left-moving bullet should use the mirrored frame")
	}
}
