package obj

import (
	"testing"

	"github.com/milk9111/jungle/common"
)

func TestCollisionWorldResolve(t *testing.T) {
	cw := NewCollisionWorld()
	cw.Add(common.Rect{X: 50, Y: 0, Width: 20, Height: 100})
	cw.Add(common.Rect{X: 0, Y: 0, Width: 0, Height: 10}) // ignored

	if got := len(cw.Solids()); got != 1 {
		t.Fatalf("solids = %d, want 1", got)
	}

	cases := []struct {
		name  string
		start common.Rect
		dx    float64
		wantX float64
	}{
		{"moving_right", common.Rect{X: 45, Y: 10, Width: 10, Height: 10}, 1, 40},
		{"moving_left", common.Rect{X: 65, Y: 10, Width: 10, Height: 10}, -1, 70},
		{"no_motion", common.Rect{X: 45, Y: 10, Width: 10, Height: 10}, 0, 45},
		{"touching", common.Rect{X: 40, Y: 10, Width: 10, Height: 10}, 1, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := c.start
			cw.ResolveX(&r, c.dx)
			if r.X != c.wantX {
				t.Fatalf("x = %v, want %v", r.X, c.wantX)
			}
		})
	}
}

func TestCollisionWorldResolveY(t *testing.T) {
	cw := NewCollisionWorld()
	cw.Add(common.Rect{X: 0, Y: 100, Width: 200, Height: 20})

	falling := common.Rect{X: 10, Y: 85, Width: 10, Height: 20}
	vy := 5.0
	if !cw.ResolveY(&falling, &vy) {
		t.Fatalf("expected a contact")
	}
	if falling.Bottom() != 100 || vy != 0 {
		t.Fatalf("landing: bottom=%v vy=%v", falling.Bottom(), vy)
	}

	rising := common.Rect{X: 10, Y: 115, Width: 10, Height: 20}
	vy = -5
	cw.ResolveY(&rising, &vy)
	if rising.Y != 120 || vy != 0 {
		t.Fatalf("head bump: y=%v vy=%v", rising.Y, vy)
	}

	if !cw.IsGrounded(falling, 2) {
		t.Fatalf("rect resting on the solid should be grounded")
	}
	if cw.IsGrounded(common.Rect{X: 10, Y: 50, Width: 10, Height: 20}, 2) {
		t.Fatalf("rect in the air reported grounded")
	}
}
