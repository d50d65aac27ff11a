package common

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(5, 5, 10, 10), true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"touching_right_edge", NewRect(10, 0, 5, 5), false},
		{"touching_bottom_edge", NewRect(0, 10, 5, 5), false},
		{"apart", NewRect(20, 20, 5, 5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Intersects(c.other); got != c.want {
				t.Fatalf("Intersects(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Intersects(base); got != c.want {
				t.Fatalf("symmetric Intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	patrol := NewRect(0, 0, 100, 20)
	cases := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"inside", NewRect(10, 5, 10, 10), true},
		{"flush_left", NewRect(0, 10, 10, 10), true},
		{"flush_right", NewRect(90, 10, 10, 10), true},
		{"past_right", NewRect(90.5, 10, 10, 10), false},
		{"past_left", NewRect(-0.5, 10, 10, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := patrol.Contains(c.inner); got != c.want {
				t.Fatalf("Contains(%+v) = %v, want %v", c.inner, got, c.want)
			}
		})
	}
}

func TestRectAnchors(t *testing.T) {
	r := NewRect(0, 0, 10, 4)
	r.SetMidRight(cp.Vector{X: 50, Y: 20})
	if r.Right() != 50 || r.CenterY() != 20 {
		t.Fatalf("SetMidRight placed rect at %+v", r)
	}
	r.SetMidLeft(cp.Vector{X: 5, Y: 6})
	if r.X != 5 || r.CenterY() != 6 {
		t.Fatalf("SetMidLeft placed rect at %+v", r)
	}
	r.SetMidTop(cp.Vector{X: 30, Y: 40})
	if r.CenterX() != 30 || r.Y != 40 {
		t.Fatalf("SetMidTop placed rect at %+v", r)
	}
	if got := RectFromBB(r.BB()); got != r {
		t.Fatalf("RectFromBB round trip = %+v, want %+v", got, r)
	}
}
