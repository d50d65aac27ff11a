package component

import (
	"image"
	"image/color"
	"testing"
)

// halfImage returns a w*h image whose left or right half is opaque.
func halfImage(w, h int, left bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x < w/2) == left {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, A: 255})
			}
		}
	}
	return img
}

func solidImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{G: 200, A: 255})
		}
	}
	return img
}

func TestMaskFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 127})
	img.SetNRGBA(1, 0, color.NRGBA{A: 128})
	img.SetNRGBA(2, 0, color.NRGBA{A: 255})
	m := MaskFromImage(img)
	if m.Get(0, 0) || !m.Get(1, 0) || !m.Get(2, 0) {
		t.Fatalf("unexpected mask bits: %v %v %v", m.Get(0, 0), m.Get(1, 0), m.Get(2, 0))
	}
	if m.Count() != 2 {
		t.Fatalf("Count = %d, want 2", m.Count())
	}
}

func TestMaskOverlap(t *testing.T) {
	left := MaskFromImage(halfImage(10, 10, true))
	right := MaskFromImage(halfImage(10, 10, false))
	solid := MaskFromImage(solidImage(4, 4))

	cases := []struct {
		name   string
		a, b   *Mask
		dx, dy int
		want   bool
	}{
		{"same_position_disjoint_halves", left, right, 0, 0, false},
		{"right_shifted_onto_left", left, right, -5, 0, true},
		{"solid_inside_opaque_half", left, solid, 1, 1, true},
		{"solid_inside_clear_half", left, solid, 6, 1, false},
		{"solid_outside", left, solid, 20, 20, false},
		{"negative_offset", solid, left, -2, -2, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Overlap(c.b, c.dx, c.dy); got != c.want {
				t.Fatalf("Overlap(%d,%d) = %v, want %v", c.dx, c.dy, got, c.want)
			}
		})
	}
}

func TestMaskBoundingRect(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 6; y < 16; y++ {
		for x := 2; x < 14; x++ {
			img.SetNRGBA(x, y, color.NRGBA{A: 255})
		}
	}
	got := MaskFromImage(img).BoundingRect()
	if want := image.Rect(2, 6, 14, 16); got != want {
		t.Fatalf("BoundingRect = %v, want %v", got, want)
	}
	if !NewMask(4, 4).BoundingRect().Empty() {
		t.Fatalf("empty mask should have empty bounding rect")
	}
}

func TestFrameFlipAndSilhouette(t *testing.T) {
	f := NewFrame(halfImage(8, 4, true))
	fl := f.Flipped()
	if fl.Flipped() != f {
		t.Fatalf("flipping twice should return the original frame")
	}
	if !fl.Mask().Get(7, 0) || fl.Mask().Get(0, 0) {
		t.Fatalf("flipped mask not mirrored")
	}

	s := f.Silhouette()
	w, h := s.Size()
	if w != 8 || h != 4 {
		t.Fatalf("silhouette size = %dx%d", w, h)
	}
	if s.Mask().Count() != f.Mask().Count() {
		t.Fatalf("silhouette mask differs from source mask")
	}
	c := color.NRGBAModel.Convert(s.Image().At(0, 0)).(color.NRGBA)
	if c.R != 0xff || c.A != 0xff {
		t.Fatalf("silhouette pixel = %+v, want opaque white", c)
	}
	c = color.NRGBAModel.Convert(s.Image().At(7, 0)).(color.NRGBA)
	if c.A != 0 {
		t.Fatalf("silhouette background should be transparent, got %+v", c)
	}
}
