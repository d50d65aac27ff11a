package component

import (
	"image"
	"image/color"
)

// maskAlphaThreshold is the alpha above which a pixel counts as opaque.
const maskAlphaThreshold = 127

// Mask is a per-pixel opacity bitmap used for pixel-accurate overlap tests.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask returns an empty mask of the given size.
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// MaskFromImage marks every pixel whose alpha exceeds the threshold.
func MaskFromImage(img image.Image) *Mask {
	if img == nil {
		return NewMask(0, 0)
	}
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			a := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA).A
			if a > maskAlphaThreshold {
				m.bits[y*m.w+x] = true
			}
		}
	}
	return m
}

func (m *Mask) Size() (int, int) {
	if m == nil {
		return 0, 0
	}
	return m.w, m.h
}

// Get reports whether (x, y) is set. Out-of-range coordinates are unset.
func (m *Mask) Get(x, y int) bool {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

func (m *Mask) Set(x, y int, v bool) {
	if m == nil || x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = v
}

// Count returns the number of set pixels.
func (m *Mask) Count() int {
	if m == nil {
		return 0
	}
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Overlap reports whether any set pixel of m coincides with a set pixel of
// other when other's top-left corner sits at (dx, dy) in m's coordinates.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0 := max(0, dx)
	y0 := max(0, dy)
	x1 := min(m.w, dx+other.w)
	y1 := min(m.h, dy+other.h)
	for y := y0; y < y1; y++ {
		row := y * m.w
		orow := (y - dy) * other.w
		for x := x0; x < x1; x++ {
			if m.bits[row+x] && other.bits[orow+x-dx] {
				return true
			}
		}
	}
	return false
}

// BoundingRect returns the smallest rectangle enclosing every set pixel, or
// an empty rectangle when nothing is set.
func (m *Mask) BoundingRect() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	minX, minY := m.w, m.h
	maxX, maxY := -1, -1
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if !m.bits[y*m.w+x] {
				continue
			}
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// Silhouette renders the mask as solid white on a transparent background.
func (m *Mask) Silhouette() *image.NRGBA {
	w, h := m.Size()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.bits[y*w+x] {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
			}
		}
	}
	return img
}
