package component

import (
	"image"
	"image/draw"
)

// Frame is one visual frame of an entity together with the data derived
// from its pixels. Derived values are computed on first use and cached.
type Frame struct {
	img image.Image

	mask       *Mask
	flipped    *Frame
	silhouette *Frame
}

// NewFrame wraps img. A nil image yields a zero-sized frame.
func NewFrame(img image.Image) *Frame {
	if img == nil {
		img = image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}
	return &Frame{img: img}
}

func (f *Frame) Image() image.Image {
	if f == nil {
		return nil
	}
	return f.img
}

// Size returns the pixel dimensions of the frame.
func (f *Frame) Size() (int, int) {
	if f == nil || f.img == nil {
		return 0, 0
	}
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Mask returns the opacity mask of the frame.
func (f *Frame) Mask() *Mask {
	if f == nil {
		return nil
	}
	if f.mask == nil {
		f.mask = MaskFromImage(f.img)
	}
	return f.mask
}

// Flipped returns the horizontally mirrored frame. Flipping twice yields the
// original frame.
func (f *Frame) Flipped() *Frame {
	if f == nil {
		return nil
	}
	if f.flipped == nil {
		f.flipped = &Frame{img: flipHorizontal(f.img), flipped: f}
	}
	return f.flipped
}

// Silhouette returns a frame drawn as the solid shape of this frame's mask.
func (f *Frame) Silhouette() *Frame {
	if f == nil {
		return nil
	}
	if f.silhouette == nil {
		f.silhouette = &Frame{img: f.Mask().Silhouette(), mask: f.Mask()}
	}
	return f.silhouette
}

// FlipAll mirrors every frame in frames.
func FlipAll(frames []*Frame) []*Frame {
	out := make([]*Frame, len(frames))
	for i, f := range frames {
		out[i] = f.Flipped()
	}
	return out
}

func flipHorizontal(src image.Image) image.Image {
	b := src.Bounds()
	in := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(in, in.Bounds(), src, b.Min, draw.Src)
	out := image.NewNRGBA(in.Bounds())
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < w; x++ {
			out.SetNRGBA(w-1-x, y, in.NRGBAAt(x, y))
		}
	}
	return out
}
