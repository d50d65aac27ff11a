package assets

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/milk9111/jungle/levels"
	"golang.org/x/image/colornames"
)

// shape is a generated stand-in sprite, in unscaled pixels.
type shape struct {
	w, h    int
	body    color.NRGBA
	accent  color.NRGBA
	rounded bool
}

var (
	playerShape = shape{w: 12, h: 16, body: opaque(colornames.Crimson), accent: opaque(colornames.Gold)}
	beeShape    = shape{w: 10, h: 8, body: opaque(colornames.Yellow), accent: opaque(colornames.Black), rounded: true}
	snakeShape  = shape{w: 16, h: 8, body: opaque(colornames.Limegreen), accent: opaque(colornames.Darkolivegreen), rounded: true}
	bulletShape = shape{w: 8, h: 3, body: opaque(colornames.Orange), accent: opaque(colornames.White)}
	fireShape   = shape{w: 8, h: 6, body: opaque(colornames.Orangered), accent: opaque(colornames.Yellow), rounded: true}
)

// draw renders animation frame i. The accent stripe moves one pixel per
// frame so cycling is visible.
func (s shape) draw(i int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.w, s.h))
	draw.Draw(img, img.Bounds(), &image.Uniform{s.body}, image.Point{}, draw.Src)
	stripe := i % s.w
	for y := 0; y < s.h; y++ {
		img.SetNRGBA(stripe, y, s.accent)
	}
	if s.rounded {
		for _, p := range []image.Point{{0, 0}, {s.w - 1, 0}, {0, s.h - 1}, {s.w - 1, s.h - 1}} {
			img.SetNRGBA(p.X, p.Y, color.NRGBA{})
		}
	}
	return img
}

// tilePlaceholder fills a size×size tile with the tileset colour, leaving
// info.Top unscaled rows transparent and outlining the solid part.
func tilePlaceholder(info levels.TileInfo, size, scale int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	fill := opaque(colornames.Magenta)
	if c, ok := colornames.Map[info.Color]; ok {
		fill = opaque(c)
	}
	top := min(info.Top*scale, size)
	solid := image.Rect(0, top, size, size)
	draw.Draw(img, solid, &image.Uniform{fill}, image.Point{}, draw.Src)

	edge := color.NRGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: 255}
	for x := 0; x < size && top < size; x++ {
		img.SetNRGBA(x, top, edge)
		img.SetNRGBA(x, size-1, edge)
	}
	return img
}
