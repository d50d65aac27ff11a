// Package assets loads the game's images from disk and stands in generated
// placeholders for anything that is missing.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/levels"
	"github.com/milk9111/jungle/obj"
	xdraw "golang.org/x/image/draw"
)

// Images is every sprite the simulation needs.
type Images struct {
	Player obj.PlayerFrames
	Bee    []*component.Frame
	Snake  []*component.Frame
	Bullet *component.Frame
	Fire   *component.Frame
}

// Loader reads images from fsys. Character and tile images are upscaled
// by scale with nearest-neighbour sampling; bullet and fire are not.
type Loader struct {
	fsys  fs.FS
	scale int
}

func NewLoader(fsys fs.FS, scale int) *Loader {
	if scale <= 0 {
		scale = 1
	}
	return &Loader{fsys: fsys, scale: scale}
}

// Images loads the full sprite set, one placeholder per missing piece.
func (l *Loader) Images() *Images {
	return &Images{
		Player: obj.PlayerFrames{
			Idle: l.frames("images/player/idle", playerShape, 2),
			Run:  l.frames("images/player/run", playerShape, 4),
			Jump: l.frames("images/player/jump", playerShape, 3),
		},
		Bee:    l.frames("images/enemies/bee", beeShape, 2),
		Snake:  l.frames("images/enemies/snake", snakeShape, 2),
		Bullet: l.image("images/gun/bullet.png", bulletShape),
		Fire:   l.image("images/gun/fire.png", fireShape),
	}
}

// Tile returns the frame for a tileset entry, size pixels square. It
// implements levels.TileSource.
func (l *Loader) Tile(info levels.TileInfo, size int) *component.Frame {
	name := "images/tiles/" + info.Name + ".png"
	if img, err := l.decode(name); err == nil {
		return component.NewFrame(resize(img, size, size))
	} else if info.Name != "" {
		log.Debug("tile image missing, using placeholder", "tile", info.Name, "err", err)
	}
	return component.NewFrame(tilePlaceholder(info, size, l.scale))
}

// Frames decodes every PNG in dir ordered by numeric file name and scales
// each one.
func (l *Loader) Frames(dir string) ([]*component.Frame, error) {
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	SortNumeric(names)

	frames := make([]*component.Frame, 0, len(names))
	for _, n := range names {
		img, err := l.decode(path.Join(dir, n))
		if err != nil {
			return nil, err
		}
		frames = append(frames, component.NewFrame(l.scaled(img)))
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("assets: no frames in %s", dir)
	}
	return frames, nil
}

func (l *Loader) frames(dir string, s shape, n int) []*component.Frame {
	frames, err := l.Frames(dir)
	if err == nil {
		return frames
	}
	log.Warn("animation missing, using placeholder", "dir", dir, "err", err)
	out := make([]*component.Frame, n)
	for i := range out {
		out[i] = component.NewFrame(l.scaled(s.draw(i)))
	}
	return out
}

func (l *Loader) image(name string, s shape) *component.Frame {
	img, err := l.decode(name)
	if err != nil {
		log.Warn("image missing, using placeholder", "file", name, "err", err)
		return component.NewFrame(s.draw(0))
	}
	return component.NewFrame(img)
}

func (l *Loader) decode(name string) (image.Image, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("assets: no asset directory")
	}
	b, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

func (l *Loader) scaled(img image.Image) image.Image {
	if l.scale == 1 {
		return img
	}
	b := img.Bounds()
	return resize(img, b.Dx()*l.scale, b.Dy()*l.scale)
}

func resize(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// SortNumeric orders file names by their numeric stem, so 10.png follows
// 9.png. Names without a number sort after numbered ones, by name.
func SortNumeric(names []string) {
	key := func(name string) (int, bool) {
		n, err := strconv.Atoi(strings.TrimSuffix(name, path.Ext(name)))
		return n, err == nil
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, aok := key(names[i])
		b, bok := key(names[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		}
		return names[i] < names[j]
	})
}

var _ levels.TileSource = (*Loader)(nil)

func opaque(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = 255
	return n
}
