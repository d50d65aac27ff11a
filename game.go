package main

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/jungle/common"
	"github.com/milk9111/jungle/component"
	"github.com/milk9111/jungle/obj"
	"github.com/milk9111/jungle/prefabs"
	"github.com/milk9111/jungle/system"
)

type Game struct {
	world   *system.World
	watcher *prefabs.Watcher
	debug   bool

	camera *obj.Camera
	images map[*component.Frame]*ebiten.Image
	face   ebtext.Face
	dead   *overlay
	win    *overlay

	state system.State
}

func NewGame(world *system.World, watcher *prefabs.Watcher, debug bool) *Game {
	t := world.Tuning()
	g := &Game{
		world:   world,
		watcher: watcher,
		debug:   debug,
		camera:  obj.NewCamera(t.Window.Width, t.Window.Height),
		images:  make(map[*component.Frame]*ebiten.Image),
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		dead:    newDeadOverlay(t.Window.Width, t.Window.Height),
		win:     newWinOverlay(t.Window.Width, t.Window.Height),
		state:   world.Session().State(),
	}
	g.camera.SetWorldBounds(world.Size())
	g.follow(true)
	return g
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.world.Session().Persist()
		return ebiten.Termination
	}
	g.reload()

	session := g.world.Session()
	in := pollInput(session.State() == system.StatePlay)
	if !ebiten.IsFocused() {
		in.Reset()
	}
	if g.world.Update(in, 1/float64(g.world.Tuning().Framerate)) {
		return ebiten.Termination
	}

	state := session.State()
	g.follow(state != g.state && state == system.StatePlay)
	g.state = state

	switch state {
	case system.StateDead:
		g.dead.Update(session.Score(), session.HighScore())
	case system.StateWin:
		g.win.Update(session.Score(), session.HighScore())
	}
	return nil
}

// follow centres the camera on the player. A restart snaps instead of
// sliding back across the level.
func (g *Game) follow(snap bool) {
	c := g.world.Player().Bounds().Center()
	if snap {
		g.camera.SnapTo(c.X, c.Y)
		return
	}
	g.camera.Update(c.X, c.Y)
}

func (g *Game) reload() {
	names, err := g.watcher.Poll()
	if err != nil {
		log.Warn("prefab watch error", "err", err)
	}
	for _, name := range names {
		if filepath.Base(name) != prefabs.TuningFile {
			continue
		}
		t, err := prefabs.LoadTuning()
		if err != nil {
			log.Warn("tuning reload failed", "err", err)
			continue
		}
		g.world.SetTuning(t)
		log.Info("tuning reloaded", "file", name)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	t := g.world.Tuning()
	screen.Fill(t.Background.NRGBA(color.NRGBA(colornames.Skyblue)))

	off := g.camera.Offset()
	g.world.EachDrawable(func(d obj.Drawable) bool {
		b := d.Bounds()
		if !g.camera.Visible(b) {
			return true
		}
		img := g.image(d.Frame())
		if img == nil {
			return true
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(math.Round(b.X+off.X), math.Round(b.Y+off.Y))
		screen.DrawImage(img, op)
		return true
	})

	session := g.world.Session()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.ColorScale.ScaleWithColor(color.White)
	ebtext.Draw(screen, fmt.Sprintf("Score: %d", session.Score()), g.face, op)

	if g.debug {
		g.drawSolids(screen, off.X, off.Y)
		entities, enemies, bullets := g.world.Counts()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.2f    Entities: %d    Enemies: %d    Bullets: %d",
			ebiten.ActualFPS(), entities, enemies, bullets), 10, 30)
	}

	switch session.State() {
	case system.StateDead:
		g.dead.Draw(screen)
	case system.StateWin:
		g.win.Draw(screen)
	}
}

// drawSolids outlines the static collision rectangles.
func (g *Game) drawSolids(screen *ebiten.Image, offX, offY float64) {
	for _, bb := range g.world.Solids() {
		r := common.RectFromBB(bb)
		if !g.camera.Visible(r) {
			continue
		}
		vector.StrokeRect(screen, float32(r.X+offX), float32(r.Y+offY), float32(r.Width), float32(r.Height), 1.0, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
	}
}

// image returns the GPU copy of f, uploading it on first use.
func (g *Game) image(f *component.Frame) *ebiten.Image {
	if f == nil {
		return nil
	}
	if img, ok := g.images[f]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(f.Image())
	g.images[f] = img
	return img
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	t := g.world.Tuning()
	return t.Window.Width, t.Window.Height
}
