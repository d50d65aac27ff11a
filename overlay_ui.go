package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var (
	deadTitleColor = color.NRGBA{R: 220, G: 60, B: 60, A: 0xff}
	winTitleColor  = color.NRGBA{R: 80, G: 220, B: 120, A: 0xff}
	overlayText    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// overlay is an end-of-run screen drawn over the frozen level.
type overlay struct {
	ui    *ebitenui.UI
	score *widget.Text
}

// newOverlay builds a full-screen dim with a centred column holding the
// title, the score line and the key hints.
func newOverlay(title string, titleColor color.NRGBA, dim uint8, w, h int) *overlay {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, titleColor),
		widget.TextOpts.WidgetOpts(center),
	)
	score := widget.NewText(
		widget.TextOpts.Text("", &face, overlayText),
		widget.TextOpts.WidgetOpts(center),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Press R to restart   /   Press ESC to exit", &face, overlayText),
		widget.TextOpts.WidgetOpts(center),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)
	panel.AddChild(score)
	panel.AddChild(hint)

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: dim})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
	)
	root.AddChild(panel)

	return &overlay{ui: &ebitenui.UI{Container: root}, score: score}
}

func newDeadOverlay(w, h int) *overlay {
	return newOverlay("YOU DIED", deadTitleColor, 180, w, h)
}

func newWinOverlay(w, h int) *overlay {
	return newOverlay("YOU WIN!", winTitleColor, 160, w, h)
}

func (o *overlay) Update(score, high int) {
	o.score.Label = fmt.Sprintf("Score: %d    High Score: %d", score, high)
	o.ui.Update()
}

func (o *overlay) Draw(screen *ebiten.Image) {
	o.ui.Draw(screen)
}
