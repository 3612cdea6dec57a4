package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/system"
	"golang.org/x/image/font/basicfont"
)

// HUD is the strip in the top bar: each player's keys on their side and the
// serve state in the middle.
type HUD struct {
	ui     *ebitenui.UI
	left   *widget.Text
	status *widget.Text
	right  *widget.Text
}

func NewHUD(cfg common.Config, background color.Color) *HUD {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	textColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	rowData := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	newText := func() *widget.Text {
		return widget.NewText(
			widget.TextOpts.Text("", &face, textColor),
			widget.TextOpts.WidgetOpts(rowData),
		)
	}
	h := &HUD{left: newText(), status: newText(), right: newText()}
	h.left.Label = bindingsLabel(common.SideLeft, cfg.Left)
	h.right.Label = bindingsLabel(common.SideRight, cfg.Right)

	pf := cfg.Playfield
	bar := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(40),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(pf.Width), int(pf.TopBarHeight)),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	bar.AddChild(h.left)
	bar.AddChild(h.status)
	bar.AddChild(h.right)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(bar)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func bindingsLabel(side common.Side, b common.Bindings) string {
	return fmt.Sprintf("%s: %s/%s serve %s", side, b.Up, b.Down, b.Serve)
}

// Update refreshes the serve state from w.
func (h *HUD) Update(w *system.World) {
	if server := w.Ball.Server(); server != nil {
		h.status.Label = fmt.Sprintf("%s serves (%s)", server.Side, server.Keys.Serve)
	} else {
		h.status.Label = "rally"
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
