package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/system"
)

type palette struct {
	background  color.Color
	topBar      color.Color
	border      color.Color
	leftPaddle  color.Color
	rightPaddle color.Color
	ball        color.Color
}

func newPalette(spec prefabs.PaletteSpec) palette {
	return palette{
		background:  spec.Background.ColorOr(color.Black),
		topBar:      spec.TopBar.ColorOr(color.Black),
		border:      spec.Border.ColorOr(color.White),
		leftPaddle:  spec.LeftPaddle.ColorOr(color.White),
		rightPaddle: spec.RightPaddle.ColorOr(color.White),
		ball:        spec.Ball.ColorOr(color.White),
	}
}

// screenRenderer presents the court through ebiten. Ebiten calls Update at a
// fixed tick rate, so every presented frame is worth exactly one tick.
type screenRenderer struct {
	world       *system.World
	colors      palette
	hud         *HUD
	frameMillis float64
}

func newScreenRenderer(cfg common.Config, colors palette) *screenRenderer {
	return &screenRenderer{
		colors:      colors,
		hud:         NewHUD(cfg, colors.topBar),
		frameMillis: cfg.FrameMillis(),
	}
}

func (r *screenRenderer) Present(w *system.World) float64 {
	r.world = w
	r.hud.Update(w)
	return r.frameMillis
}

// Draw paints the background, paddles and then the ball.
func (r *screenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(r.colors.background)
	if r.world == nil {
		return
	}
	pf := r.world.Config.Playfield

	r.hud.Draw(screen)
	fillRect(screen, 0, pf.TopBarHeight, pf.Width, pf.Border, r.colors.border)
	fillRect(screen, 0, pf.Height-pf.Border, pf.Width, pf.Border, r.colors.border)

	for _, p := range r.world.Paddles {
		clr := r.colors.leftPaddle
		if p.Side == common.SideRight {
			clr = r.colors.rightPaddle
		}
		fillBB(screen, p.Bounds(), clr)
	}
	fillBB(screen, r.world.Ball.Bounds(), r.colors.ball)
}

func fillBB(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	fillRect(screen, bb.L, bb.B, bb.R-bb.L, bb.T-bb.B, clr)
}

func fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}
