package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/obj"
)

// keyboardInput turns ebiten's per-tick key edges into input events. Keys
// are named by ebiten.Key.String(), which is what the game spec binds.
type keyboardInput struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []obj.InputEvent
}

func (in *keyboardInput) Poll() []obj.InputEvent {
	in.events = in.events[:0]

	in.pressed = inpututil.AppendJustPressedKeys(in.pressed[:0])
	for _, k := range in.pressed {
		in.events = append(in.events, obj.KeyDown(common.Key(k.String())))
	}
	in.released = inpututil.AppendJustReleasedKeys(in.released[:0])
	for _, k := range in.released {
		in.events = append(in.events, obj.KeyUp(common.Key(k.String())))
	}

	if ebiten.IsWindowBeingClosed() {
		in.events = append(in.events, obj.Quit())
	}
	return in.events
}
