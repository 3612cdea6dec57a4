package system

import (
	"context"
	"log"

	"github.com/milk9111/pong/obj"
)

// State is the run state of the game. It only ever moves forward.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "running"
}

// Renderer draws the court and shows the frame. Present returns the
// milliseconds elapsed since the previous call.
type Renderer interface {
	Present(w *World) float64
}

// InputSource returns the events that arrived since the last poll, oldest
// first.
type InputSource interface {
	Poll() []obj.InputEvent
}

// Loop runs frames: present, collect input, advance the simulation.
type Loop struct {
	World *World
	Debug bool

	renderer Renderer
	input    InputSource
	state    State
	frames   int
}

func NewLoop(w *World, r Renderer, in InputSource) *Loop {
	return &Loop{
		World:    w,
		renderer: r,
		input:    in,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Frames counts the frames that advanced the simulation.
func (l *Loop) Frames() int {
	return l.frames
}

// Step runs one frame and reports whether the game is still running. A frame
// that ends the game doesn't advance the simulation.
func (l *Loop) Step() bool {
	if l.state == StateGameOver {
		return false
	}

	dt := l.renderer.Present(l.World)
	if dt < 0 {
		dt = 0
	}

	ball := l.World.Ball
	wasServing := ball.Serving()
	if l.World.HandleInput(l.input.Poll()) {
		l.state = StateGameOver
		if l.Debug {
			log.Printf("pong: frame %d: game over", l.frames)
		}
		return false
	}
	if l.Debug && wasServing && !ball.Serving() {
		log.Printf("pong: frame %d: ball launched at (%.2f, %.2f)", l.frames, ball.Vel.X, ball.Vel.Y)
	}

	l.World.Update(dt)
	l.frames++
	return true
}

// Run steps until the game is over or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !l.Step() {
			return nil
		}
	}
}
