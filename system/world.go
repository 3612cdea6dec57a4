package system

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/obj"
)

// World owns the court: both paddles, the ball and the input router that
// connects them.
type World struct {
	Config  common.Config
	Paddles []*obj.Paddle
	Ball    *obj.Ball

	serves   *obj.ServeQueue
	router   *obj.InputRouter
	onBounce func(obj.BounceKind)
}

// NewWorld builds a court from cfg.
func NewWorld(cfg common.Config) (*World, error) {
	w := &World{}
	if err := w.Load(cfg); err != nil {
		return nil, err
	}
	return w, nil
}

// Load validates cfg and replaces the court with a fresh one. On error the
// current court is left untouched.
func (w *World) Load(cfg common.Config) error {
	if w == nil {
		return fmt.Errorf("world is nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("world: %w", err)
	}

	serves := &obj.ServeQueue{}
	left, err := obj.NewPaddle(cfg, common.SideLeft, serves)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	right, err := obj.NewPaddle(cfg, common.SideRight, serves)
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	paddles := []*obj.Paddle{left, right}

	server := left
	if cfg.FirstServer == common.SideRight {
		server = right
	}
	ball, err := obj.NewBall(cfg, paddles, server, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return fmt.Errorf("world: %w", err)
	}
	ball.OnBounce = w.onBounce

	w.Config = cfg
	w.Paddles = paddles
	w.Ball = ball
	w.serves = serves
	w.router = obj.NewInputRouter(paddles, ball, serves)
	return nil
}

// SetBounceHandler registers fn for ball bounces. It survives Load.
func (w *World) SetBounceHandler(fn func(obj.BounceKind)) {
	if w == nil {
		return
	}
	w.onBounce = fn
	if w.Ball != nil {
		w.Ball.OnBounce = fn
	}
}

// Bodies lists everything on the court in draw and update order.
func (w *World) Bodies() []obj.Body {
	bodies := make([]obj.Body, 0, len(w.Paddles)+1)
	for _, p := range w.Paddles {
		bodies = append(bodies, p)
	}
	return append(bodies, w.Ball)
}

// HandleInput routes one frame of events and reports a quit request.
func (w *World) HandleInput(events []obj.InputEvent) bool {
	return w.router.Route(events)
}

// Update advances the paddles, then the ball, by dt milliseconds. The ball
// goes last so it collides against this frame's paddle positions.
func (w *World) Update(dt float64) {
	for _, b := range w.Bodies() {
		b.Update(dt)
	}
}
