package obj

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
)

// Paddle is a player's bat. Only its vertical position changes after
// construction.
type Paddle struct {
	Pos  cp.Vector
	Side common.Side
	Keys common.Bindings

	width  float64
	height float64
	speed  float64
	// vel is 0, +speed or -speed.
	vel float64

	field  common.Playfield
	serves *ServeQueue
}

// NewPaddle places a paddle at its side's fixed X, vertically centred on the
// court. Serve key releases are pushed onto serves.
func NewPaddle(cfg common.Config, side common.Side, serves *ServeQueue) (*Paddle, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("paddle: %w", err)
	}
	return &Paddle{
		Pos:    cp.Vector{X: cfg.PaddleX(side), Y: cfg.Playfield.MidY()},
		Side:   side,
		Keys:   cfg.BindingsFor(side),
		width:  cfg.PaddleWidth,
		height: cfg.PaddleHeight,
		speed:  cfg.PaddleSpeed,
		field:  cfg.Playfield,
		serves: serves,
	}, nil
}

func (p *Paddle) String() string {
	if p == nil {
		return "<none>"
	}
	return p.Side.String()
}

// Bounds returns the paddle's rectangle around its centre.
func (p *Paddle) Bounds() cp.BB {
	return cp.NewBBForExtents(p.Pos, p.width/2, p.height/2)
}

// Velocity is the current vertical velocity in units per millisecond.
func (p *Paddle) Velocity() float64 {
	return p.vel
}

func (p *Paddle) Speed() float64 {
	return p.speed
}

// LowestY and HighestY bound the paddle centre.
func (p *Paddle) LowestY() float64 {
	return p.field.LowestY(p.height / 2)
}

func (p *Paddle) HighestY() float64 {
	return p.field.HighestY(p.height / 2)
}

// HandleKeyDown starts moving when one of the paddle's movement keys is pressed.
func (p *Paddle) HandleKeyDown(key common.Key) {
	switch key {
	case p.Keys.Down:
		p.vel = p.speed
	case p.Keys.Up:
		p.vel = -p.speed
	}
}

// HandleKeyUp stops the paddle only when the released key is the one it is
// moving by. Releasing the serve key raises a serve request.
func (p *Paddle) HandleKeyUp(key common.Key) {
	switch key {
	case p.Keys.Down:
		if p.vel == p.speed {
			p.vel = 0
		}
	case p.Keys.Up:
		if p.vel == -p.speed {
			p.vel = 0
		}
	case p.Keys.Serve:
		p.serves.Push(ServeRequest{Paddle: p})
	}
}

// Update moves the paddle by dt milliseconds and stops it at the walls.
func (p *Paddle) Update(dt float64) {
	p.Pos.Y = p.field.ClampY(p.Pos.Y+p.vel*dt, p.height/2)
}
