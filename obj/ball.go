package obj

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
)

// BounceKind says what the ball bounced off.
type BounceKind int

const (
	BounceWall BounceKind = iota
	BounceSide
	BouncePaddle
)

func (k BounceKind) String() string {
	switch k {
	case BounceWall:
		return "wall"
	case BounceSide:
		return "side"
	case BouncePaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// Ball is either held by a serving paddle or in free flight. Velocity is in
// units per millisecond.
type Ball struct {
	Pos cp.Vector
	Vel cp.Vector

	// OnBounce, if set, is told about every bounce during free flight.
	OnBounce func(kind BounceKind)

	size   float64
	field  common.Playfield
	margin float64

	launchSpeed float64
	launchMinY  float64
	launchMaxY  float64

	paddles []*Paddle
	// server is nil while the ball is in free flight.
	server *Paddle
	// lastCollided debounces paddle contact; it never changes gameplay.
	lastCollided *Paddle

	rng *rand.Rand
}

// NewBall creates a ball held by server. paddles is the set the ball collides
// with; server must be one of them.
func NewBall(cfg common.Config, paddles []*Paddle, server *Paddle, rng *rand.Rand) (*Ball, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("ball: %w", err)
	}
	if server == nil {
		return nil, errors.New("ball: no serving paddle")
	}
	if !containsPaddle(paddles, server) {
		return nil, fmt.Errorf("ball: server %s is not on the court", server)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	b := &Ball{
		size:        cfg.BallSize,
		field:       cfg.Playfield,
		margin:      cfg.ServeMargin,
		launchSpeed: cfg.LaunchSpeed,
		launchMinY:  cfg.LaunchVerticalMin,
		launchMaxY:  cfg.LaunchVerticalMax,
		paddles:     append([]*Paddle(nil), paddles...),
		rng:         rng,
	}
	b.ServeTo(server)
	return b, nil
}

func containsPaddle(paddles []*Paddle, p *Paddle) bool {
	for _, other := range paddles {
		if other == p {
			return true
		}
	}
	return false
}

// Bounds returns the ball's rectangle around its centre.
func (b *Ball) Bounds() cp.BB {
	return cp.NewBBForExtents(b.Pos, b.size/2, b.size/2)
}

// Serving reports whether a paddle is holding the ball.
func (b *Ball) Serving() bool {
	return b.server != nil
}

// Server returns the paddle holding the ball, or nil in free flight.
func (b *Ball) Server() *Paddle {
	return b.server
}

// LastCollided returns the paddle the ball is currently in contact with.
func (b *Ball) LastCollided() *Paddle {
	return b.lastCollided
}

// LowestY and HighestY bound the ball centre vertically.
func (b *Ball) LowestY() float64 {
	return b.field.LowestY(b.size / 2)
}

func (b *Ball) HighestY() float64 {
	return b.field.HighestY(b.size / 2)
}

// ServeTo hands the ball to p and snaps it in front of that paddle. Contact
// with the server is recorded straight away so the launch can't bounce off it.
// It reports false, leaving the ball alone, when p isn't on this court.
func (b *Ball) ServeTo(p *Paddle) bool {
	if p == nil || !containsPaddle(b.paddles, p) {
		return false
	}
	b.server = p
	b.Vel = cp.Vector{}
	b.followServer()
	b.collidePaddles()
	return true
}

// HandleServeRequest launches the ball if p is the current server. Requests
// from any other paddle, or while the ball is in flight, are ignored.
func (b *Ball) HandleServeRequest(p *Paddle) bool {
	if b.server == nil || p != b.server {
		return false
	}
	b.server = nil
	b.launch()
	return true
}

func (b *Ball) launch() {
	vx := b.launchSpeed
	if b.Pos.X > b.field.MidX() {
		vx = -vx
	}
	vy := common.Lerp(b.launchMinY, b.launchMaxY, b.rng.Float64())
	if b.rng.Intn(2) == 0 {
		vy = -vy
	}
	b.Vel = cp.Vector{X: vx, Y: vy}
}

// Update follows the server or advances free flight by dt milliseconds, then
// resolves paddle contact.
func (b *Ball) Update(dt float64) {
	if b.server != nil {
		b.followServer()
	} else {
		b.move(dt)
	}
	b.collidePaddles()
}

func (b *Ball) followServer() {
	offset := b.margin
	if b.server.Pos.X > b.field.MidX() {
		offset = -offset
	}
	b.Pos = cp.Vector{X: b.server.Pos.X + offset, Y: b.server.Pos.Y}
}

// move is a plain Euler step. The ball is not pulled back inside the walls;
// the inverted velocity brings it back on the next frame.
func (b *Ball) move(dt float64) {
	b.Pos = b.Pos.Add(b.Vel.Mult(dt))

	if b.field.OutsideY(b.Pos.Y, b.size/2) {
		b.Vel.Y = -b.Vel.Y
		b.bounced(BounceWall)
	}
	if b.field.OutsideX(b.Pos.X) {
		b.Vel.X = -b.Vel.X
		b.bounced(BounceSide)
	}
}

func (b *Ball) collidePaddles() {
	var hit *Paddle
	bounds := b.Bounds()
	for _, p := range b.paddles {
		if bounds.Intersects(p.Bounds()) {
			hit = p
			break
		}
	}

	switch {
	case hit == nil:
		b.lastCollided = nil
	case b.lastCollided == nil:
		b.lastCollided = hit
		b.Vel.X = -b.Vel.X
		b.bounced(BouncePaddle)
	}
}

func (b *Ball) bounced(kind BounceKind) {
	if b.OnBounce != nil && b.server == nil {
		b.OnBounce(kind)
	}
}
