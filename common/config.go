package common

import (
	"errors"
	"fmt"
)

// Key identifies a keyboard key by name. Values are only ever compared for
// equality, so any stable naming works; the ebiten frontend uses
// ebiten.Key.String().
type Key string

// KeyEscape is reserved for ending the game and can't be bound to a paddle.
const KeyEscape Key = "Escape"

// Side is the half of the court a paddle defends.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "left" or "right".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	}
	return SideLeft, fmt.Errorf("unknown side %q", s)
}

// Bindings are the three keys a player controls a paddle with.
type Bindings struct {
	Down  Key
	Up    Key
	Serve Key
}

func (b Bindings) keys() []Key {
	return []Key{b.Down, b.Up, b.Serve}
}

// Config is fixed when a match is built. Speeds are in units per millisecond.
type Config struct {
	Playfield Playfield

	PaddleWidth  float64
	PaddleHeight float64
	// PaddleInset is the distance from a side edge to the paddle centre.
	PaddleInset float64
	PaddleSpeed float64

	BallSize          float64
	LaunchSpeed       float64
	LaunchVerticalMin float64
	LaunchVerticalMax float64
	// ServeMargin offsets a serving ball from the paddle centre toward mid-screen.
	ServeMargin float64

	TargetFPS   int
	FirstServer Side
	Seed        int64

	Left  Bindings
	Right Bindings
}

func DefaultConfig() Config {
	return Config{
		Playfield: Playfield{
			Width:        640,
			Height:       480,
			TopBarHeight: 45,
			Border:       5,
		},
		PaddleWidth:       12,
		PaddleHeight:      64,
		PaddleInset:       32,
		PaddleSpeed:       0.75,
		BallSize:          12,
		LaunchSpeed:       0.4,
		LaunchVerticalMin: 0.3,
		LaunchVerticalMax: 1.0,
		ServeMargin:       10,
		TargetFPS:         60,
		FirstServer:       SideLeft,
		Seed:              1,
		Left:              Bindings{Down: "S", Up: "W", Serve: "D"},
		Right:             Bindings{Down: "ArrowDown", Up: "ArrowUp", Serve: "ArrowLeft"},
	}
}

// FrameMillis is the duration of one frame at the target rate.
func (c Config) FrameMillis() float64 {
	if c.TargetFPS <= 0 {
		return 0
	}
	return 1000 / float64(c.TargetFPS)
}

// PaddleX returns the fixed centre X of the paddle on the given side.
func (c Config) PaddleX(side Side) float64 {
	if side == SideRight {
		return c.Playfield.Width - c.PaddleInset
	}
	return c.PaddleInset
}

// BindingsFor returns the key bindings of the given side.
func (c Config) BindingsFor(side Side) Bindings {
	if side == SideRight {
		return c.Right
	}
	return c.Left
}

// Validate rejects configurations the simulation can't run sensibly.
func (c Config) Validate() error {
	if err := c.Playfield.validate(); err != nil {
		return err
	}
	if c.PaddleWidth <= 0 || c.PaddleHeight <= 0 {
		return fmt.Errorf("config: paddle size %.0fx%.0f must be positive", c.PaddleWidth, c.PaddleHeight)
	}
	if !c.Playfield.Fits(c.PaddleWidth, c.PaddleHeight) {
		return fmt.Errorf("config: paddle %.0fx%.0f doesn't fit the play area", c.PaddleWidth, c.PaddleHeight)
	}
	if c.PaddleInset < c.PaddleWidth/2 || c.PaddleInset > c.Playfield.MidX() {
		return fmt.Errorf("config: paddle inset %.0f must be between %.0f and %.0f", c.PaddleInset, c.PaddleWidth/2, c.Playfield.MidX())
	}
	if c.PaddleSpeed <= 0 {
		return fmt.Errorf("config: paddle speed %v must be positive", c.PaddleSpeed)
	}
	if c.BallSize <= 0 {
		return fmt.Errorf("config: ball size %v must be positive", c.BallSize)
	}
	if !c.Playfield.Fits(c.BallSize, c.BallSize) {
		return fmt.Errorf("config: ball size %.0f doesn't fit the play area", c.BallSize)
	}
	if c.LaunchSpeed <= 0 {
		return fmt.Errorf("config: launch speed %v must be positive", c.LaunchSpeed)
	}
	if c.LaunchVerticalMin < 0 || c.LaunchVerticalMax <= 0 || c.LaunchVerticalMin > c.LaunchVerticalMax {
		return fmt.Errorf("config: launch vertical range [%v, %v] is invalid", c.LaunchVerticalMin, c.LaunchVerticalMax)
	}
	if c.ServeMargin < 0 {
		return fmt.Errorf("config: serve margin %v must not be negative", c.ServeMargin)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("config: target fps %d must be positive", c.TargetFPS)
	}
	if c.FirstServer != SideLeft && c.FirstServer != SideRight {
		return fmt.Errorf("config: unknown first server %v", c.FirstServer)
	}
	return validateBindings(c.Left, c.Right)
}

var errEmptyKey = errors.New("empty key binding")

func validateBindings(sides ...Bindings) error {
	seen := make(map[Key]bool)
	for _, b := range sides {
		for _, k := range b.keys() {
			if k == "" {
				return fmt.Errorf("config: %w", errEmptyKey)
			}
			if k == KeyEscape {
				return fmt.Errorf("config: %s is reserved", KeyEscape)
			}
			if seen[k] {
				return fmt.Errorf("config: key %s bound twice", k)
			}
			seen[k] = true
		}
	}
	return nil
}
