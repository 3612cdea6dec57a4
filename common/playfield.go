package common

import "fmt"

// Playfield describes the fixed screen area the match is played on. The top
// bar is reserved for the HUD and the border is drawn along the top and
// bottom edges of the court.
type Playfield struct {
	Width        float64
	Height       float64
	TopBarHeight float64
	Border       float64
}

// LowestY is the smallest legal centre Y for a body of the given half height.
func (p Playfield) LowestY(halfHeight float64) float64 {
	return p.TopBarHeight + p.Border + halfHeight
}

// HighestY is the largest legal centre Y for a body of the given half height.
func (p Playfield) HighestY(halfHeight float64) float64 {
	return p.Height - p.Border - halfHeight
}

// ClampY pins y into the legal vertical range for the given half height.
func (p Playfield) ClampY(y, halfHeight float64) float64 {
	return Clamp(y, p.LowestY(halfHeight), p.HighestY(halfHeight))
}

// OutsideY reports whether y has left the legal vertical range.
func (p Playfield) OutsideY(y, halfHeight float64) bool {
	return y < p.LowestY(halfHeight) || y > p.HighestY(halfHeight)
}

// OutsideX reports whether x has left [0, Width].
func (p Playfield) OutsideX(x float64) bool {
	return x < 0 || x > p.Width
}

func (p Playfield) MidX() float64 {
	return p.Width / 2
}

func (p Playfield) MidY() float64 {
	return (p.LowestY(0) + p.HighestY(0)) / 2
}

// Fits reports whether a body of the given size has room to move vertically.
func (p Playfield) Fits(width, height float64) bool {
	return width < p.Width && p.LowestY(height/2) < p.HighestY(height/2)
}

func (p Playfield) validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("playfield: size %.0fx%.0f must be positive", p.Width, p.Height)
	}
	if p.TopBarHeight < 0 || p.Border < 0 {
		return fmt.Errorf("playfield: top bar %.0f and border %.0f must not be negative", p.TopBarHeight, p.Border)
	}
	if p.LowestY(0) >= p.HighestY(0) {
		return fmt.Errorf("playfield: no vertical room between top bar %.0f, border %.0f and height %.0f", p.TopBarHeight, p.Border, p.Height)
	}
	return nil
}
