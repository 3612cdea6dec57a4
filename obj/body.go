package obj

import "github.com/jakecoffman/cp"

// Body is anything on the court that occupies space and advances with time.
type Body interface {
	Bounds() cp.BB
	Update(dt float64)
}

var (
	_ Body = (*Paddle)(nil)
	_ Body = (*Ball)(nil)
)
