package obj

import (
	"math/rand"
	"testing"

	"github.com/milk9111/pong/common"
)

func testConfig() common.Config {
	cfg := common.DefaultConfig()
	cfg.Left = common.Bindings{Down: "D", Up: "U", Serve: "S"}
	cfg.Right = common.Bindings{Down: "J", Up: "K", Serve: "L"}
	return cfg
}

func newCourt(t *testing.T, cfg common.Config) (*Paddle, *Paddle, *Ball, *ServeQueue) {
	t.Helper()
	serves := &ServeQueue{}
	left, err := NewPaddle(cfg, common.SideLeft, serves)
	if err != nil {
		t.Fatalf("left paddle: %v", err)
	}
	right, err := NewPaddle(cfg, common.SideRight, serves)
	if err != nil {
		t.Fatalf("right paddle: %v", err)
	}
	ball, err := NewBall(cfg, []*Paddle{left, right}, left, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		t.Fatalf("ball: %v", err)
	}
	return left, right, ball, serves
}

func TestPaddleMovesByKeyDown(t *testing.T) {
	cfg := testConfig()
	p, err := NewPaddle(cfg, common.SideLeft, nil)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}
	p.Pos.Y = 240

	p.HandleKeyDown("D")
	p.Update(100)

	if p.Pos.Y != 315 {
		t.Fatalf("expected centre y 315, got %v", p.Pos.Y)
	}
	if p.Pos.X != cfg.PaddleX(common.SideLeft) {
		t.Fatalf("paddle x moved to %v", p.Pos.X)
	}
}

func TestPaddleKeyRelease(t *testing.T) {
	cfg := testConfig()
	speed := cfg.PaddleSpeed

	cases := []struct {
		name string
		down []common.Key
		up   []common.Key
		want float64
	}{
		{"down_then_release", []common.Key{"D"}, []common.Key{"D"}, 0},
		{"up_then_release", []common.Key{"U"}, []common.Key{"U"}, 0},
		{"both_release_first", []common.Key{"D", "U"}, []common.Key{"D"}, -speed},
		{"both_release_last_not_restored", []common.Key{"D", "U"}, []common.Key{"U"}, 0},
		{"release_never_pressed", []common.Key{"D"}, []common.Key{"U"}, speed},
		{"release_idle", nil, []common.Key{"D"}, 0},
		{"foreign_keys_ignored", []common.Key{"J", "Q"}, []common.Key{"K"}, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := NewPaddle(cfg, common.SideLeft, nil)
			if err != nil {
				t.Fatalf("NewPaddle: %v", err)
			}
			for _, k := range c.down {
				p.HandleKeyDown(k)
			}
			for _, k := range c.up {
				p.HandleKeyUp(k)
			}
			if p.Velocity() != c.want {
				t.Fatalf("expected velocity %v, got %v", c.want, p.Velocity())
			}
		})
	}
}

func TestPaddleStaysInBounds(t *testing.T) {
	cfg := testConfig()
	durations := []float64{0, 1, 16.6, 100, 1000, 1e6}
	starts := []float64{82, 100, 262.5, 443}

	for _, key := range []common.Key{"D", "U", ""} {
		for _, start := range starts {
			for _, dt := range durations {
				p, err := NewPaddle(cfg, common.SideRight, nil)
				if err != nil {
					t.Fatalf("NewPaddle: %v", err)
				}
				p.Keys = common.Bindings{Down: "D", Up: "U", Serve: "S"}
				p.Pos.Y = start
				p.HandleKeyDown(key)
				p.Update(dt)
				if p.Pos.Y < p.LowestY() || p.Pos.Y > p.HighestY() {
					t.Fatalf("key=%q start=%v dt=%v: y %v outside [%v, %v]", key, start, dt, p.Pos.Y, p.LowestY(), p.HighestY())
				}
			}
		}
	}
}

func TestPaddleStopsExactlyAtWall(t *testing.T) {
	cfg := testConfig()
	p, err := NewPaddle(cfg, common.SideLeft, nil)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}
	p.HandleKeyUp("U")
	p.HandleKeyDown("U")
	p.Update(10000)

	want := cfg.Playfield.TopBarHeight + cfg.Playfield.Border + cfg.PaddleHeight/2
	if p.Pos.Y != want {
		t.Fatalf("expected paddle pinned at %v, got %v", want, p.Pos.Y)
	}
	if p.Velocity() != -cfg.PaddleSpeed {
		t.Fatalf("clamping must not change velocity, got %v", p.Velocity())
	}
}

func TestPaddleServeKey(t *testing.T) {
	cfg := testConfig()
	serves := &ServeQueue{}
	left, err := NewPaddle(cfg, common.SideLeft, serves)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}

	left.HandleKeyDown("S")
	if serves.Len() != 0 {
		t.Fatalf("pressing serve must not request a serve")
	}
	left.HandleKeyUp("L")
	if serves.Len() != 0 {
		t.Fatalf("other player's serve key must be ignored")
	}
	left.HandleKeyUp("S")

	reqs := serves.Drain()
	if len(reqs) != 1 || reqs[0].Paddle != left {
		t.Fatalf("expected one request from left paddle, got %v", reqs)
	}
	if serves.Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestNewPaddleRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.PaddleSpeed = 0
	if _, err := NewPaddle(cfg, common.SideLeft, nil); err == nil {
		t.Fatalf("expected error for zero paddle speed")
	}
}
