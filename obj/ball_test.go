package obj

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pong/common"
)

// freeBall launches the ball and parks it mid-court with the given velocity
// and no recorded paddle contact.
func freeBall(t *testing.T, ball *Ball, pos, vel cp.Vector) {
	t.Helper()
	if !ball.HandleServeRequest(ball.Server()) {
		t.Fatalf("serve request from server was refused")
	}
	ball.Pos = cp.Vector{X: 320, Y: 240}
	ball.Vel = cp.Vector{}
	ball.Update(0)
	if ball.LastCollided() != nil {
		t.Fatalf("ball parked mid-court should not touch a paddle")
	}
	ball.Pos = pos
	ball.Vel = vel
}

func TestBallSitsInFrontOfServer(t *testing.T) {
	cfg := testConfig()
	left, right, ball, _ := newCourt(t, cfg)

	cases := []struct {
		name   string
		server *Paddle
		wantX  float64
	}{
		{"left", left, left.Pos.X + cfg.ServeMargin},
		{"right", right, right.Pos.X - cfg.ServeMargin},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ball.ServeTo(c.server)
			c.server.Pos.Y = 150
			ball.Update(16)
			if ball.Pos.X != c.wantX || ball.Pos.Y != 150 {
				t.Fatalf("expected ball at (%v, 150), got %v", c.wantX, ball.Pos)
			}
			if ball.Vel != (cp.Vector{}) {
				t.Fatalf("serving ball must not move on its own, vel=%v", ball.Vel)
			}
		})
	}
}

func TestBallFollowsMovingServer(t *testing.T) {
	left, _, ball, _ := newCourt(t, testConfig())

	left.HandleKeyDown(left.Keys.Down)
	for i := 0; i < 10; i++ {
		left.Update(16)
		ball.Update(16)
		if ball.Pos.Y != left.Pos.Y {
			t.Fatalf("frame %d: ball y %v, paddle y %v", i, ball.Pos.Y, left.Pos.Y)
		}
	}
}

func TestServeGating(t *testing.T) {
	cfg := testConfig()
	left, right, ball, _ := newCourt(t, cfg)

	if ball.HandleServeRequest(right) {
		t.Fatalf("non-serving paddle launched the ball")
	}
	if !ball.Serving() || ball.Server() != left || ball.Vel != (cp.Vector{}) {
		t.Fatalf("ball state changed on foreign serve request")
	}

	if !ball.HandleServeRequest(left) {
		t.Fatalf("serving paddle could not launch the ball")
	}
	if ball.Serving() {
		t.Fatalf("ball still serving after launch")
	}
	if ball.Vel.X != cfg.LaunchSpeed {
		t.Fatalf("ball on the left half should launch right at %v, got %v", cfg.LaunchSpeed, ball.Vel.X)
	}

	vel := ball.Vel
	if ball.HandleServeRequest(left) {
		t.Fatalf("second serve request launched again")
	}
	if ball.Vel != vel {
		t.Fatalf("velocity changed on repeated serve request")
	}
}

func TestServeFromRightLaunchesLeft(t *testing.T) {
	cfg := testConfig()
	_, right, ball, _ := newCourt(t, cfg)
	ball.ServeTo(right)

	if !ball.HandleServeRequest(right) {
		t.Fatalf("right paddle could not serve")
	}
	if ball.Vel.X != -cfg.LaunchSpeed {
		t.Fatalf("expected leftward launch, got %v", ball.Vel.X)
	}
}

func TestLaunchVerticalRange(t *testing.T) {
	cfg := testConfig()
	var up, down int
	for seed := int64(0); seed < 200; seed++ {
		left, right, _, _ := newCourt(t, cfg)
		ball, err := NewBall(cfg, []*Paddle{left, right}, left, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("NewBall: %v", err)
		}
		ball.HandleServeRequest(left)

		vy := math.Abs(ball.Vel.Y)
		if vy < cfg.LaunchVerticalMin || vy > cfg.LaunchVerticalMax {
			t.Fatalf("seed %d: vertical speed %v outside [%v, %v]", seed, vy, cfg.LaunchVerticalMin, cfg.LaunchVerticalMax)
		}
		if ball.Vel.Y < 0 {
			up++
		} else {
			down++
		}
	}
	if up == 0 || down == 0 {
		t.Fatalf("expected both launch signs, got up=%d down=%d", up, down)
	}
}

func TestWallBounceInvertsEveryTime(t *testing.T) {
	_, _, ball, _ := newCourt(t, testConfig())
	freeBall(t, ball, cp.Vector{X: 320, Y: 0}, cp.Vector{X: 0, Y: 0.3})
	ball.Pos.Y = ball.HighestY() + 20

	ball.Update(1)
	if ball.Vel.Y != -0.3 {
		t.Fatalf("first out-of-bounds frame: expected vy -0.3, got %v", ball.Vel.Y)
	}
	ball.Update(1)
	if ball.Vel.Y != 0.3 {
		t.Fatalf("second out-of-bounds frame: expected vy 0.3, got %v", ball.Vel.Y)
	}
}

func TestWallBounceDoesNotClamp(t *testing.T) {
	_, _, ball, _ := newCourt(t, testConfig())
	freeBall(t, ball, cp.Vector{X: 320, Y: 0}, cp.Vector{X: 0, Y: -0.5})
	ball.Pos.Y = ball.LowestY() + 1

	ball.Update(10)
	if ball.Pos.Y != ball.LowestY()-4 {
		t.Fatalf("ball should overshoot to %v, got %v", ball.LowestY()-4, ball.Pos.Y)
	}
	if ball.Vel.Y != 0.5 {
		t.Fatalf("expected vy 0.5, got %v", ball.Vel.Y)
	}
}

func TestSideEdgesBounce(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		vx   float64
	}{
		{"left_edge", 1, -0.25},
		{"right_edge", 639, 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, _, ball, _ := newCourt(t, testConfig())
			freeBall(t, ball, cp.Vector{X: c.x, Y: 240}, cp.Vector{X: c.vx, Y: 0})
			ball.Update(8)
			if ball.Vel.X != -c.vx {
				t.Fatalf("expected vx %v, got %v", -c.vx, ball.Vel.X)
			}
		})
	}
}

func TestBallHitsBottomWall(t *testing.T) {
	cfg := testConfig()
	cfg.Playfield = common.Playfield{Width: 640, Height: 480, TopBarHeight: 45, Border: 5}
	_, _, ball, _ := newCourt(t, cfg)
	freeBall(t, ball, cp.Vector{X: 320, Y: 240}, cp.Vector{X: 0.25, Y: 0.3})

	limit := 480 - 5 - cfg.BallSize/2
	for frame := 0; frame < 1000; frame++ {
		ball.Update(16)
		if ball.Pos.Y > limit {
			if ball.Vel.Y != -0.3 {
				t.Fatalf("frame %d: y=%v past %v but vy=%v", frame, ball.Pos.Y, limit, ball.Vel.Y)
			}
			if ball.Vel.X != 0.25 {
				t.Fatalf("horizontal velocity changed to %v", ball.Vel.X)
			}
			return
		}
		if ball.Vel.Y != 0.3 {
			t.Fatalf("frame %d: vy flipped before reaching the wall", frame)
		}
	}
	t.Fatalf("ball never reached the bottom wall")
}

func TestPaddleCollisionDebounce(t *testing.T) {
	_, right, ball, _ := newCourt(t, testConfig())
	var hits int
	ball.OnBounce = func(kind BounceKind) {
		if kind == BouncePaddle {
			hits++
		}
	}

	touching := cp.Vector{X: right.Pos.X - 4, Y: right.Pos.Y}
	freeBall(t, ball, touching, cp.Vector{X: 0.01, Y: 0})

	for frame := 0; frame < 20; frame++ {
		ball.Update(1)
		if !ball.Bounds().Intersects(right.Bounds()) {
			t.Fatalf("frame %d: ball left the paddle too early", frame)
		}
	}
	if hits != 1 || ball.Vel.X != -0.01 {
		t.Fatalf("expected one bounce while in contact, got %d (vx=%v)", hits, ball.Vel.X)
	}
	if ball.LastCollided() != right {
		t.Fatalf("expected right paddle recorded, got %v", ball.LastCollided())
	}

	ball.Pos = cp.Vector{X: 320, Y: 240}
	ball.Update(1)
	if ball.LastCollided() != nil {
		t.Fatalf("separation should clear the recorded paddle")
	}

	ball.Pos = touching
	for frame := 0; frame < 5; frame++ {
		ball.Update(1)
	}
	if hits != 2 || ball.Vel.X != 0.01 {
		t.Fatalf("expected a second single bounce, got %d (vx=%v)", hits, ball.Vel.X)
	}
}

func TestLaunchDoesNotBounceOffServer(t *testing.T) {
	left, _, ball, _ := newCourt(t, testConfig())
	if ball.LastCollided() != left {
		t.Fatalf("serving ball should already be in contact with its server")
	}

	ball.HandleServeRequest(left)
	for frame := 0; frame < 50; frame++ {
		ball.Update(1)
		if ball.Vel.X <= 0 {
			t.Fatalf("frame %d: ball turned back into the server", frame)
		}
	}
}

func TestNewBallValidation(t *testing.T) {
	cfg := testConfig()
	left, right, _, _ := newCourt(t, cfg)
	stray, err := NewPaddle(cfg, common.SideLeft, nil)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}

	bad := cfg
	bad.LaunchSpeed = 0

	cases := []struct {
		name   string
		cfg    common.Config
		server *Paddle
	}{
		{"nil_server", cfg, nil},
		{"server_not_on_court", cfg, stray},
		{"bad_config", bad, left},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewBall(c.cfg, []*Paddle{left, right}, c.server, nil); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestServeToRejectsPaddleOffCourt(t *testing.T) {
	cfg := testConfig()
	left, _, ball, _ := newCourt(t, cfg)
	stray, err := NewPaddle(cfg, common.SideRight, nil)
	if err != nil {
		t.Fatalf("NewPaddle: %v", err)
	}

	pos := ball.Pos
	if ball.ServeTo(stray) {
		t.Fatalf("ServeTo accepted a paddle that isn't on the court")
	}
	if ball.ServeTo(nil) {
		t.Fatalf("ServeTo accepted a nil paddle")
	}
	if ball.Server() != left || ball.Pos != pos {
		t.Fatalf("rejected serve changed the ball: server %s pos %v", ball.Server(), ball.Pos)
	}
}
