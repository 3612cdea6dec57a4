package obj

import "github.com/milk9111/pong/common"

// InputRouter hands raw input events to the paddles and delivers the serve
// requests they raise to the ball.
type InputRouter struct {
	paddles []*Paddle
	ball    *Ball
	serves  *ServeQueue
}

func NewInputRouter(paddles []*Paddle, ball *Ball, serves *ServeQueue) *InputRouter {
	return &InputRouter{
		paddles: append([]*Paddle(nil), paddles...),
		ball:    ball,
		serves:  serves,
	}
}

// Route applies one frame of events in order and reports whether the player
// asked to quit. Events after a quit are drained without effect. Serve
// requests reach the ball before Route returns.
func (r *InputRouter) Route(events []InputEvent) (quit bool) {
	for _, ev := range events {
		if quit {
			continue
		}
		switch ev.Type {
		case EventQuit:
			quit = true
		case EventKeyDown:
			for _, p := range r.paddles {
				p.HandleKeyDown(ev.Key)
			}
		case EventKeyUp:
			if ev.Key == common.KeyEscape {
				quit = true
				continue
			}
			for _, p := range r.paddles {
				p.HandleKeyUp(ev.Key)
			}
		}
	}

	for _, req := range r.serves.Drain() {
		if r.ball != nil {
			r.ball.HandleServeRequest(req.Paddle)
		}
	}
	return quit
}
