package obj

import "github.com/milk9111/pong/common"

// EventType is the kind of a raw input event.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
	EventKeyUp
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// InputEvent is one discrete event from an input source. Key is empty for
// EventQuit.
type InputEvent struct {
	Type EventType
	Key  common.Key
}

func Quit() InputEvent {
	return InputEvent{Type: EventQuit}
}

func KeyDown(k common.Key) InputEvent {
	return InputEvent{Type: EventKeyDown, Key: k}
}

func KeyUp(k common.Key) InputEvent {
	return InputEvent{Type: EventKeyUp, Key: k}
}

// ServeRequest is emitted when a player releases their serve key.
type ServeRequest struct {
	Paddle *Paddle
}

// ServeQueue is a FIFO of serve requests raised while input is routed and
// drained into the ball before it updates.
type ServeQueue struct {
	items []ServeRequest
}

// Push adds a request.
func (q *ServeQueue) Push(req ServeRequest) {
	if q == nil {
		return
	}
	q.items = append(q.items, req)
}

// Drain returns all requests and clears the queue.
func (q *ServeQueue) Drain() []ServeRequest {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *ServeQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
