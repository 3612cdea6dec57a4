package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/obj"
)

// scriptDispatch is appended to every input script. Scripts define
// `events := func(frame) { ... }` returning an array of event strings:
// "down:<key>", "up:<key>" or "quit".
const scriptDispatch = `
__out := events(__frame)
`

// ScriptInput is an InputSource driven by a tengo script, used for headless
// runs and replays.
type ScriptInput struct {
	compiled *tengo.Compiled
	frame    int
	failed   bool
}

func NewScriptInput(src []byte) (*ScriptInput, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), scriptDispatch...))
	_ = script.Add("__frame", 0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &ScriptInput{compiled: compiled}, nil
}

// Frame is the index of the next frame to be polled.
func (s *ScriptInput) Frame() int {
	return s.frame
}

// Poll runs the script for the current frame. A failing script ends the game.
func (s *ScriptInput) Poll() []obj.InputEvent {
	frame := s.frame
	s.frame++
	if s.failed {
		return []obj.InputEvent{obj.Quit()}
	}

	events, err := s.run(frame)
	if err != nil {
		log.Printf("sim: script frame %d: %v", frame, err)
		s.failed = true
		return []obj.InputEvent{obj.Quit()}
	}
	return events
}

func (s *ScriptInput) run(frame int) (events []obj.InputEvent, err error) {
	// tengo panics on some runtime faults, such as integer division by zero.
	defer func() {
		if r := recover(); r != nil {
			events, err = nil, fmt.Errorf("script: %v", r)
		}
	}()

	if err := s.compiled.Set("__frame", frame); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, err
	}

	raw := s.compiled.Get("__out").Array()
	events = make([]obj.InputEvent, 0, len(raw))
	for _, item := range raw {
		str, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("event %v is not a string", item)
		}
		ev, err := ParseEvent(str)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

// ParseEvent reads "down:<key>", "up:<key>" or "quit".
func ParseEvent(s string) (obj.InputEvent, error) {
	s = strings.TrimSpace(s)
	if s == "quit" {
		return obj.Quit(), nil
	}
	kind, key, ok := strings.Cut(s, ":")
	if !ok || key == "" {
		return obj.InputEvent{}, fmt.Errorf("malformed event %q", s)
	}
	switch kind {
	case "down":
		return obj.KeyDown(common.Key(key)), nil
	case "up":
		return obj.KeyUp(common.Key(key)), nil
	}
	return obj.InputEvent{}, fmt.Errorf("unknown event kind %q", kind)
}
