// Command pongsim plays a match headless, with a tengo script standing in for
// the keyboard.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/system"
)

// stepRenderer stands in for the screen: it reports a fixed frame time, logs
// the court every few frames and stops the run after a frame limit.
type stepRenderer struct {
	frameMillis float64
	every       int
	limit       int
	frames      int
	stop        context.CancelFunc
}

func (r *stepRenderer) Present(w *system.World) float64 {
	if r.every > 0 && r.frames%r.every == 0 {
		b := w.Ball
		state := "rally"
		if b.Serving() {
			state = b.Server().Side.String() + " serving"
		}
		log.Printf("frame %d: ball (%.1f, %.1f) vel (%.2f, %.2f) %s, paddles y %.1f %.1f",
			r.frames, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, state, w.Paddles[0].Pos.Y, w.Paddles[1].Pos.Y)
	}
	r.frames++
	if r.limit > 0 && r.frames >= r.limit {
		r.stop()
	}
	return r.frameMillis
}

func main() {
	specName := flag.String("config", prefabs.DefaultGameSpec, "game spec: a yaml path or a prefab name")
	scriptName := flag.String("script", "rally", "input script: a .tengo path or a prefab script name")
	frames := flag.Int("frames", 0, "stop after this many frames (0 runs until the script quits)")
	every := flag.Int("log-every", 60, "log the court every n frames (0 disables)")
	seed := flag.Int64("seed", 0, "override the spec's random seed (0 keeps it)")
	debug := flag.Bool("debug", false, "log serves, bounces and shutdown")
	flag.Parse()

	spec, err := prefabs.LoadGameSpec(*specName)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		spec.Seed = seed
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		log.Fatal(err)
	}

	src, err := prefabs.LoadScript(*scriptName)
	if err != nil {
		log.Fatal(err)
	}
	input, err := system.NewScriptInput(src)
	if err != nil {
		log.Fatal(err)
	}

	world, err := system.NewWorld(cfg)
	if err != nil {
		log.Fatal(err)
	}
	bounces := map[obj.BounceKind]int{}
	world.SetBounceHandler(func(kind obj.BounceKind) {
		bounces[kind]++
		if *debug {
			log.Printf("frame %d: %s bounce at (%.1f, %.1f)", input.Frame()-1, kind, world.Ball.Pos.X, world.Ball.Pos.Y)
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := &stepRenderer{
		frameMillis: cfg.FrameMillis(),
		every:       *every,
		limit:       *frames,
		stop:        cancel,
	}
	loop := system.NewLoop(world, renderer, input)
	loop.Debug = *debug

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("%d frames, state %s, bounces: wall %d, side %d, paddle %d",
		loop.Frames(), loop.State(),
		bounces[obj.BounceWall], bounces[obj.BounceSide], bounces[obj.BouncePaddle])
}
