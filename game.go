package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/assets"
	"github.com/milk9111/pong/common"
	"github.com/milk9111/pong/obj"
	"github.com/milk9111/pong/prefabs"
	"github.com/milk9111/pong/system"
)

type Options struct {
	SpecName string
	Seed     int64
	Debug    bool
	Watch    bool
}

type Game struct {
	opts Options

	world    *system.World
	loop     *system.Loop
	renderer *screenRenderer
	sounds   assets.Sounds
	watcher  *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	spec, cfg, err := loadSpec(opts)
	if err != nil {
		return nil, err
	}
	world, err := system.NewWorld(cfg)
	if err != nil {
		return nil, err
	}

	g := &Game{opts: opts, world: world}
	g.apply(spec)
	world.SetBounceHandler(g.bounced)

	g.loop = system.NewLoop(world, g, &keyboardInput{})
	g.loop.Debug = opts.Debug

	if opts.Watch {
		dir := watchDir(opts.SpecName)
		w, err := prefabs.NewWatcher(dir)
		if err != nil {
			log.Printf("pong: watch %s: %v (continuing without reload)", dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// watchDir is the directory holding the spec file, or the prefab directory
// when the spec is a prefab name.
func watchDir(specName string) string {
	if info, err := os.Stat(specName); err == nil && !info.IsDir() {
		return filepath.Dir(specName)
	}
	return prefabs.Dir
}

func loadSpec(opts Options) (*prefabs.GameSpec, common.Config, error) {
	spec, err := prefabs.LoadGameSpec(opts.SpecName)
	if err != nil {
		return nil, common.Config{}, err
	}
	if opts.Seed != 0 {
		seed := opts.Seed
		spec.Seed = &seed
	}
	cfg, err := spec.ToConfig()
	if err != nil {
		return nil, common.Config{}, err
	}
	return spec, cfg, nil
}

// apply rebuilds everything that depends on the spec besides the court.
func (g *Game) apply(spec *prefabs.GameSpec) {
	g.renderer = newScreenRenderer(g.world.Config, newPalette(spec.Colors))
	if err := g.sounds.Close(); err != nil {
		log.Printf("pong: %v", err)
	}
	g.sounds = assets.NewSounds(spec.Audio)
	ebiten.SetTPS(g.world.Config.TargetFPS)
}

// Present hands the frame to the screen renderer; Game is the loop's Renderer
// so a reload can swap the screen renderer underneath it.
func (g *Game) Present(w *system.World) float64 {
	return g.renderer.Present(w)
}

func (g *Game) bounced(kind obj.BounceKind) {
	if g.opts.Debug {
		log.Printf("pong: frame %d: %s bounce at (%.1f, %.1f)", g.loop.Frames(), kind, g.world.Ball.Pos.X, g.world.Ball.Pos.Y)
	}
	g.sounds.Play(kind.String())
}

func (g *Game) reloadIfChanged() {
	if g.watcher == nil {
		return
	}
	changed := false
	for _, name := range g.watcher.Drain() {
		changed = changed || prefabs.IsSpecFile(name)
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("pong: watch: %v", err)
		}
	default:
	}
	if !changed {
		return
	}

	spec, cfg, err := loadSpec(g.opts)
	if err == nil {
		err = g.world.Load(cfg)
	}
	if err != nil {
		log.Printf("pong: reload %s: %v (keeping current match)", g.opts.SpecName, err)
		return
	}
	g.apply(spec)
	log.Printf("pong: reloaded %s", g.opts.SpecName)
}

func (g *Game) Update() error {
	g.reloadIfChanged()
	if !g.loop.Step() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	pf := g.world.Config.Playfield
	return int(pf.Width), int(pf.Height)
}

func (g *Game) Close() error {
	err := g.sounds.Close()
	if g.watcher != nil {
		if werr := g.watcher.Close(); werr != nil {
			err = errors.Join(err, fmt.Errorf("close watcher: %w", werr))
		}
	}
	return err
}
