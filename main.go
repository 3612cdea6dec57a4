package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pong/prefabs"
)

func main() {
	specName := flag.String("config", prefabs.DefaultGameSpec, "game spec: a yaml path or a prefab name")
	seed := flag.Int64("seed", 0, "override the spec's random seed (0 keeps it)")
	debug := flag.Bool("debug", false, "log serves, bounces and shutdown")
	watch := flag.Bool("watch", false, "rebuild the match when the game spec changes on disk")
	flag.Parse()

	game, err := NewGame(Options{
		SpecName: *specName,
		Seed:     *seed,
		Debug:    *debug,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	pf := game.world.Config.Playfield
	ebiten.SetWindowSize(int(pf.Width), int(pf.Height))
	ebiten.SetWindowTitle("pong")
	// Closing the window becomes a Quit event so the loop ends the game itself.
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
