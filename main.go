package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "draw enemy phase and timer overlays")
	levelName := flag.String("level", "", "level prefab in prefabs/ (basename, .yaml optional)")
	seed := flag.Uint64("seed", 0, "seed for attack timer jitter (0 = random)")
	watch := flag.Bool("watch", true, "reload the level when prefab files change")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("beamwalker")

	game, err := NewGame(Options{
		Level: *levelName,
		Debug: *debug,
		Seed:  *seed,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
