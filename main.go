package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/paperrider/levels"
)

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (or a path to a .map file)")
	seed := flag.Uint64("seed", 1, "seed for particles and colour shuffles")
	edit := flag.Bool("edit", false, "open the level in the editor")
	debug := flag.Bool("debug", false, "draw hitboxes and log gameplay events")
	watch := flag.Bool("watch", false, "reload tuning and level files when they change on disk")
	record := flag.String("record", "", "write a replay of the session to this path on exit")
	replayPath := flag.String("replay", "", "play back a recorded replay")
	flag.Parse()

	game, err := NewGame(Options{
		Level:  *levelName,
		Seed:   *seed,
		Edit:   *edit,
		Debug:  *debug,
		Watch:  *watch,
		Record: *record,
		Replay: *replayPath,
	})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := game.LayoutF(0, 0)
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowTitle("paper rider")

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("close: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
