// Command levelcheck loads levels headlessly and flies each one with no input to
// catch broken maps before they reach the game. With -replay it plays a
// recording instead and reports where it ended.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/paperrider/levels"
	"github.com/milk9111/paperrider/replay"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

func main() {
	frames := flag.Int("frames", 600, "frames to simulate per level")
	fps := flag.Int("fps", 60, "simulated frames per second")
	seed := flag.Uint64("seed", 1, "level seed")
	replayPath := flag.String("replay", "", "check a recorded replay instead of the levels")
	flag.Parse()

	p, err := tuning.LoadPhysics()
	if err != nil {
		log.Printf("tuning: %v; using defaults", err)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer tw.Flush()
	fmt.Fprintln(tw, "LEVEL\tFRAMES\tRESULT\tPLANE\tRIDER")

	if *replayPath != "" {
		rp, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatal(err)
		}
		l, err := build(rp.Level, p, rp.Seed)
		if err != nil {
			log.Fatal(err)
		}
		replay.Play(l, rp)
		report(tw, l)
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		names = levels.List()
	}
	failed := false
	for _, name := range names {
		l, err := build(name, p, *seed)
		if err != nil {
			fmt.Fprintf(tw, "%s\t-\terror: %v\t\t\n", name, err)
			failed = true
			continue
		}
		dt := 1 / float32(*fps)
		for i := 0; i < *frames && !l.GameOver; i++ {
			l.Step(component.Input{}, dt)
		}
		report(tw, l)
	}
	if failed {
		tw.Flush()
		os.Exit(1)
	}
}

func build(name string, p tuning.Physics, seed uint64) (*world.Level, error) {
	m, err := levels.Load(name)
	if err != nil {
		return nil, err
	}
	return levels.Build(name, m, p, seed)
}

func report(tw *tabwriter.Writer, l *world.Level) {
	result := "running"
	switch {
	case l.GameWon:
		result = "goal"
	case l.GameOver:
		result = "rider crashed"
	case l.Plane.Crashed():
		result = "plane crashed"
	}
	rider := "-"
	if l.Rider.State != nil {
		rider = l.Rider.State.Name()
	}
	fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", l.Name, l.Frame, result, l.Plane.State, rider)
}
