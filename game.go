package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/paperrider/editor"
	"github.com/milk9111/paperrider/levels"
	"github.com/milk9111/paperrider/replay"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world"
)

const (
	baseWidth  = 800
	baseHeight = 600

	maxFrameDt = 1.0 / 20

	// pollInterval is how many frames pass between modification-time checks
	// when file watching is unavailable.
	pollInterval = 30
)

type Options struct {
	Level  string
	Seed   uint64
	Edit   bool
	Debug  bool
	Watch  bool
	Record string
	Replay string
}

type Game struct {
	opts    Options
	physics tuning.Physics
	level   *world.Level

	editor   *editor.Editor
	selected *editor.Selection

	watcher  *tuning.Watcher
	poller   *tuning.Poller
	ticks    int
	recorder *replay.Recorder
	player   *replay.Player
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}

	if opts.Replay != "" {
		rp, err := replay.Load(opts.Replay)
		if err != nil {
			return nil, err
		}
		g.opts.Level = rp.Level
		g.opts.Seed = rp.Seed
		g.player = replay.NewPlayer(rp)
		g.opts.Edit = false
	}
	if g.opts.Level == "" {
		g.opts.Level = levels.DefaultLevel
	}

	p, err := tuning.LoadPhysics()
	if err != nil {
		log.Printf("tuning: %v; using defaults", err)
	}
	g.physics = p

	if err := g.loadLevel(); err != nil {
		return nil, err
	}

	if opts.Record != "" && g.player == nil {
		g.recorder = replay.NewRecorder(g.opts.Level, g.opts.Seed)
	}

	if g.opts.Edit {
		g.editor = editor.New(g.level, editPath(g.opts.Level))
		g.editor.Enter()
	}

	if opts.Watch {
		w, err := tuning.NewWatcher(tuning.Dir, "levels")
		if err != nil {
			log.Printf("watch: %v; polling for changes instead", err)
			g.startPolling()
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadLevel() error {
	m, err := levels.Load(g.opts.Level)
	if err != nil {
		return err
	}
	l, err := levels.Build(g.opts.Level, m, g.physics, g.opts.Seed)
	if err != nil {
		return err
	}
	g.level = l
	if g.editor != nil {
		editing := g.editor.Editing()
		g.editor = editor.New(l, g.editor.Path)
		if editing {
			g.editor.Enter()
		}
		g.selected = nil
	}
	return nil
}

// editPath is where the editor saves: the named file when it exists on disk,
// otherwise the matching file under levels/.
func editPath(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return levels.DiskPath(filepath.Base(name))
}

func (g *Game) Update() error {
	g.applyReloads()

	if g.updateEditor() {
		return nil
	}

	if g.player != nil {
		f, ok := g.player.Next()
		if !ok {
			return nil
		}
		g.level.Step(f.Input, f.Dt)
		g.logEvents()
		return nil
	}

	in := sampleInput()
	dt := frameDt()
	g.recorder.Record(dt, in)
	g.level.Step(in, dt)
	g.logEvents()
	return nil
}

// startPolling tracks the physics file and the current level by
// modification time, for when fsnotify is unavailable.
func (g *Game) startPolling() {
	g.poller = tuning.NewPoller()
	g.poller.Track(tuning.PhysicsFile, tuning.ModTime)
	g.poller.Track(g.opts.Level, levels.ModTime)
}

// applyReloads picks up edited tuning and map files between frames.
func (g *Game) applyReloads() {
	g.ticks++
	if g.poller != nil && g.ticks%pollInterval == 0 {
		for _, c := range g.poller.Poll() {
			g.reload(c)
		}
	}
	if g.watcher == nil {
		return
	}
	for {
		select {
		case c, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(c)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) reload(c tuning.Change) {
	switch c.Kind {
	case tuning.ChangePhysics:
		p, err := tuning.LoadPhysics()
		if err != nil {
			log.Printf("tuning: reload %s: %v", c.Path, err)
			return
		}
		g.physics = p
		g.level.Tuning = p
		log.Printf("tuning: reloaded %s", c.Path)
	case tuning.ChangeMap:
		if filepath.Base(c.Path) != filepath.Base(g.opts.Level) {
			return
		}
		if g.editor != nil && g.editor.Dirty() {
			log.Printf("levels: %s changed on disk; keeping unsaved edits", c.Path)
			return
		}
		if err := g.loadLevel(); err != nil {
			log.Printf("levels: reload %s: %v", c.Path, err)
			return
		}
		log.Printf("levels: reloaded %s", c.Path)
	}
}

func (g *Game) logEvents() {
	events := g.level.Events().Drain()
	if !g.opts.Debug {
		return
	}
	for _, evt := range events {
		log.Printf("frame %d: %s at (%.1f, %.1f)", g.level.Frame, evt.Kind, evt.Pos.X(), evt.Pos.Y())
	}
}

func frameDt() float32 {
	tps := ebiten.ActualTPS()
	if tps <= 0 {
		tps = float64(ebiten.TPS())
	}
	if tps <= 0 {
		return 1.0 / 60
	}
	return min(float32(1/tps), maxFrameDt)
}

// Close stops the file watcher and writes the recording, if any.
func (g *Game) Close() error {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
	if g.recorder == nil || g.recorder.Len() == 0 {
		return nil
	}
	if err := replay.Save(g.opts.Record, g.recorder.Replay()); err != nil {
		return err
	}
	log.Printf("replay: saved %d frames to %s", g.recorder.Len(), g.opts.Record)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawLevel(screen, g.level, g.opts.Debug)
	if g.editor != nil && g.editor.Editing() {
		drawSelection(screen, g.level, g.selected)
	}
	drawHUD(screen, g.level, g.hudLine())
}

func (g *Game) hudLine() string {
	s := fmt.Sprintf("FPS: %.2f  %s", ebiten.ActualFPS(), g.level.Name)
	switch {
	case g.editor != nil && g.editor.Editing():
		s += "  [edit]"
		if g.editor.Dirty() {
			s += "*"
		}
	case g.player != nil:
		s += "  [replay]"
	case g.recorder != nil:
		s += fmt.Sprintf("  [rec %d]", g.recorder.Len())
	}
	return s
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if g.level == nil || g.level.ScreenWidth <= 0 || g.level.ScreenHeight <= 0 {
		return baseWidth, baseHeight
	}
	return float64(g.level.ScreenWidth), float64(g.level.ScreenHeight)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
