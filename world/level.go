package world

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world/component"
)

// PaletteSize is the number of colour slots a colour portal shuffles.
const PaletteSize = 4

// Level owns both bodies, all static geometry, and the flags the renderer and
// audio poll each frame. Nothing outside the level mutates physics state.
type Level struct {
	Name string

	Plane component.Plane
	Rider component.Rider

	Obstacles []component.Obstacle
	Boosts    []component.BoostPad
	Portals   []component.Portal
	GoalLine  geom.OrientedRect

	AtmosphereDensity float32
	ScreenWidth       float32
	ScreenHeight      float32
	// WrapEdges sends bodies leaving the top or bottom of the screen to the
	// opposite edge. Without it the screen edges are crash bounds.
	WrapEdges bool

	Camera   component.Camera
	Input    component.Input
	Tuning   tuning.Physics
	Emitters [component.ParticleKindCount]component.Emitter

	ColorsShuffled bool
	Palette        [PaletteSize]int

	GameOver bool
	GameWon  bool
	Paused   bool

	EditingNow       bool
	EditingAvailable bool

	Frame   int
	Elapsed float32

	events    EventQueue
	scheduler *Scheduler
	spawn     *spawnState
}

type spawnState struct {
	plane  component.Plane
	rider  component.Rider
	camera component.Camera
}

// NewLevel returns an empty level using the given tuning.
func NewLevel(t tuning.Physics) *Level {
	l := &Level{
		Tuning:    t,
		scheduler: NewScheduler(),
	}
	for i := range l.Emitters {
		l.Emitters[i].Kind = component.ParticleKind(i)
	}
	l.resetPalette()
	return l
}

// AddSystem appends a system to the update order.
func (l *Level) AddSystem(s System) {
	if l == nil {
		return
	}
	if l.scheduler == nil {
		l.scheduler = NewScheduler()
	}
	l.scheduler.Add(s)
}

func (l *Level) Systems() []System {
	if l == nil || l.scheduler == nil {
		return nil
	}
	return l.scheduler.Systems()
}

// Update advances the simulation by dt seconds. Paused and editing levels do
// not move at all.
func (l *Level) Update(dt float32) {
	if l == nil || l.Paused || l.EditingNow || dt <= 0 {
		return
	}
	l.events.flush()
	l.Frame++
	l.Elapsed += dt
	if l.scheduler != nil {
		l.scheduler.Update(l, dt)
	}
}

// Step applies one frame of player input and advances the level. Restart and
// pause are handled here so recorded input replays the same way.
func (l *Level) Step(in component.Input, dt float32) {
	if l == nil {
		return
	}
	if in.Restart {
		l.Reset()
	}
	if in.Pause && !l.EditingNow {
		l.Paused = !l.Paused
	}
	l.Input = in
	l.Update(dt)
}

// Events returns the level event queue.
func (l *Level) Events() *EventQueue {
	if l == nil {
		return nil
	}
	return &l.events
}

// Emit queues an event for this frame.
func (l *Level) Emit(kind component.EventKind, at mgl32.Vec2) {
	if l == nil {
		return
	}
	l.events.Push(component.Event{Kind: kind, Pos: at})
}

func (l *Level) Emitter(kind component.ParticleKind) *component.Emitter {
	if l == nil || kind < 0 || kind >= component.ParticleKindCount {
		return nil
	}
	return &l.Emitters[kind]
}

// SaveSpawn records the current bodies and camera as the state Reset returns to.
func (l *Level) SaveSpawn() {
	if l == nil {
		return
	}
	l.spawn = &spawnState{plane: l.Plane, rider: l.Rider, camera: l.Camera}
}

// Reset puts the bodies back at the saved spawn and clears the run flags.
// Geometry is left as it is so editor changes survive a test run.
func (l *Level) Reset() {
	if l == nil {
		return
	}
	if l.spawn != nil {
		l.Plane = l.spawn.plane
		l.Rider = l.spawn.rider
		l.Camera = l.spawn.camera
	}
	l.GameOver = false
	l.GameWon = false
	l.Paused = false
	l.ColorsShuffled = false
	l.resetPalette()
	l.Input = component.Input{}
	l.Frame = 0
	l.Elapsed = 0
	for i := range l.Emitters {
		l.Emitters[i] = component.Emitter{Kind: component.ParticleKind(i)}
	}
	l.events.flush()
}

func (l *Level) resetPalette() {
	for i := range l.Palette {
		l.Palette[i] = i
	}
}

// AddObstacle appends an obstacle and returns its index.
func (l *Level) AddObstacle(o component.Obstacle) int {
	l.Obstacles = append(l.Obstacles, o)
	return len(l.Obstacles) - 1
}

func (l *Level) AddBoost(b component.BoostPad) int {
	l.Boosts = append(l.Boosts, b)
	return len(l.Boosts) - 1
}

func (l *Level) AddPortal(p component.Portal) int {
	l.Portals = append(l.Portals, p)
	return len(l.Portals) - 1
}

// RemoveObstacle deletes the obstacle at i, shifting later ones down so the
// remaining order is unchanged.
func (l *Level) RemoveObstacle(i int) bool {
	if i < 0 || i >= len(l.Obstacles) {
		return false
	}
	l.Obstacles = slices.Delete(l.Obstacles, i, i+1)
	return true
}

func (l *Level) RemoveBoost(i int) bool {
	if i < 0 || i >= len(l.Boosts) {
		return false
	}
	l.Boosts = slices.Delete(l.Boosts, i, i+1)
	return true
}

func (l *Level) RemovePortal(i int) bool {
	if i < 0 || i >= len(l.Portals) {
		return false
	}
	l.Portals = slices.Delete(l.Portals, i, i+1)
	return true
}

// ScreenBounds returns the crash strips just above and below the visible
// screen, positioned in camera space.
func (l *Level) ScreenBounds() (top, bottom geom.OrientedRect) {
	thick := l.Tuning.BoundThickness
	x := l.Camera.X - thick
	w := l.ScreenWidth + 2*thick
	top = geom.NewRect(x, -thick, w, thick)
	bottom = geom.NewRect(x, l.ScreenHeight, w, thick)
	return top, bottom
}
