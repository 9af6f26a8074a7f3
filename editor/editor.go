package editor

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/levels"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
	"github.com/milk9111/paperrider/world/system"
)

var ErrIndexOutOfRange = errors.New("editor: index out of range")

// Kind is the type of geometry a Selection points at.
type Kind int

const (
	KindPlane Kind = iota
	KindGoal
	KindObstacle
	KindBoost
	KindPortal
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindGoal:
		return "goal"
	case KindObstacle:
		return "obstacle"
	case KindBoost:
		return "boost"
	case KindPortal:
		return "portal"
	}
	return "unknown"
}

type Selection struct {
	Kind  Kind
	Index int
}

// Editor edits a level in place. While editing, the level does not simulate;
// a test run plays the level from its spawn and drops back into the editor
// when the rider crashes or reaches the goal.
type Editor struct {
	Level *world.Level
	Path  string

	picker *Picker
	dirty  bool
}

func New(l *world.Level, path string) *Editor {
	return &Editor{Level: l, Path: path}
}

// Enter resets the level to its spawn and starts editing.
func (e *Editor) Enter() {
	if e == nil || e.Level == nil {
		return
	}
	e.Level.Reset()
	e.Level.EditingNow = true
	e.Level.EditingAvailable = true
	e.picker = nil
}

// TestPlay runs the level from its spawn with the editor still available.
func (e *Editor) TestPlay() {
	if e == nil || e.Level == nil {
		return
	}
	e.Level.Reset()
	e.Level.EditingNow = false
	e.Level.EditingAvailable = true
}

// Leave stops editing and plays the level for real.
func (e *Editor) Leave() {
	if e == nil || e.Level == nil {
		return
	}
	e.Level.Reset()
	e.Level.EditingNow = false
	e.Level.EditingAvailable = false
}

func (e *Editor) Editing() bool {
	return e != nil && e.Level != nil && e.Level.EditingNow
}

// Dirty reports whether there are unsaved changes.
func (e *Editor) Dirty() bool {
	return e != nil && e.dirty
}

// Add places new geometry and returns its selection.
func (e *Editor) Add(kind Kind, r geom.OrientedRect) (Selection, error) {
	l := e.Level
	var sel Selection
	switch kind {
	case KindObstacle:
		sel = Selection{Kind: kind, Index: l.AddObstacle(component.Obstacle{Body: r, CollidesWithPlane: true, CollidesWithRider: true})}
	case KindBoost:
		sel = Selection{Kind: kind, Index: l.AddBoost(component.BoostPad{Body: r, BoostPower: 500})}
	case KindPortal:
		sel = Selection{Kind: kind, Index: l.AddPortal(component.Portal{Body: r, Kind: component.PortalGravityInvert, Enable: true})}
	case KindGoal:
		l.GoalLine = r
		sel = Selection{Kind: kind}
	default:
		return Selection{}, fmt.Errorf("editor: cannot add %s", kind)
	}
	e.changed()
	return sel, nil
}

// Remove deletes geometry. Later items of the same kind shift down by one.
func (e *Editor) Remove(sel Selection) error {
	l := e.Level
	ok := false
	switch sel.Kind {
	case KindObstacle:
		ok = l.RemoveObstacle(sel.Index)
	case KindBoost:
		ok = l.RemoveBoost(sel.Index)
	case KindPortal:
		ok = l.RemovePortal(sel.Index)
	case KindGoal:
		l.GoalLine = geom.OrientedRect{}
		ok = true
	default:
		return fmt.Errorf("editor: cannot remove %s", sel.Kind)
	}
	if !ok {
		return fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, sel.Kind, sel.Index)
	}
	e.changed()
	return nil
}

// Move shifts the selection by delta.
func (e *Editor) Move(sel Selection, delta mgl32.Vec2) error {
	return e.edit(sel, func(r *geom.OrientedRect) {
		r.Pos = r.Pos.Add(delta)
	})
}

// Rotate turns the selection by deg about its centre. The plane always
// spawns level and cannot be rotated.
func (e *Editor) Rotate(sel Selection, deg float32) error {
	if sel.Kind == KindPlane {
		return fmt.Errorf("editor: cannot rotate %s", sel.Kind)
	}
	return e.edit(sel, func(r *geom.OrientedRect) {
		r.Angle = common.WrapDegrees(r.Angle + deg)
	})
}

// Resize grows the selection by delta, keeping its top-left corner. Sizes
// never drop below one unit.
func (e *Editor) Resize(sel Selection, delta mgl32.Vec2) error {
	return e.edit(sel, func(r *geom.OrientedRect) {
		r.Size = mgl32.Vec2{
			max(r.Size.X()+delta.X(), 1),
			max(r.Size.Y()+delta.Y(), 1),
		}
	})
}

// SetBoost changes a boost pad's direction and strength.
func (e *Editor) SetBoost(i int, angle, power float32) error {
	if i < 0 || i >= len(e.Level.Boosts) {
		return fmt.Errorf("%w: boost %d", ErrIndexOutOfRange, i)
	}
	e.Level.Boosts[i].BoostAngle = common.WrapDegrees(angle)
	e.Level.Boosts[i].BoostPower = power
	e.changed()
	return nil
}

// SetPortal changes what a portal does and the state it sets.
func (e *Editor) SetPortal(i int, kind component.PortalKind, enable bool) error {
	if i < 0 || i >= len(e.Level.Portals) {
		return fmt.Errorf("%w: portal %d", ErrIndexOutOfRange, i)
	}
	e.Level.Portals[i].Kind = kind
	e.Level.Portals[i].Enable = enable
	e.changed()
	return nil
}

// SetObstacleFlags sets what an obstacle collides with and whether it is a
// triangle.
func (e *Editor) SetObstacleFlags(i int, plane, rider, triangle bool) error {
	if i < 0 || i >= len(e.Level.Obstacles) {
		return fmt.Errorf("%w: obstacle %d", ErrIndexOutOfRange, i)
	}
	o := &e.Level.Obstacles[i]
	o.CollidesWithPlane = plane
	o.CollidesWithRider = rider
	o.Body.Triangle = triangle
	e.changed()
	return nil
}

// Pick returns the geometry under a world point.
func (e *Editor) Pick(point mgl32.Vec2) (Selection, bool) {
	if e.picker == nil {
		e.picker = NewPicker(e.Level)
	}
	return e.picker.Pick(point)
}

// Save writes the level to the editor's path.
func (e *Editor) Save() error {
	if e.Path == "" {
		return errors.New("editor: no save path")
	}
	if err := levels.Save(e.Path, levels.FromLevel(e.Level)); err != nil {
		return err
	}
	e.dirty = false
	log.Printf("editor: saved %s", e.Path)
	return nil
}

func (e *Editor) edit(sel Selection, fn func(r *geom.OrientedRect)) error {
	r, err := e.rect(sel)
	if err != nil {
		return err
	}
	fn(r)
	if sel.Kind == KindPlane {
		e.respawn()
	}
	e.changed()
	return nil
}

func (e *Editor) rect(sel Selection) (*geom.OrientedRect, error) {
	l := e.Level
	switch sel.Kind {
	case KindPlane:
		return &l.Plane.Body, nil
	case KindGoal:
		return &l.GoalLine, nil
	case KindObstacle:
		if sel.Index >= 0 && sel.Index < len(l.Obstacles) {
			return &l.Obstacles[sel.Index].Body, nil
		}
	case KindBoost:
		if sel.Index >= 0 && sel.Index < len(l.Boosts) {
			return &l.Boosts[sel.Index].Body, nil
		}
	case KindPortal:
		if sel.Index >= 0 && sel.Index < len(l.Portals) {
			return &l.Portals[sel.Index].Body, nil
		}
	}
	return nil, fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, sel.Kind, sel.Index)
}

// respawn makes the edited plane the new spawn, rider seated on it.
func (e *Editor) respawn() {
	l := e.Level
	system.SeatRider(&l.Plane, &l.Rider, l.Tuning.RiderSeatSink)
	l.Plane.RenderZone = system.RenderZoneFor(l.Plane.Body, &l.Tuning)
	l.Rider.RenderZone = system.RenderZoneFor(l.Rider.Body, &l.Tuning)
	l.SaveSpawn()
}

func (e *Editor) changed() {
	e.dirty = true
	e.picker = nil
}
