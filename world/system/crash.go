package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// CrashPlane ends the plane's flight at the given contact point. An attached
// rider is ejected first so it inherits the plane's pre-crash velocity.
func CrashPlane(l *world.Level, at mgl32.Vec2) {
	if l == nil || l.Plane.Crashed() {
		return
	}
	if l.Rider.Attached() {
		ChangeRiderState(l, riderStateDetached)
	}

	p := &l.Plane
	p.CrashBucket = component.CrashBucketFor(p.Velocity.Len(), l.Tuning.PlaneVelocityLimit)
	p.Velocity = mgl32.Vec2{}
	p.Acceleration = mgl32.Vec2{}
	p.State = component.PlaneCrashed
	p.CrashPosition = at
	p.CrashElapsed = 0
	p.WreckVelocityY = 0
	p.WreckResting = false

	if e := l.Emitter(component.ParticlePlaneCrash); e != nil {
		e.Active = true
		e.Fired = false
		e.Origin = at
	}
	l.Emit(component.EventPlaneCrash, at)
}

// CrashRider ends the run. During an editor test run the level is reset and
// handed back to the editor instead. A finished run takes no further crashes.
func CrashRider(l *world.Level, at mgl32.Vec2) {
	if l == nil || l.GameOver || l.Rider.Crashed() {
		return
	}
	if l.EditingAvailable {
		ReturnToEditor(l, at)
		return
	}

	l.Rider.CrashPosition = at
	ChangeRiderState(l, riderStateCrashed)
	if e := l.Emitter(component.ParticleRiderCrash); e != nil {
		e.Active = true
		e.Fired = false
		e.Origin = at
	}
	l.GameOver = true
	l.GameWon = false
	l.Emit(component.EventRiderCrash, at)
}

// ReturnToEditor resets the level and switches it back to edit mode. The
// event is queued after the reset so it survives the flush.
func ReturnToEditor(l *world.Level, at mgl32.Vec2) {
	if l == nil {
		return
	}
	l.Reset()
	l.EditingNow = true
	l.Emit(component.EventEditorReentry, at)
}

// CollisionSystem checks both bodies against obstacles and, when the level
// does not wrap, against the screen bounds.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Update(l *world.Level, dt float32) {
	if l == nil {
		return
	}

	if !l.Plane.Crashed() {
		if at, hit := planeHit(l); hit {
			CrashPlane(l, at)
		}
	}

	if !l.GameOver && !l.Rider.Crashed() {
		if at, hit := riderHit(l); hit {
			CrashRider(l, at)
		}
	}
}

func planeHit(l *world.Level) (mgl32.Vec2, bool) {
	body := l.Plane.Body
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		if !o.CollidesWithPlane {
			continue
		}
		if at, hit := geom.RectsColliding(body, o.Body); hit {
			return at, true
		}
	}
	return boundsHit(l, body)
}

func riderHit(l *world.Level) (mgl32.Vec2, bool) {
	body := l.Rider.Body
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		if !o.CollidesWithRider {
			continue
		}
		if at, hit := geom.RectsColliding(body, o.Body); hit {
			return at, true
		}
	}
	return boundsHit(l, body)
}

func boundsHit(l *world.Level, body geom.OrientedRect) (mgl32.Vec2, bool) {
	if l.WrapEdges || l.ScreenHeight <= 0 {
		return mgl32.Vec2{}, false
	}
	top, bottom := l.ScreenBounds()
	if at, hit := geom.RectsColliding(body, top); hit {
		return at, true
	}
	return geom.RectsColliding(body, bottom)
}
