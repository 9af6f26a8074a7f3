package system

import (
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// RemountSystem puts a falling rider back on the plane when they touch. The
// plane picks up half the difference between the two velocities.
type RemountSystem struct{}

func NewRemountSystem() *RemountSystem {
	return &RemountSystem{}
}

func (s *RemountSystem) Update(l *world.Level, dt float32) {
	if l == nil || !l.Rider.Detached() || l.Plane.Crashed() {
		return
	}
	r, p := &l.Rider, &l.Plane
	if r.JumpElapsed <= l.Tuning.JumpCooldown {
		return
	}
	if !geom.Colliding(r.Body, p.Body) {
		return
	}

	p.Velocity = ClampMagnitude(p.Velocity.Add(r.Velocity.Sub(p.Velocity).Mul(0.5)), l.Tuning.PlaneVelocityLimit)
	ChangeRiderState(l, riderStateAttached)
	l.Emit(component.EventRemount, r.Body.Center())
}
