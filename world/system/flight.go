package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/world"
)

// FlightSystem integrates the plane's translational state from the
// acceleration accumulated earlier in the frame.
type FlightSystem struct{}

func NewFlightSystem() *FlightSystem {
	return &FlightSystem{}
}

func (s *FlightSystem) Update(l *world.Level, dt float32) {
	if l == nil || l.Plane.Crashed() {
		return
	}
	p := &l.Plane

	mass := p.Mass
	if l.Rider.Attached() {
		mass += l.Rider.Mass
	}
	if mass > 0 {
		p.Acceleration = p.Acceleration.Mul(1 / mass)
	}

	g := l.Tuning.Gravity
	if p.Inverse {
		g = -g
	}
	p.Acceleration[1] += g

	p.Velocity = ClampMagnitude(p.Velocity.Add(p.Acceleration.Mul(dt)), l.Tuning.PlaneVelocityLimit)
	p.Body.Pos = Advance(p.Body.Pos, p.Velocity, p.Acceleration, dt)
}

// Advance moves pos by v*dt + a*dt²/2. v is the velocity after this frame's
// acceleration has been applied, not the one the frame started with; the
// tuning depends on that ordering.
func Advance(pos, v, a mgl32.Vec2, dt float32) mgl32.Vec2 {
	return pos.Add(v.Mul(dt)).Add(a.Mul(dt * dt * 0.5))
}

// ClampMagnitude rescales v to limit when it is longer.
func ClampMagnitude(v mgl32.Vec2, limit float32) mgl32.Vec2 {
	if limit <= 0 {
		return v
	}
	if n := v.Len(); n > limit {
		return v.Mul(limit / n)
	}
	return v
}
