package system

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// BoostSystem adds boost pad pushes and engine thrust to the plane's
// acceleration. It runs after AerodynamicsSystem and before FlightSystem.
type BoostSystem struct{}

func NewBoostSystem() *BoostSystem {
	return &BoostSystem{}
}

// BoostVector is the push a pad at angle deg applies. Pad angles turn
// counter-clockwise on screen, so y is negated.
func BoostVector(deg, power float32) mgl32.Vec2 {
	sin, cos := math32.Sincos(common.Rad(deg))
	return mgl32.Vec2{power * cos, -power * sin}
}

func (s *BoostSystem) Update(l *world.Level, dt float32) {
	if l == nil || l.Plane.Crashed() {
		return
	}
	p := &l.Plane
	trail := l.Emitter(component.ParticleBoostTrail)
	trail.Active = false

	for i := range l.Boosts {
		b := &l.Boosts[i]
		at, hit := geom.RectsColliding(p.Body, b.Body)
		if !hit {
			continue
		}
		p.Acceleration = p.Acceleration.Add(BoostVector(b.BoostAngle, b.BoostPower))
		trail.Active = true
		trail.Origin = p.Body.Center()
		l.Emit(component.EventBoost, at)
	}

	if l.Rider.Attached() && l.Input.Boost && l.Tuning.PlaneThrust != 0 {
		sin, cos := math32.Sincos(common.Rad(p.Body.Angle))
		p.Acceleration = p.Acceleration.Add(mgl32.Vec2{cos, sin}.Mul(l.Tuning.PlaneThrust))
		trail.Active = true
		trail.Origin = p.Body.Center()
	}
}
