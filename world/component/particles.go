package component

import "github.com/go-gl/mathgl/mgl32"

type ParticleKind int

const (
	ParticleBoostTrail ParticleKind = iota
	ParticlePlaneCrash
	ParticleRiderCrash

	ParticleKindCount
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleBoostTrail:
		return "boost_trail"
	case ParticlePlaneCrash:
		return "plane_crash"
	case ParticleRiderCrash:
		return "rider_crash"
	}
	return "unknown"
}

type Particle struct {
	Pos  mgl32.Vec2
	Vel  mgl32.Vec2
	Life float32
	Size float32
}

// Emitter is one particle system. Active is raised by gameplay and polled by
// the renderer; the particle system spawns from Origin while it is set.
type Emitter struct {
	Kind      ParticleKind
	Active    bool
	Origin    mgl32.Vec2
	Particles []Particle

	// Burst emitters fire once per activation.
	Fired bool
	Carry float32
}
