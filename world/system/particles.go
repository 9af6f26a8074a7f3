package system

import (
	"math/rand/v2"
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

const maxParticles = 256

// ParticleBehavior is how one kind of emitter spawns and moves its particles.
type ParticleBehavior interface {
	Kind() component.ParticleKind
	Spawn(e *component.Emitter, rng *rand.Rand, dt float32)
	Step(p *component.Particle, dt float32)
}

type boostTrail struct{}

// Continuous emission at a fixed rate while the pad or engine is pushing.
func (boostTrail) Kind() component.ParticleKind { return component.ParticleBoostTrail }
func (boostTrail) Spawn(e *component.Emitter, rng *rand.Rand, dt float32) {
	if !e.Active {
		e.Carry = 0
		return
	}
	const rate = 60
	e.Carry += rate * dt
	for e.Carry >= 1 {
		e.Carry--
		e.Particles = append(e.Particles, component.Particle{
			Pos:  e.Origin,
			Vel:  mgl32.Vec2{-40 + rng.Float32()*20, -10 + rng.Float32()*20},
			Life: 0.4,
			Size: 2,
		})
	}
}
func (boostTrail) Step(p *component.Particle, dt float32) {
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
	p.Size += dt * 4
}

// crashBurst fires a ring of debris once per activation.
type crashBurst struct {
	kind  component.ParticleKind
	count int
	speed float32
}

func (b crashBurst) Kind() component.ParticleKind { return b.kind }
func (b crashBurst) Spawn(e *component.Emitter, rng *rand.Rand, dt float32) {
	if !e.Active {
		e.Fired = false
		return
	}
	if e.Fired {
		return
	}
	e.Fired = true
	for i := 0; i < b.count; i++ {
		a := rng.Float32() * 2 * math32.Pi
		speed := b.speed * (0.4 + 0.6*rng.Float32())
		sin, cos := math32.Sincos(a)
		e.Particles = append(e.Particles, component.Particle{
			Pos:  e.Origin,
			Vel:  mgl32.Vec2{cos * speed, sin * speed},
			Life: 0.6 + 0.4*rng.Float32(),
			Size: 3,
		})
	}
}
func (crashBurst) Step(p *component.Particle, dt float32) {
	p.Vel[1] += 300 * dt
	p.Pos = p.Pos.Add(p.Vel.Mul(dt))
}

// DefaultParticleBehaviors returns one behavior per particle kind.
func DefaultParticleBehaviors() [component.ParticleKindCount]ParticleBehavior {
	return [component.ParticleKindCount]ParticleBehavior{
		component.ParticleBoostTrail: boostTrail{},
		component.ParticlePlaneCrash: crashBurst{kind: component.ParticlePlaneCrash, count: 24, speed: 200},
		component.ParticleRiderCrash: crashBurst{kind: component.ParticleRiderCrash, count: 12, speed: 120},
	}
}

// ParticleSystem spawns and ages particles for every emitter. A fixed seed
// keeps replays identical.
type ParticleSystem struct {
	behaviors [component.ParticleKindCount]ParticleBehavior
	rng       *rand.Rand
}

func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{
		behaviors: DefaultParticleBehaviors(),
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (s *ParticleSystem) Update(l *world.Level, dt float32) {
	if l == nil || s == nil {
		return
	}
	for i := range l.Emitters {
		e := &l.Emitters[i]
		b := s.behaviors[e.Kind]
		if b == nil {
			continue
		}
		for j := range e.Particles {
			b.Step(&e.Particles[j], dt)
			e.Particles[j].Life -= dt
		}
		e.Particles = slices.DeleteFunc(e.Particles, func(p component.Particle) bool {
			return p.Life <= 0
		})
		b.Spawn(e, s.rng, dt)
		if n := len(e.Particles); n > maxParticles {
			e.Particles = slices.Delete(e.Particles, 0, n-maxParticles)
		}
	}
}
