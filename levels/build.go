package levels

import (
	"slices"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/system"
)

// Build turns a map into a ready-to-run level with the default systems
// installed and the rider seated on the plane.
func Build(name string, m *Map, t tuning.Physics, seed uint64) (*world.Level, error) {
	if m == nil || !m.HasPlane {
		return nil, ErrNoPlane
	}
	l := world.NewLevel(t)
	l.Name = name
	l.ScreenWidth = m.ScreenWidth
	l.ScreenHeight = m.ScreenHeight
	l.AtmosphereDensity = m.Density
	l.WrapEdges = m.Wrap

	l.Plane.Body = m.Plane
	l.Rider.Body = geom.NewRect(0, 0, m.RiderSize.X(), m.RiderSize.Y())
	l.GoalLine = m.Goal
	l.Obstacles = slices.Clone(m.Obstacles)
	l.Boosts = slices.Clone(m.Boosts)
	l.Portals = slices.Clone(m.Portals)

	system.Install(l, seed)
	return l, nil
}

// FromLevel captures a level's geometry and spawn as a map. Call it on a
// reset level so the plane is at its spawn.
func FromLevel(l *world.Level) *Map {
	if l == nil {
		return nil
	}
	plane := l.Plane.Body
	plane.Angle = 0
	plane.Size = mgl32.Vec2{math32.Abs(plane.Size.X()), math32.Abs(plane.Size.Y())}
	return &Map{
		ScreenWidth:  l.ScreenWidth,
		ScreenHeight: l.ScreenHeight,
		Density:      l.AtmosphereDensity,
		Wrap:         l.WrapEdges,
		Plane:        plane,
		HasPlane:     true,
		RiderSize:    mgl32.Vec2{math32.Abs(l.Rider.Body.Size.X()), math32.Abs(l.Rider.Body.Size.Y())},
		Goal:         l.GoalLine,
		Obstacles:    slices.Clone(l.Obstacles),
		Boosts:       slices.Clone(l.Boosts),
		Portals:      slices.Clone(l.Portals),
	}
}
