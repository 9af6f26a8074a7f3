package system

import (
	"github.com/milk9111/paperrider/world"
)

// DefaultSystems returns the per-frame update order: forces, integration,
// then the interaction pass (portals, obstacles and bounds, remount, goal),
// then presentation.
func DefaultSystems(seed uint64) []world.System {
	return []world.System{
		NewAerodynamicsSystem(),
		NewBoostSystem(),
		NewFlightSystem(),
		NewRiderSystem(),
		NewWreckSystem(),
		NewWrapSystem(),
		NewCameraSystem(),
		NewPortalSystem(),
		NewCollisionSystem(),
		NewRemountSystem(),
		NewGoalSystem(),
		NewRenderZoneSystem(),
		NewParticleSystem(seed),
	}
}

// Install wires the default systems into a freshly built level, fills unset
// body properties from its tuning, seats the rider, and records the spawn
// that Reset returns to.
func Install(l *world.Level, seed uint64) {
	if l == nil {
		return
	}
	if len(l.Systems()) > 0 {
		panic("system: install: level already has systems")
	}
	for _, s := range DefaultSystems(seed) {
		l.AddSystem(s)
	}

	t := &l.Tuning
	if l.Plane.Mass == 0 {
		l.Plane.Mass = t.PlaneMass
	}
	if l.Plane.WingArea == 0 {
		l.Plane.WingArea = t.PlaneWingArea
	}
	if l.Rider.Mass == 0 {
		l.Rider.Mass = t.RiderMass
	}
	if l.Rider.State == nil {
		l.Rider.State = riderStateAttached
	}
	if l.Rider.Attached() {
		SeatRider(&l.Plane, &l.Rider, t.RiderSeatSink)
	}
	l.Plane.RenderZone = RenderZoneFor(l.Plane.Body, t)
	l.Rider.RenderZone = RenderZoneFor(l.Rider.Body, t)
	if l.ScreenWidth > 0 {
		l.Camera.X = l.Plane.Body.Center().X() - l.ScreenWidth*t.CameraLead
	}
	l.SaveSpawn()
}
