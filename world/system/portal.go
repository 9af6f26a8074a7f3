package system

import (
	"math/rand/v2"

	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// PortalSystem applies gravity and colour portals. Both are idempotent while a
// body stays inside a portal: nothing changes unless the portal's Enable
// differs from the current state.
type PortalSystem struct{}

func NewPortalSystem() *PortalSystem {
	return &PortalSystem{}
}

func (s *PortalSystem) Update(l *world.Level, dt float32) {
	if l == nil {
		return
	}
	for i := range l.Portals {
		portal := &l.Portals[i]
		planeIn := !l.Plane.Crashed() && geom.Colliding(l.Plane.Body, portal.Body)
		riderIn := l.Rider.Detached() && geom.Colliding(l.Rider.Body, portal.Body)

		switch portal.Kind {
		case component.PortalGravityInvert:
			if planeIn && SetPlaneInverse(l, portal.Enable) {
				l.Emit(component.EventPortal, l.Plane.Body.Center())
			}
			if riderIn && SetRiderInverse(&l.Rider, portal.Enable) {
				l.Emit(component.EventPortal, l.Rider.Body.Center())
			}
		case component.PortalColorShuffle:
			if (planeIn || riderIn) && SetColorsShuffled(l, portal.Enable) {
				l.Emit(component.EventPortal, portal.Body.Center())
			}
		}
	}
}

// SetPlaneInverse flips the plane's gravity to match inverse. An attached
// rider flips with it. It reports whether anything changed.
func SetPlaneInverse(l *world.Level, inverse bool) bool {
	p := &l.Plane
	if p.Inverse == inverse {
		return false
	}
	p.Inverse = inverse
	flipHeight(&p.Body)
	if l.Rider.Attached() {
		SeatRider(p, &l.Rider, l.Tuning.RiderSeatSink)
	}
	return true
}

// SetRiderInverse flips a detached rider's gravity to match inverse.
func SetRiderInverse(r *component.Rider, inverse bool) bool {
	if r.Inverse == inverse {
		return false
	}
	r.Inverse = inverse
	flipHeight(&r.Body)
	return true
}

// flipHeight negates the height while keeping the box where it is.
func flipHeight(r *geom.OrientedRect) {
	r.Pos[1] += r.Size.Y()
	r.Size[1] = -r.Size.Y()
}

// SetColorsShuffled enables or disables the colour shuffle. The palette is
// only reshuffled when the flag actually changes.
func SetColorsShuffled(l *world.Level, shuffled bool) bool {
	if l.ColorsShuffled == shuffled {
		return false
	}
	l.ColorsShuffled = shuffled
	for i := range l.Palette {
		l.Palette[i] = i
	}
	if !shuffled {
		return true
	}

	rng := rand.New(rand.NewPCG(uint64(l.Frame), uint64(len(l.Portals))))
	rng.Shuffle(len(l.Palette), func(i, j int) {
		l.Palette[i], l.Palette[j] = l.Palette[j], l.Palette[i]
	})
	if l.Palette[0] == 0 {
		// Always move the first slot so the change is visible.
		l.Palette[0], l.Palette[1] = l.Palette[1], l.Palette[0]
	}
	return true
}
