package system

import (
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
)

// WrapSystem moves bodies that leave the top or bottom of the screen to the
// opposite edge. It only runs on levels with WrapEdges set.
type WrapSystem struct{}

func NewWrapSystem() *WrapSystem {
	return &WrapSystem{}
}

func (s *WrapSystem) Update(l *world.Level, dt float32) {
	if l == nil || !l.WrapEdges || l.ScreenHeight <= 0 {
		return
	}
	if !l.Plane.Crashed() && wrapVertical(&l.Plane.Body, l.ScreenHeight) && l.Rider.Attached() {
		SeatRider(&l.Plane, &l.Rider, l.Tuning.RiderSeatSink)
	}
	if l.Rider.Detached() {
		wrapVertical(&l.Rider.Body, l.ScreenHeight)
	}
}

// wrapVertical shifts r by one screen height once its centre is off screen.
func wrapVertical(r *geom.OrientedRect, height float32) bool {
	cy := r.Center().Y()
	switch {
	case cy > height:
		r.Pos[1] -= height
	case cy < 0:
		r.Pos[1] += height
	default:
		return false
	}
	return true
}
