package system

import (
	"github.com/milk9111/paperrider/world"
)

// CameraSystem scrolls the camera horizontally with the body the player is
// controlling: the plane while the rider is aboard, the rider otherwise.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(l *world.Level, dt float32) {
	if l == nil || l.ScreenWidth <= 0 {
		return
	}
	target := l.Plane.Body
	if l.Rider.Detached() {
		target = l.Rider.Body
	} else if l.Plane.Crashed() {
		return
	}
	l.Camera.X = target.Center().X() - l.ScreenWidth*l.Tuning.CameraLead
}
