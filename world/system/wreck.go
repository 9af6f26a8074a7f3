package system

import (
	"github.com/chewxy/math32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// WreckSystem plays out a crashed plane: it holds the wreck in place for the
// crash animation, then drops the render box to the floor where it bounces
// until it comes to rest. The collision body stays where the plane crashed.
type WreckSystem struct{}

func NewWreckSystem() *WreckSystem {
	return &WreckSystem{}
}

// CrashAnimDuration is how long the crash animation for bucket plays.
func CrashAnimDuration(t *tuning.Physics, bucket int) float32 {
	return t.CrashAnimBase + float32(bucket)*t.CrashAnimStep
}

func (s *WreckSystem) Update(l *world.Level, dt float32) {
	if l == nil || !l.Plane.Crashed() || l.Plane.WreckResting {
		return
	}
	p, t := &l.Plane, &l.Tuning

	if p.CrashElapsed < CrashAnimDuration(t, p.CrashBucket) {
		p.CrashElapsed += dt
		return
	}

	g := t.Gravity * t.WreckGravityScale
	p.WreckVelocityY = common.Clamp(p.WreckVelocityY+g*dt, -t.RiderVelocityYLimit, t.RiderVelocityYLimit)
	p.RenderZone.Pos[1] += p.WreckVelocityY * dt

	if l.ScreenHeight <= 0 {
		return
	}
	zone := &p.RenderZone
	bottom := zone.Pos.Y() + math32.Max(zone.Size.Y(), 0)
	if bottom < l.ScreenHeight {
		return
	}
	zone.Pos[1] -= bottom - l.ScreenHeight
	if math32.Abs(p.WreckVelocityY) < t.WreckRestSpeed {
		p.WreckVelocityY = 0
		p.WreckResting = true
		l.Emit(component.EventWreckLanded, zone.Center())
		return
	}
	p.WreckVelocityY = -p.WreckVelocityY / 2
}
