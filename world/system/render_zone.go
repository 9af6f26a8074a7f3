package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world"
)

// RenderZoneSystem derives the sprite boxes from the collision boxes. A
// crashed plane's render box belongs to WreckSystem.
type RenderZoneSystem struct{}

func NewRenderZoneSystem() *RenderZoneSystem {
	return &RenderZoneSystem{}
}

func (s *RenderZoneSystem) Update(l *world.Level, dt float32) {
	if l == nil {
		return
	}
	if !l.Plane.Crashed() {
		l.Plane.RenderZone = RenderZoneFor(l.Plane.Body, &l.Tuning)
	}
	l.Rider.RenderZone = RenderZoneFor(l.Rider.Body, &l.Tuning)
}

// RenderZoneFor pads body on every side and shifts it by the render offset.
// The vertical offset follows the sign of the height so flipped sprites sit
// the same way up relative to their body.
func RenderZoneFor(body geom.OrientedRect, t *tuning.Physics) geom.OrientedRect {
	up := float32(1)
	if body.Size.Y() < 0 {
		up = -1
	}
	pad := mgl32.Vec2{t.RenderPadding, t.RenderPadding * up}
	offset := mgl32.Vec2{t.RenderOffsetX, t.RenderOffsetY * up}

	zone := body
	zone.Pos = body.Pos.Add(offset).Sub(pad)
	zone.Size = body.Size.Add(pad.Mul(2))
	zone.Angle = common.WrapDegrees(body.Angle)
	return zone
}
