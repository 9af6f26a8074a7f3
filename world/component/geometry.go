package component

import "github.com/milk9111/paperrider/geom"

// Obstacle is static geometry that crashes the bodies it collides with.
type Obstacle struct {
	Body              geom.OrientedRect
	CollidesWithPlane bool
	CollidesWithRider bool
}

// BoostPad pushes an overlapping plane along BoostAngle (degrees,
// counter-clockwise on screen) with BoostPower.
type BoostPad struct {
	Body       geom.OrientedRect
	BoostAngle float32
	BoostPower float32
}

type PortalKind int

const (
	PortalGravityInvert PortalKind = iota
	PortalColorShuffle
)

func (k PortalKind) String() string {
	switch k {
	case PortalGravityInvert:
		return "gravity"
	case PortalColorShuffle:
		return "color"
	}
	return "unknown"
}

// Portal switches its effect to Enable for whatever passes through it.
type Portal struct {
	Body   geom.OrientedRect
	Kind   PortalKind
	Enable bool
}
