package system

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/world"
)

// The lift/drag model is empirical. The curve shapes below are tuned for
// feel and must not be replaced with textbook aerodynamics. Horizontal lift
// and vertical drag are the same curve: falling and sliding sideways are
// treated symmetrically.

func VerticalLiftCoeff(deg float32) float32 {
	return 1 - math32.Cos(common.Rad(180-2*deg))
}

func VerticalDragCoeff(deg float32) float32 {
	return math32.Sin(common.Rad(180 - 2*deg))
}

func HorizontalLiftCoeff(deg float32) float32 {
	return math32.Sin(common.Rad(2 * deg))
}

func HorizontalDragCoeff(deg float32) float32 {
	return 1 - math32.Cos(common.Rad(2*deg))
}

// quadrantSign is +1 when the wing lies in the first or third quadrant and
// -1 in the second or fourth.
func quadrantSign(deg float32) float32 {
	a := common.NormalizeDegrees(deg)
	switch {
	case a < 90:
		return 1
	case a < 180:
		return -1
	case a < 270:
		return 1
	}
	return -1
}

// Aerodynamics returns the lift and drag acceleration contributions for a
// wing of the given area at angle deg moving with velocity v through air of
// the given density. The result is not yet divided by mass.
func Aerodynamics(deg, wingArea, density float32, v mgl32.Vec2) mgl32.Vec2 {
	rad := common.Rad(deg)
	vArea := math32.Abs(wingArea * math32.Cos(rad))
	hArea := math32.Abs(wingArea * math32.Sin(rad))
	vx, vy := v.X(), v.Y()
	q := quadrantSign(deg)

	vertical := vArea * vy * vy * density * 0.5
	horizontal := hArea * vx * vx * density * 0.5

	vLift := vertical * math32.Abs(VerticalLiftCoeff(deg)) * common.Sign(-vy)
	vDrag := vertical * math32.Abs(VerticalDragCoeff(deg)) * common.Sign(vy) * q
	hLift := horizontal * math32.Abs(HorizontalLiftCoeff(deg)) * common.Sign(vx) * q
	hDrag := horizontal * math32.Abs(HorizontalDragCoeff(deg)) * common.Sign(-vx)

	return mgl32.Vec2{vDrag + hDrag, vLift + hLift}
}

// AerodynamicsSystem clears the plane's acceleration for the frame and adds
// lift and drag.
type AerodynamicsSystem struct{}

func NewAerodynamicsSystem() *AerodynamicsSystem {
	return &AerodynamicsSystem{}
}

func (s *AerodynamicsSystem) Update(l *world.Level, dt float32) {
	if l == nil || l.Plane.Crashed() {
		return
	}
	p := &l.Plane
	p.Acceleration = mgl32.Vec2{}
	p.Acceleration = p.Acceleration.Add(Aerodynamics(p.Body.Angle, p.WingArea, l.AtmosphereDensity, p.Velocity))
}
