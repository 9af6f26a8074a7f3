package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
)

// OrientedRect is a rectangle rotated about its own centre.
// Pos is the top-left corner before rotation. A negative Size.Y() is used as a
// flip flag while gravity is inverted; the box then extends upward from Pos.
// Angle is in degrees and is never normalised here.
type OrientedRect struct {
	Pos      mgl32.Vec2
	Size     mgl32.Vec2
	Angle    float32
	Triangle bool
}

// NewRect builds an unrotated rectangle.
func NewRect(x, y, w, h float32) OrientedRect {
	return OrientedRect{Pos: mgl32.Vec2{x, y}, Size: mgl32.Vec2{w, h}}
}

func (r OrientedRect) Center() mgl32.Vec2 {
	return r.Pos.Add(r.Size.Mul(0.5))
}

// Degenerate reports whether the rect has a zero dimension.
func (r OrientedRect) Degenerate() bool {
	return r.Size.X() == 0 || r.Size.Y() == 0
}

// Radius is the loose bound used by the broad phase.
func (r OrientedRect) Radius() float32 {
	return math32.Abs(r.Size.X()) + math32.Abs(r.Size.Y())
}

// Corners returns the world-space corners in the order top-left, top-right,
// bottom-left, bottom-right.
func (r OrientedRect) Corners() [4]mgl32.Vec2 {
	w, h := r.Size.X(), r.Size.Y()
	local := [4]mgl32.Vec2{
		r.Pos,
		r.Pos.Add(mgl32.Vec2{w, 0}),
		r.Pos.Add(mgl32.Vec2{0, h}),
		r.Pos.Add(mgl32.Vec2{w, h}),
	}
	if r.Angle == 0 {
		return local
	}
	c := r.Center()
	sin, cos := math32.Sincos(common.Rad(r.Angle))
	var out [4]mgl32.Vec2
	for i, p := range local {
		out[i] = rotateAbout(p, c, sin, cos)
	}
	return out
}

func rotateAbout(p, c mgl32.Vec2, sin, cos float32) mgl32.Vec2 {
	dx := p.X() - c.X()
	dy := p.Y() - c.Y()
	return mgl32.Vec2{
		c.X() + dx*cos - dy*sin,
		c.Y() + dx*sin + dy*cos,
	}
}

// RotatePoint rotates p by deg degrees about c.
func RotatePoint(p, c mgl32.Vec2, deg float32) mgl32.Vec2 {
	sin, cos := math32.Sincos(common.Rad(deg))
	return rotateAbout(p, c, sin, cos)
}

// ContainsPoint reports whether p lies inside r. The point is moved into the
// rect's unrotated frame and tested against [x, x+w) × [y, y+h). With centered
// set, Pos is read as the rect's centre instead of its top-left corner.
func ContainsPoint(r OrientedRect, p mgl32.Vec2, centered bool) bool {
	if r.Degenerate() {
		return false
	}
	c := r.Center()
	x, y := r.Pos.X(), r.Pos.Y()
	if centered {
		c = r.Pos
		x -= r.Size.X() / 2
		y -= r.Size.Y() / 2
	}
	local := p
	if r.Angle != 0 {
		local = RotatePoint(p, c, -r.Angle)
	}
	minX, maxX := span(x, r.Size.X())
	minY, maxY := span(y, r.Size.Y())
	if local.X() < minX || local.X() >= maxX || local.Y() < minY || local.Y() >= maxY {
		return false
	}
	if !r.Triangle {
		return true
	}

	// Only the half under the top-right -> bottom-left diagonal is solid.
	tr := mgl32.Vec2{x + r.Size.X(), y}
	bl := mgl32.Vec2{x, y + r.Size.Y()}
	br := mgl32.Vec2{x + r.Size.X(), y + r.Size.Y()}
	return sameSide(tr, bl, local, br)
}

func span(origin, size float32) (float32, float32) {
	if size < 0 {
		return origin + size, origin
	}
	return origin, origin + size
}

// sameSide reports whether p and ref lie on the same side of line a-b.
// Points on the line count as inside.
func sameSide(a, b, p, ref mgl32.Vec2) bool {
	cp := cross(b.Sub(a), p.Sub(a))
	cr := cross(b.Sub(a), ref.Sub(a))
	return cp == 0 || (cp > 0) == (cr > 0)
}

func cross(a, b mgl32.Vec2) float32 {
	return a.X()*b.Y() - a.Y()*b.X()
}
