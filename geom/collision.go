package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Corner indices into the array returned by Corners.
const (
	cornerTL = iota
	cornerTR
	cornerBL
	cornerBR
)

type edge struct{ a, b int }

var (
	rectEdges = []edge{
		{cornerTL, cornerTR},
		{cornerTR, cornerBR},
		{cornerBR, cornerBL},
		{cornerBL, cornerTL},
	}
	// The hypotenuse runs top-right to bottom-left; the top-left corner is
	// not part of a triangle.
	triangleEdges = []edge{
		{cornerTR, cornerBL},
		{cornerBL, cornerBR},
		{cornerBR, cornerTR},
	}
)

func (r OrientedRect) edges() []edge {
	if r.Triangle {
		return triangleEdges
	}
	return rectEdges
}

// BroadPhaseReject reports whether a and b are too far apart to touch. The
// bound is the sum of both rects' |w|+|h| on each axis, which is loose on
// purpose so that rotated corners are never missed.
func BroadPhaseReject(a, b OrientedRect) bool {
	limit := a.Radius() + b.Radius()
	return math32.Abs(a.Pos.X()-b.Pos.X()) > limit ||
		math32.Abs(a.Pos.Y()-b.Pos.Y()) > limit
}

// RectsColliding tests two oriented rects (or triangles) for overlap and
// returns the first contact point found. Edges of a are the outer loop and
// edges of b the inner loop; when no edges cross, a reference corner of each
// rect is tested for containment in the other to catch full nesting.
func RectsColliding(a, b OrientedRect) (mgl32.Vec2, bool) {
	if a.Degenerate() || b.Degenerate() {
		return mgl32.Vec2{}, false
	}
	if BroadPhaseReject(a, b) {
		return mgl32.Vec2{}, false
	}
	return edgesColliding(a, b)
}

func edgesColliding(a, b OrientedRect) (mgl32.Vec2, bool) {
	ca := a.Corners()
	cb := b.Corners()
	for _, ea := range a.edges() {
		for _, eb := range b.edges() {
			if p, ok := SegmentsIntersect(ca[ea.a], ca[ea.b], cb[eb.a], cb[eb.b]); ok {
				return p, true
			}
		}
	}

	if p := cb[cornerTR]; ContainsPoint(a, p, false) {
		return p, true
	}
	if p := ca[cornerTR]; ContainsPoint(b, p, false) {
		return p, true
	}
	return mgl32.Vec2{}, false
}

// Colliding is RectsColliding without the contact point.
func Colliding(a, b OrientedRect) bool {
	_, ok := RectsColliding(a, b)
	return ok
}
