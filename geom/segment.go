package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// parallelEpsilon is the smallest denominator treated as non-parallel.
const parallelEpsilon = 1e-6

// SegmentsIntersect reports whether segment p1-p2 crosses segment p3-p4 and
// returns the crossing point. Parallel and coincident segments never
// intersect.
func SegmentsIntersect(p1, p2, p3, p4 mgl32.Vec2) (mgl32.Vec2, bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	den := cross(d1, d2)
	if math32.Abs(den) < parallelEpsilon {
		return mgl32.Vec2{}, false
	}

	diff := p3.Sub(p1)
	t := cross(diff, d2) / den
	u := cross(diff, d1) / den
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return mgl32.Vec2{}, false
	}
	return p1.Add(d1.Mul(t)), true
}
