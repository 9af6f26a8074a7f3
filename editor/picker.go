package editor

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
)

// Picker finds the level geometry under a point. Every pickable box is a
// static Chipmunk polygon tagged with its Selection; the space is only used
// for queries and is never stepped.
type Picker struct {
	space *cp.Space
}

// NewPicker builds a picker over the current geometry of l.
func NewPicker(l *world.Level) *Picker {
	p := &Picker{space: cp.NewSpace()}
	if l == nil {
		return p
	}
	p.add(Selection{Kind: KindPlane}, l.Plane.Body)
	if !l.GoalLine.Degenerate() {
		p.add(Selection{Kind: KindGoal}, l.GoalLine)
	}
	for i := range l.Obstacles {
		p.add(Selection{Kind: KindObstacle, Index: i}, l.Obstacles[i].Body)
	}
	for i := range l.Boosts {
		p.add(Selection{Kind: KindBoost, Index: i}, l.Boosts[i].Body)
	}
	for i := range l.Portals {
		p.add(Selection{Kind: KindPortal, Index: i}, l.Portals[i].Body)
	}
	return p
}

func (p *Picker) add(sel Selection, r geom.OrientedRect) {
	if r.Degenerate() {
		return
	}
	verts := polygon(r)
	shape := cp.NewPolyShapeRaw(p.space.StaticBody, len(verts), verts, 0)
	shape.UserData = sel
	p.space.AddShape(shape)
}

// Pick returns the geometry containing point, if any.
func (p *Picker) Pick(point mgl32.Vec2) (Selection, bool) {
	if p == nil || p.space == nil {
		return Selection{}, false
	}
	info := p.space.PointQueryNearest(cp.Vector{X: float64(point.X()), Y: float64(point.Y())}, 0, cp.SHAPE_FILTER_ALL)
	if info == nil || info.Shape == nil {
		return Selection{}, false
	}
	sel, ok := info.Shape.UserData.(Selection)
	return sel, ok
}

// polygon returns the world corners of r wound counter-clockwise, which
// Chipmunk requires for raw polygons.
func polygon(r geom.OrientedRect) []cp.Vector {
	c := r.Corners()
	pts := []mgl32.Vec2{c[0], c[1], c[3], c[2]}
	if r.Triangle {
		pts = []mgl32.Vec2{c[1], c[3], c[2]}
	}

	var area float32
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X()*b.Y() - b.X()*a.Y()
	}
	if area < 0 {
		slices.Reverse(pts)
	}

	verts := make([]cp.Vector, len(pts))
	for i, v := range pts {
		verts[i] = cp.Vector{X: float64(v.X()), Y: float64(v.Y())}
	}
	return verts
}
