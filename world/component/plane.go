package component

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
)

// PlaneState is the plane's lifecycle. A crashed plane never flies again in
// the same run.
type PlaneState int

const (
	PlaneFlying PlaneState = iota
	PlaneCrashed
)

func (s PlaneState) String() string {
	switch s {
	case PlaneFlying:
		return "flying"
	case PlaneCrashed:
		return "crashed"
	}
	return "unknown"
}

// CrashBuckets is the number of crash animations, chosen by pre-crash speed.
const CrashBuckets = 8

type Plane struct {
	Body       geom.OrientedRect
	RenderZone geom.OrientedRect

	Velocity     mgl32.Vec2
	Acceleration mgl32.Vec2
	Mass         float32
	WingArea     float32
	Inverse      bool

	State         PlaneState
	CrashPosition mgl32.Vec2

	// Wreck continuation after a crash. These only move RenderZone.
	CrashBucket    int
	CrashElapsed   float32
	WreckVelocityY float32
	WreckResting   bool
}

func (p *Plane) Crashed() bool {
	return p != nil && p.State == PlaneCrashed
}

// CrashBucketFor maps a speed to one of CrashBuckets animations: 0 for a
// plane at rest, 7 above 90% of the velocity limit, evenly spaced between.
func CrashBucketFor(speed, limit float32) int {
	if speed <= 0 || limit <= 0 {
		return 0
	}
	ratio := speed / limit
	if ratio > 0.9 {
		return CrashBuckets - 1
	}
	b := 1 + int(math32.Floor(ratio/0.15))
	if b > CrashBuckets-2 {
		b = CrashBuckets - 2
	}
	return b
}
