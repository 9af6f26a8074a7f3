package common

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Rad converts degrees to radians.
func Rad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Clamp restricts v to [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// WrapDegrees folds an angle back into [-360, 360] without changing its
// orientation.
func WrapDegrees(deg float32) float32 {
	if deg > 360 || deg < -360 {
		deg = math32.Mod(deg, 360)
	}
	return deg
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// Approach moves v toward target by at most step.
func Approach(v, target, step float32) float32 {
	if v < target {
		return math32.Min(v+step, target)
	}
	if v > target {
		return math32.Max(v-step, target)
	}
	return v
}
