package system

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/tuning"
	"github.com/milk9111/paperrider/world/component"
)

// SeatRider places the rider rigidly on top of the plane (below it while
// gravity is inverted), sharing the plane's angle and flip state.
func SeatRider(p *component.Plane, r *component.Rider, sink float32) {
	if p == nil || r == nil {
		return
	}
	up := float32(1)
	if p.Inverse {
		up = -1
	}
	rh := math32.Abs(r.Body.Size.Y()) * up
	r.Body.Size[1] = rh
	r.Inverse = p.Inverse

	lift := math32.Abs(p.Body.Size.Y())/2 + math32.Abs(rh)/2 - sink
	offset := mgl32.Vec2{0, -lift * up}
	center := geom.RotatePoint(p.Body.Center().Add(offset), p.Body.Center(), p.Body.Angle)

	r.Body.Angle = p.Body.Angle
	r.Body.Pos = center.Sub(r.Body.Size.Mul(0.5))
}

// StepRider integrates a detached rider for one frame.
func StepRider(r *component.Rider, in *component.Input, t *tuning.Physics, dt float32) {
	if r == nil || t == nil {
		return
	}
	var dir float32
	if in != nil {
		dir = common.Clamp(in.Direction, -1, 1)
	}

	if dir != 0 {
		r.InputVelocity += dir * t.RiderInputVelocityAcceleration * dt
	} else {
		r.InputVelocity = common.Approach(r.InputVelocity, 0, t.RiderInputVelocityAcceleration*dt)
	}
	r.InputVelocity = common.Clamp(r.InputVelocity, -t.RiderInputVelocityLimit, t.RiderInputVelocityLimit)

	// Inherited speed fades with air friction, and faster when the player
	// pushes against it.
	decay := t.AirFrictionAcc * dt
	if dir != 0 && common.Sign(dir) != common.Sign(r.BaseVelocity) {
		decay += t.RiderInputBrake * math32.Abs(dir) * dt
	}
	r.BaseVelocity = common.Approach(r.BaseVelocity, 0, decay)

	g := t.RiderGravity
	if r.Inverse {
		g = -g
	}
	vy := common.Clamp(r.Velocity.Y()+g*dt, -t.RiderVelocityYLimit, t.RiderVelocityYLimit)
	r.Velocity = mgl32.Vec2{r.BaseVelocity + r.InputVelocity, vy}

	r.Body.Pos = r.Body.Pos.Add(r.Velocity.Mul(dt))
	r.JumpElapsed += dt
}
