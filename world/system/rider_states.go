package system

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/common"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// Rider state singletons (avoid allocations on transitions).
var (
	riderStateAttached component.RiderState = &riderAttachedState{}
	riderStateDetached component.RiderState = &riderDetachedState{}
	riderStateCrashed  component.RiderState = &riderCrashedState{}
)

func RiderAttachedState() component.RiderState { return riderStateAttached }
func RiderDetachedState() component.RiderState { return riderStateDetached }
func RiderCrashedState() component.RiderState  { return riderStateCrashed }

type riderAttachedState struct{}

type riderDetachedState struct{}

type riderCrashedState struct{}

func (riderAttachedState) Name() string                   { return "attached" }
func (riderAttachedState) Kind() component.RiderStateKind { return component.RiderAttached }
func (riderAttachedState) Enter(ctx *component.RiderStateContext) {
	ctx.Rider.Velocity = mgl32.Vec2{}
	ctx.Rider.BaseVelocity = 0
	ctx.Rider.InputVelocity = 0
	ctx.Rider.AttachElapsed = 0
	SeatRider(ctx.Plane, ctx.Rider, ctx.Tuning.RiderSeatSink)
}
func (riderAttachedState) Exit(ctx *component.RiderStateContext) {}
func (riderAttachedState) HandleInput(ctx *component.RiderStateContext) {
	if ctx == nil || ctx.Input == nil {
		return
	}
	p := ctx.Plane

	turn := ctx.Input.Direction * ctx.Tuning.PlaneTurnRate * ctx.Dt
	if p.Inverse {
		turn = -turn
	}
	p.Body.Angle = common.WrapDegrees(p.Body.Angle + turn)
	// The plane has already moved this frame; a jump leaves from where the
	// rider sits now.
	SeatRider(p, ctx.Rider, ctx.Tuning.RiderSeatSink)

	if ctx.Input.JumpPressed && ctx.Rider.AttachElapsed > ctx.Tuning.AttachCooldown && ctx.ChangeState != nil {
		ctx.ChangeState(riderStateDetached)
	}
}
func (riderAttachedState) Update(ctx *component.RiderStateContext) {
	ctx.Rider.AttachElapsed += ctx.Dt
	SeatRider(ctx.Plane, ctx.Rider, ctx.Tuning.RiderSeatSink)
}

func (riderDetachedState) Name() string                   { return "detached" }
func (riderDetachedState) Kind() component.RiderStateKind { return component.RiderDetached }
func (riderDetachedState) Enter(ctx *component.RiderStateContext) {
	p, r, t := ctx.Plane, ctx.Rider, ctx.Tuning

	vy := p.Velocity.Y()/2 - t.RiderFirstJump
	if p.Inverse {
		vy = p.Velocity.Y()/2 + t.RiderFirstJump
	}
	r.Inverse = p.Inverse
	r.BaseVelocity = p.Velocity.X()
	r.InputVelocity = 0
	r.Velocity = mgl32.Vec2{r.BaseVelocity, common.Clamp(vy, -t.RiderVelocityYLimit, t.RiderVelocityYLimit)}
	r.Body.Angle = 0
	r.JumpElapsed = 0
	r.SecondJump = true
	if ctx.Emit != nil {
		ctx.Emit(component.EventDetach, r.Body.Center())
	}
}
func (riderDetachedState) Exit(ctx *component.RiderStateContext) {}
func (riderDetachedState) HandleInput(ctx *component.RiderStateContext) {
	if ctx == nil || ctx.Input == nil {
		return
	}
	r, t := ctx.Rider, ctx.Tuning
	if !ctx.Input.JumpPressed || !r.SecondJump {
		return
	}
	jump := -t.RiderSecondJump
	if r.Inverse {
		jump = t.RiderSecondJump
	}
	r.Velocity[1] = jump
	r.SecondJump = false
	if ctx.Emit != nil {
		ctx.Emit(component.EventSecondJump, r.Body.Center())
	}
}
func (riderDetachedState) Update(ctx *component.RiderStateContext) {
	StepRider(ctx.Rider, ctx.Input, ctx.Tuning, ctx.Dt)
}

func (riderCrashedState) Name() string                   { return "crashed" }
func (riderCrashedState) Kind() component.RiderStateKind { return component.RiderCrashed }
func (riderCrashedState) Enter(ctx *component.RiderStateContext) {
	ctx.Rider.Velocity = mgl32.Vec2{}
	ctx.Rider.BaseVelocity = 0
	ctx.Rider.InputVelocity = 0
	ctx.Rider.SecondJump = false
}
func (riderCrashedState) Exit(ctx *component.RiderStateContext)        {}
func (riderCrashedState) HandleInput(ctx *component.RiderStateContext) {}
func (riderCrashedState) Update(ctx *component.RiderStateContext)      {}

// riderContext builds the state context for one frame. ChangeState runs the
// exit and enter hooks immediately.
func riderContext(l *world.Level, dt float32) *component.RiderStateContext {
	ctx := &component.RiderStateContext{
		Plane:  &l.Plane,
		Rider:  &l.Rider,
		Input:  &l.Input,
		Tuning: &l.Tuning,
		Dt:     dt,
		Emit:   l.Emit,
	}
	ctx.ChangeState = func(next component.RiderState) {
		if next == nil || next == ctx.Rider.State {
			return
		}
		if ctx.Rider.State != nil {
			ctx.Rider.State.Exit(ctx)
		}
		ctx.Rider.State = next
		next.Enter(ctx)
	}
	return ctx
}

// ChangeRiderState moves the rider into next outside the rider system's own
// update, for transitions caused by collisions.
func ChangeRiderState(l *world.Level, next component.RiderState) {
	if l == nil {
		return
	}
	riderContext(l, 0).ChangeState(next)
}

// RiderSystem drives the rider state machine.
type RiderSystem struct{}

func NewRiderSystem() *RiderSystem {
	return &RiderSystem{}
}

func (s *RiderSystem) Update(l *world.Level, dt float32) {
	if l == nil {
		return
	}
	if l.Rider.State == nil {
		l.Rider.State = riderStateAttached
	}
	ctx := riderContext(l, dt)
	current := l.Rider.State
	current.HandleInput(ctx)
	if l.Rider.State != current {
		return
	}
	current.Update(ctx)
}
