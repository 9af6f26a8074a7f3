package component

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/tuning"
)

type RiderStateKind int

const (
	RiderAttached RiderStateKind = iota
	RiderDetached
	RiderCrashed
)

// RiderState defines the interface for rider state machine states.
// Each state owns its own enter/exit, input handling, and update logic.
type RiderState interface {
	Name() string
	Kind() RiderStateKind
	Enter(ctx *RiderStateContext)
	Exit(ctx *RiderStateContext)
	HandleInput(ctx *RiderStateContext)
	Update(ctx *RiderStateContext)
}

// RiderStateContext gives a state access to both bodies for one frame.
type RiderStateContext struct {
	Plane  *Plane
	Rider  *Rider
	Input  *Input
	Tuning *tuning.Physics
	Dt     float32

	ChangeState func(state RiderState)
	Emit        func(kind EventKind, at mgl32.Vec2)
}

type Rider struct {
	Body       geom.OrientedRect
	RenderZone geom.OrientedRect

	Velocity      mgl32.Vec2
	Mass          float32
	Inverse       bool
	CrashPosition mgl32.Vec2

	// Horizontal speed is BaseVelocity (plane speed inherited at the jump,
	// decaying) plus InputVelocity (player driven, clamped).
	BaseVelocity  float32
	InputVelocity float32

	JumpElapsed   float32
	AttachElapsed float32
	SecondJump    bool

	State RiderState
}

func (r *Rider) Is(kind RiderStateKind) bool {
	return r != nil && r.State != nil && r.State.Kind() == kind
}

func (r *Rider) Attached() bool { return r.Is(RiderAttached) }

func (r *Rider) Detached() bool { return r.Is(RiderDetached) }

func (r *Rider) Crashed() bool { return r.Is(RiderCrashed) }
