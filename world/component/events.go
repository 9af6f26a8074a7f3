package component

import "github.com/go-gl/mathgl/mgl32"

// EventKind identifies gameplay events raised during a frame.
type EventKind string

const (
	EventBoost         EventKind = "boost"
	EventPlaneCrash    EventKind = "plane_crash"
	EventRiderCrash    EventKind = "rider_crash"
	EventDetach        EventKind = "detach"
	EventSecondJump    EventKind = "second_jump"
	EventRemount       EventKind = "remount"
	EventPortal        EventKind = "portal"
	EventGoal          EventKind = "goal"
	EventEditorReentry EventKind = "editor_reentry"
	EventWreckLanded   EventKind = "wreck_landed"
)

// Event is a gameplay event with the world position it happened at.
type Event struct {
	Kind EventKind
	Pos  mgl32.Vec2
}
