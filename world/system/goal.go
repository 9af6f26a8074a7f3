package system

import (
	"github.com/milk9111/paperrider/geom"
	"github.com/milk9111/paperrider/world"
	"github.com/milk9111/paperrider/world/component"
)

// GoalSystem wins the run when the rider reaches the goal line.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(l *world.Level, dt float32) {
	if l == nil || l.GameOver || l.Rider.Crashed() {
		return
	}
	at, hit := geom.RectsColliding(l.Rider.Body, l.GoalLine)
	if !hit {
		return
	}
	if l.EditingAvailable {
		ReturnToEditor(l, at)
		return
	}
	l.GameOver = true
	l.GameWon = true
	l.Emit(component.EventGoal, at)
}
