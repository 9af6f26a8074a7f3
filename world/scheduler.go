package world

// System advances one concern of the level by dt seconds.
type System interface {
	Update(l *Level, dt float32)
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(l *Level, dt float32) {
	for _, system := range s.systems {
		// A crash during an editor test run hands the level back to the
		// editor mid-frame; the rest of the frame is skipped.
		if l.EditingNow {
			return
		}
		system.Update(l, dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
