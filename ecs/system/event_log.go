package system

import (
	"log"

	"github.com/milk9111/beamwalker/ecs"
)

// EventLogSystem drains the world event queue into the log. Turn and pose
// events are only logged when Verbose is set.
type EventLogSystem struct {
	Verbose bool
	counts  map[ecs.EventKind]int
}

func NewEventLogSystem(verbose bool) *EventLogSystem {
	return &EventLogSystem{Verbose: verbose, counts: make(map[ecs.EventKind]int)}
}

func (s *EventLogSystem) Update(w *ecs.World, dt float64) {
	for _, evt := range w.Events().Drain() {
		s.counts[evt.Kind]++
		switch evt.Kind {
		case ecs.EventEnemyTurned, ecs.EventAttackPose:
			if !s.Verbose {
				continue
			}
		}
		if evt.Data != nil {
			log.Printf("event: %s entity=%s data=%v", evt.Kind, evt.Entity, evt.Data)
		} else {
			log.Printf("event: %s entity=%s", evt.Kind, evt.Entity)
		}
	}
}

// Count returns how many events of kind were seen.
func (s *EventLogSystem) Count(kind ecs.EventKind) int {
	return s.counts[kind]
}
