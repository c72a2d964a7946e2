package ecs

// EventKind identifies an event payload.
type EventKind string

const (
	EventBeamSpawned EventKind = "beam_spawned"
	EventBeamExpired EventKind = "beam_expired"
	EventBeamKilled  EventKind = "beam_killed"
	EventEnemyDied   EventKind = "enemy_died"
	EventAttackPose  EventKind = "attack_pose"
	EventEnemyTurned EventKind = "enemy_turned"
)

// Event is a world event. Data is kind specific.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Anything not drained by the end of
// World.Update is dropped.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
