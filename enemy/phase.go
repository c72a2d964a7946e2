package enemy

import "github.com/jakecoffman/cp"

// Direction is a horizontal facing.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and 1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// DirectionOf derives a facing from a forward vector.
func DirectionOf(forward cp.Vector) Direction {
	if forward.X < 0 {
		return Left
	}
	return Right
}

// Phase is the attack cycle stage derived from the timer and fire marker.
type Phase int

const (
	PhaseLocomotion Phase = iota
	PhaseCharging
	PhaseFiring
)

func (p Phase) String() string {
	switch p {
	case PhaseLocomotion:
		return "locomotion"
	case PhaseCharging:
		return "charging"
	case PhaseFiring:
		return "firing"
	default:
		return "unknown"
	}
}
