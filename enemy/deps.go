package enemy

import "github.com/jakecoffman/cp"

// BeamRef is a registry-issued handle to a beam. The zero value means no beam.
type BeamRef uint64

// NoBeam is the empty beam handle.
const NoBeam BeamRef = 0

// BeamSpawner creates beams and owns their lifecycle. Handles it issues are
// generation checked, so Alive reports false once a beam was destroyed elsewhere.
type BeamSpawner interface {
	Spawn(kind string, at cp.Vector, dir Direction) (BeamRef, error)
	Track(beam BeamRef, at cp.Vector)
	Alive(beam BeamRef) bool
	Kill(beam BeamRef)
}

// ObstructionSensor reports whether the unit is off the ground and whether
// something blocks it ahead. It must not have side effects.
type ObstructionSensor interface {
	Query() (airborne, blocked bool)
}

// AnimationSink receives the attack pose flag.
type AnimationSink interface {
	SetAttack(on bool)
}

// Anchor is the point beams originate from and follow while active.
type Anchor interface {
	Position() cp.Vector
}

// Body is the unit the controller drives.
type Body interface {
	// Forward returns the current facing as a unit vector.
	Forward() cp.Vector
	// Turn mirrors the facing.
	Turn()
	Translate(delta cp.Vector)
	// Die runs the unit's own death handling.
	Die()
}
