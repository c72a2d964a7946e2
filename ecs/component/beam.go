package component

// Beam is a short-lived attack entity. Its transform is the beam origin and
// it extends Length pixels along Direction.
type Beam struct {
	Kind      string
	Length    float64
	Thickness float64
	// Direction is -1 for left, 1 for right.
	Direction float64
	Owner     uint64
}

var BeamComponent = NewComponent[Beam]()
