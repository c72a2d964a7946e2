package component

import "github.com/jakecoffman/cp"

// StaticSegment is a piece of solid level geometry.
type StaticSegment struct {
	A      cp.Vector
	B      cp.Vector
	Radius float64
}

var StaticSegmentComponent = NewComponent[StaticSegment]()
