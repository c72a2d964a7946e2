package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
)

const (
	// groundProbe is how far below the feet solid ground is still detected.
	groundProbe = 4.0
	// wallProbe is how far ahead of the collider a wall counts as blocking.
	wallProbe = 2.0
)

// PhysicsSystem mirrors StaticSegment entities into a Chipmunk space and
// answers obstruction queries against them.
type PhysicsSystem struct {
	space  *cp.Space
	shapes map[ecs.Entity]*cp.Shape
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:  cp.NewSpace(),
		shapes: make(map[ecs.Entity]*cp.Shape),
	}
}

// Space returns the underlying Chipmunk space.
func (p *PhysicsSystem) Space() *cp.Space {
	if p == nil {
		return nil
	}
	return p.space
}

func (p *PhysicsSystem) Update(w *ecs.World, dt float64) {
	if p == nil || w == nil {
		return
	}
	p.sync(w)
}

func (p *PhysicsSystem) sync(w *ecs.World) {
	for e, shape := range p.shapes {
		if !ecs.Has(w, e, component.StaticSegmentComponent.Kind()) {
			p.space.RemoveShape(shape)
			delete(p.shapes, e)
		}
	}
	ecs.ForEach(w, component.StaticSegmentComponent.Kind(), func(e ecs.Entity, seg *component.StaticSegment) {
		if _, ok := p.shapes[e]; ok {
			return
		}
		shape := cp.NewSegment(p.space.StaticBody, seg.A, seg.B, seg.Radius)
		shape.SetFriction(1)
		p.space.AddShape(shape)
		p.shapes[e] = shape
	})
}

// Sense checks for ground under a box centred at pos and for a wall in front
// of it along forward.
func (p *PhysicsSystem) Sense(pos cp.Vector, halfW, halfH float64, forward cp.Vector) (airborne, blocked bool) {
	if p == nil || p.space == nil {
		return false, false
	}
	feet := pos.Add(cp.Vector{Y: halfH})
	below := p.space.SegmentQueryFirst(feet.Sub(cp.Vector{Y: 1}), feet.Add(cp.Vector{Y: groundProbe}), 0, cp.SHAPE_FILTER_ALL)
	airborne = below.Shape == nil

	ahead := p.space.SegmentQueryFirst(pos, pos.Add(forward.Mult(halfW+wallProbe)), 0, cp.SHAPE_FILTER_ALL)
	blocked = ahead.Shape != nil
	return airborne, blocked
}

// Segments returns the static geometry currently in the space.
func (p *PhysicsSystem) Segments(w *ecs.World) []component.StaticSegment {
	out := make([]component.StaticSegment, 0, len(p.shapes))
	for e := range p.shapes {
		if seg, ok := ecs.Get(w, e, component.StaticSegmentComponent.Kind()); ok {
			out = append(out, *seg)
		}
	}
	return out
}
