package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
)

func TestPhysicsSense(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPhysicsSystem()
	addWall(t, w, cp.Vector{X: 0, Y: 600}, cp.Vector{X: 1000, Y: 600})
	addWall(t, w, cp.Vector{X: 300, Y: 500}, cp.Vector{X: 300, Y: 600})
	p.Update(w, 0)

	left := cp.Vector{X: -1}
	right := cp.Vector{X: 1}
	cases := []struct {
		name         string
		pos          cp.Vector
		forward      cp.Vector
		wantAirborne bool
		wantBlocked  bool
	}{
		{"open_floor", cp.Vector{X: 100, Y: 584}, right, false, false},
		{"facing_wall", cp.Vector{X: 290, Y: 584}, right, false, true},
		{"back_to_wall", cp.Vector{X: 290, Y: 584}, left, false, false},
		{"wall_on_left", cp.Vector{X: 310, Y: 584}, left, false, true},
		{"in_the_air", cp.Vector{X: 100, Y: 400}, right, true, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			airborne, blocked := p.Sense(c.pos, 12, 16, c.forward)
			if airborne != c.wantAirborne || blocked != c.wantBlocked {
				t.Fatalf("Sense = (%v,%v), want (%v,%v)", airborne, blocked, c.wantAirborne, c.wantBlocked)
			}
		})
	}
}

func TestPhysicsDropsRemovedSegments(t *testing.T) {
	w := ecs.NewWorld()
	p := NewPhysicsSystem()
	addWall(t, w, cp.Vector{X: 300, Y: 500}, cp.Vector{X: 300, Y: 600})
	p.Update(w, 0)

	pos := cp.Vector{X: 290, Y: 584}
	if _, blocked := p.Sense(pos, 12, 16, cp.Vector{X: 1}); !blocked {
		t.Fatalf("expected wall to block")
	}

	for _, e := range w.Query(component.StaticSegmentComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	p.Update(w, 0)
	if _, blocked := p.Sense(pos, 12, 16, cp.Vector{X: 1}); blocked {
		t.Fatalf("removed wall still blocks")
	}
	if n := len(p.Segments(w)); n != 0 {
		t.Fatalf("expected no segments, got %d", n)
	}
}
