package system

import (
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
)

// TTLSystem counts down TTL components and destroys entities whose time ran
// out. Expiring beams are reported as EventBeamExpired.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Seconds -= dt
		if ttl.Seconds > 0 {
			return
		}
		if beam, ok := ecs.Get(w, e, component.BeamComponent.Kind()); ok {
			w.Events().Push(ecs.Event{Kind: ecs.EventBeamExpired, Entity: e, Data: beam.Kind})
		}
		ecs.DestroyEntity(w, e)
	})
}
