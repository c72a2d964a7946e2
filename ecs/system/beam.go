package system

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"github.com/milk9111/beamwalker/enemy"
	"github.com/milk9111/beamwalker/prefabs"
)

var ErrUnknownBeamKind = errors.New("beam: unknown kind")

const beamLayer = 2

// BeamRegistry spawns beam entities and resolves beam handles against the
// world. A handle is the beam's entity, so a beam destroyed by its TTL is no
// longer alive for whoever still holds it.
type BeamRegistry struct {
	world *ecs.World
	kinds map[string]prefabs.BeamSpec
}

func NewBeamRegistry(w *ecs.World, kinds map[string]prefabs.BeamSpec) *BeamRegistry {
	return &BeamRegistry{world: w, kinds: kinds}
}

func (r *BeamRegistry) Spawn(kind string, at cp.Vector, dir enemy.Direction) (enemy.BeamRef, error) {
	spec, ok := r.kinds[kind]
	if !ok {
		return enemy.NoBeam, fmt.Errorf("%w: %q", ErrUnknownBeamKind, kind)
	}

	e := ecs.CreateEntity(r.world)
	if err := ecs.Add(r.world, e, component.TransformComponent.Kind(), &component.Transform{
		X:      at.X,
		Y:      at.Y,
		ScaleX: dir.Sign(),
		ScaleY: 1,
	}); err != nil {
		return enemy.NoBeam, fmt.Errorf("beam: add transform: %w", err)
	}
	if err := ecs.Add(r.world, e, component.BeamComponent.Kind(), &component.Beam{
		Kind:      spec.Kind,
		Length:    spec.Length,
		Thickness: spec.Thickness,
		Direction: dir.Sign(),
	}); err != nil {
		return enemy.NoBeam, fmt.Errorf("beam: add beam: %w", err)
	}
	if spec.Lifetime > 0 {
		if err := ecs.Add(r.world, e, component.TTLComponent.Kind(), &component.TTL{Seconds: spec.Lifetime}); err != nil {
			return enemy.NoBeam, fmt.Errorf("beam: add ttl: %w", err)
		}
	}
	if err := ecs.Add(r.world, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color: colorByName(spec.Color, defaultBeamColor),
		Layer: beamLayer,
	}); err != nil {
		return enemy.NoBeam, fmt.Errorf("beam: add appearance: %w", err)
	}

	r.world.Events().Push(ecs.Event{Kind: ecs.EventBeamSpawned, Entity: e, Data: dir})
	return enemy.BeamRef(e), nil
}

func (r *BeamRegistry) Track(ref enemy.BeamRef, at cp.Vector) {
	t, ok := ecs.Get(r.world, ecs.Entity(ref), component.TransformComponent.Kind())
	if !ok || !r.Alive(ref) {
		return
	}
	t.X = at.X
	t.Y = at.Y
}

func (r *BeamRegistry) Alive(ref enemy.BeamRef) bool {
	return ecs.Has(r.world, ecs.Entity(ref), component.BeamComponent.Kind())
}

func (r *BeamRegistry) Kill(ref enemy.BeamRef) {
	if !r.Alive(ref) {
		return
	}
	e := ecs.Entity(ref)
	r.world.Events().Push(ecs.Event{Kind: ecs.EventBeamKilled, Entity: e})
	ecs.DestroyEntity(r.world, e)
}
