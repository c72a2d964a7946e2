package entity

import (
	"fmt"

	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"github.com/milk9111/beamwalker/ecs/system"
	"github.com/milk9111/beamwalker/enemy"
	"github.com/milk9111/beamwalker/prefabs"
)

const enemyLayer = 1

// Deps are the shared services every beam enemy is wired to.
type Deps struct {
	Beams   enemy.BeamSpawner
	Physics *system.PhysicsSystem
	// Jitter overrides the attack timer jitter. Nil means uniform in [-1, 1].
	Jitter func() float64
}

func NewBeamEnemy(w *ecs.World, spec *prefabs.BeamEnemySpec, at prefabs.TransformSpec, deps Deps) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("beam enemy: nil spec")
	}

	e := ecs.CreateEntity(w)

	scaleX, scaleY := at.ScaleX, at.ScaleY
	if scaleX == 0 {
		scaleX = 1
	}
	if scaleY == 0 {
		scaleY = 1
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      at.X,
		Y:      at.Y,
		ScaleX: scaleX,
		ScaleY: scaleY,
	}); err != nil {
		return 0, fmt.Errorf("beam enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("beam enemy: add collider: %w", err)
	}

	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{
		Color: system.EnemyColor(spec.Color),
		Layer: enemyLayer,
	}); err != nil {
		return 0, fmt.Errorf("beam enemy: add appearance: %w", err)
	}

	if err := ecs.Add(w, e, component.BeamEnemyComponent.Kind(), &component.BeamEnemy{
		WandX: spec.Wand.X,
		WandY: spec.Wand.Y,
	}); err != nil {
		return 0, fmt.Errorf("beam enemy: add beam enemy: %w", err)
	}

	if _, err := system.BindBeamEnemy(w, e, enemy.Config{
		MoveSpeed:      spec.MoveSpeed,
		AttackInterval: spec.AttackDelay,
		BeamKind:       spec.Beam,
		Beams:          deps.Beams,
		Jitter:         deps.Jitter,
	}, deps.Physics); err != nil {
		return 0, fmt.Errorf("beam enemy: bind controller: %w", err)
	}

	return e, nil
}
