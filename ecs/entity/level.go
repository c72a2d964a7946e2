package entity

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"github.com/milk9111/beamwalker/prefabs"
)

// LoadLevel creates wall entities and spawns every enemy the level lists.
// Unknown prefabs are skipped with a log line.
func LoadLevel(w *ecs.World, level *prefabs.LevelSpec, deps Deps) error {
	if level == nil {
		return fmt.Errorf("level: nil spec")
	}

	for i, wall := range level.Walls {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.StaticSegmentComponent.Kind(), &component.StaticSegment{
			A:      cp.Vector{X: wall.A.X, Y: wall.A.Y},
			B:      cp.Vector{X: wall.B.X, Y: wall.B.Y},
			Radius: wall.Radius,
		}); err != nil {
			return fmt.Errorf("level: add wall %d: %w", i, err)
		}
	}

	specs := make(map[string]*prefabs.BeamEnemySpec)
	for i, spawn := range level.Spawns {
		switch spawn.Prefab {
		case "beam_enemy":
			spec, ok := specs[spawn.Prefab]
			if !ok {
				loaded, err := prefabs.LoadBeamEnemySpec()
				if err != nil {
					return fmt.Errorf("level: spawn %d: %w", i, err)
				}
				spec = loaded
				specs[spawn.Prefab] = spec
			}
			if _, err := NewBeamEnemy(w, spec, spawn.Transform, deps); err != nil {
				return fmt.Errorf("level: spawn %d: %w", i, err)
			}
		default:
			log.Printf("level: %s: unknown prefab %q", level.Name, spawn.Prefab)
		}
	}
	return nil
}

// UnloadLevel kills every beam enemy through its controller, then removes
// walls and any leftover beams.
func UnloadLevel(w *ecs.World) {
	ecs.ForEach(w, component.BeamEnemyComponent.Kind(), func(e ecs.Entity, be *component.BeamEnemy) {
		if be.Controller != nil {
			be.Controller.Die()
			return
		}
		ecs.DestroyEntity(w, e)
	})
	for _, e := range w.Query(component.StaticSegmentComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
	for _, e := range w.Query(component.BeamComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}
}
