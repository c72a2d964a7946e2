package system

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"github.com/milk9111/beamwalker/enemy"
)

// BeamEnemySystem ticks every beam enemy controller. Entities carrying a
// DeathRequest die instead of ticking.
type BeamEnemySystem struct{}

func NewBeamEnemySystem() *BeamEnemySystem {
	return &BeamEnemySystem{}
}

func (s *BeamEnemySystem) Update(w *ecs.World, dt float64) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.BeamEnemyComponent.Kind(), func(e ecs.Entity, be *component.BeamEnemy) {
		if be.Controller == nil {
			return
		}
		if ecs.Has(w, e, component.DeathRequestComponent.Kind()) {
			be.Controller.Die()
			return
		}
		be.Controller.Tick(dt)
	})
}

// BindBeamEnemy builds a controller that drives entity e through the world.
// e must already have Transform, Collider and BeamEnemy components. The
// controller is stored on the BeamEnemy component and initialized.
func BindBeamEnemy(w *ecs.World, e ecs.Entity, cfg enemy.Config, physics *PhysicsSystem) (*enemy.Controller, error) {
	be, ok := ecs.Get(w, e, component.BeamEnemyComponent.Kind())
	if !ok {
		return nil, fmt.Errorf("beam enemy: entity %s has no BeamEnemy component", e)
	}
	if !ecs.Has(w, e, component.AnimationParamsComponent.Kind()) {
		if err := ecs.Add(w, e, component.AnimationParamsComponent.Kind(), &component.AnimationParams{}); err != nil {
			return nil, err
		}
	}

	cfg.Anchor = wandAnchor{w: w, e: e}
	cfg.Animator = animationSink{w: w, e: e}
	ctrl := enemy.New(cfg, enemyBody{w: w, e: e}, obstructionSensor{w: w, e: e, physics: physics})
	ctrl.Initialize()
	be.Controller = ctrl
	return ctrl, nil
}

type enemyBody struct {
	w *ecs.World
	e ecs.Entity
}

func (b enemyBody) Forward() cp.Vector {
	if t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind()); ok && t.ScaleX < 0 {
		return cp.Vector{X: -1}
	}
	return cp.Vector{X: 1}
}

func (b enemyBody) Turn() {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	if t.ScaleX == 0 {
		t.ScaleX = 1
	}
	t.ScaleX = -t.ScaleX
	b.w.Events().Push(ecs.Event{Kind: ecs.EventEnemyTurned, Entity: b.e, Data: enemy.DirectionOf(b.Forward())})
}

func (b enemyBody) Translate(d cp.Vector) {
	t, ok := ecs.Get(b.w, b.e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	t.X += d.X
	t.Y += d.Y
}

func (b enemyBody) Die() {
	if !ecs.IsAlive(b.w, b.e) {
		return
	}
	b.w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDied, Entity: b.e})
	ecs.DestroyEntity(b.w, b.e)
}

// wandAnchor places the wand relative to the transform, mirrored with facing.
type wandAnchor struct {
	w *ecs.World
	e ecs.Entity
}

func (a wandAnchor) Position() cp.Vector {
	t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}
	}
	pos := cp.Vector{X: t.X, Y: t.Y}
	be, ok := ecs.Get(a.w, a.e, component.BeamEnemyComponent.Kind())
	if !ok {
		return pos
	}
	sign := 1.0
	if t.ScaleX < 0 {
		sign = -1
	}
	return pos.Add(cp.Vector{X: be.WandX * sign, Y: be.WandY})
}

type obstructionSensor struct {
	w       *ecs.World
	e       ecs.Entity
	physics *PhysicsSystem
}

func (s obstructionSensor) Query() (airborne, blocked bool) {
	t, ok := ecs.Get(s.w, s.e, component.TransformComponent.Kind())
	if !ok {
		return false, false
	}
	col, ok := ecs.Get(s.w, s.e, component.ColliderComponent.Kind())
	if !ok {
		return false, false
	}
	forward := enemyBody{w: s.w, e: s.e}.Forward()
	return s.physics.Sense(cp.Vector{X: t.X, Y: t.Y}, col.Width/2, col.Height/2, forward)
}

type animationSink struct {
	w *ecs.World
	e ecs.Entity
}

func (a animationSink) SetAttack(on bool) {
	params, ok := ecs.Get(a.w, a.e, component.AnimationParamsComponent.Kind())
	if !ok {
		return
	}
	params.SetBool(component.AnimParamAttack, on)
	a.w.Events().Push(ecs.Event{Kind: ecs.EventAttackPose, Entity: a.e, Data: on})
}
