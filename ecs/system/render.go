package system

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"golang.org/x/image/colornames"
)

type RenderSystem struct {
	Physics *PhysicsSystem
	Debug   bool
}

func NewRenderSystem(physics *PhysicsSystem, debug bool) *RenderSystem {
	return &RenderSystem{Physics: physics, Debug: debug}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	for _, seg := range r.Physics.Segments(w) {
		vector.StrokeLine(screen, float32(seg.A.X), float32(seg.A.Y), float32(seg.B.X), float32(seg.B.Y), float32(seg.Radius*2), wallColor, true)
	}

	entities := w.Query(component.TransformComponent.Kind(), component.AppearanceComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li, _ := ecs.Get(w, entities[i], component.AppearanceComponent.Kind())
		lj, _ := ecs.Get(w, entities[j], component.AppearanceComponent.Kind())
		if li.Layer != lj.Layer {
			return li.Layer < lj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		look, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())

		if beam, ok := ecs.Get(w, e, component.BeamComponent.Kind()); ok {
			x := t.X
			if beam.Direction < 0 {
				x -= beam.Length
			}
			vector.FillRect(screen, float32(x), float32(t.Y-beam.Thickness/2), float32(beam.Length), float32(beam.Thickness), look.Color, false)
			continue
		}

		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			continue
		}
		clr := look.Color
		if params, ok := ecs.Get(w, e, component.AnimationParamsComponent.Kind()); ok && params.Bools[component.AnimParamAttack] {
			clr = brighten(clr)
		}
		x := float32(t.X - col.Width/2)
		y := float32(t.Y - col.Height/2)
		vector.FillRect(screen, x, y, float32(col.Width), float32(col.Height), clr, false)

		// facing marker
		eyeX := float32(t.X + col.Width/4)
		if t.ScaleX < 0 {
			eyeX = float32(t.X - col.Width/4)
		}
		vector.FillRect(screen, eyeX-2, y+6, 4, 4, colornames.White, false)

		if r.Debug {
			r.drawDebug(w, e, screen, t, col)
		}
	}
}

func (r *RenderSystem) drawDebug(w *ecs.World, e ecs.Entity, screen *ebiten.Image, t *component.Transform, col *component.Collider) {
	be, ok := ecs.Get(w, e, component.BeamEnemyComponent.Kind())
	if !ok || be.Controller == nil {
		return
	}
	c := be.Controller
	vector.StrokeRect(screen, float32(t.X-col.Width/2), float32(t.Y-col.Height/2), float32(col.Width), float32(col.Height), 1, colornames.Lime, false)
	label := fmt.Sprintf("%s %.2f", c.Phase(), c.AttackTimer())
	if c.Airborne() {
		label += " air"
	}
	ebitenutil.DebugPrintAt(screen, label, int(t.X-col.Width), int(t.Y-col.Height-16))
}

func brighten(c color.RGBA) color.RGBA {
	lift := func(v uint8) uint8 {
		if v > 195 {
			return 255
		}
		return v + 60
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}
