package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/beamwalker/ecs"
	"github.com/milk9111/beamwalker/ecs/component"
	"github.com/milk9111/beamwalker/ecs/entity"
	"github.com/milk9111/beamwalker/ecs/system"
	"github.com/milk9111/beamwalker/prefabs"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Options struct {
	Level string
	Debug bool
	Seed  uint64
	Watch bool
}

type Game struct {
	opts    Options
	frames  int
	paused  bool
	jitter  func() float64
	world   *ecs.World
	physics *system.PhysicsSystem
	events  *system.EventLogSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	g := &Game{opts: opts}
	if opts.Seed != 0 {
		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		g.jitter = func() float64 { return rng.Float64()*2 - 1 }
	}

	g.world = ecs.NewWorld()
	g.physics = system.NewPhysicsSystem()
	g.events = system.NewEventLogSystem(opts.Debug)
	g.render = system.NewRenderSystem(g.physics, opts.Debug)

	g.world.AddSystem(g.physics)
	g.world.AddSystem(system.NewBeamEnemySystem())
	g.world.AddSystem(system.NewTTLSystem())
	g.world.AddSystem(g.events)

	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) loadLevel() error {
	level, err := prefabs.LoadLevelSpec(g.opts.Level)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	kinds, err := prefabs.LoadBeamSpecs()
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}
	deps := entity.Deps{
		Beams:   system.NewBeamRegistry(g.world, kinds),
		Physics: g.physics,
		Jitter:  g.jitter,
	}
	if err := entity.LoadLevel(g.world, level, deps); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

func (g *Game) reload() {
	entity.UnloadLevel(g.world)
	if err := g.loadLevel(); err != nil {
		log.Printf("game: reload failed: %v", err)
	}
}

// killAll asks every enemy to die on the next update.
func (g *Game) killAll() {
	for _, e := range g.world.Query(component.BeamEnemyComponent.Kind()) {
		_ = ecs.Add(g.world, e, component.DeathRequestComponent.Kind(), &component.DeathRequest{})
	}
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func (g *Game) Update() error {
	if changed := g.watcher.Poll(); len(changed) > 0 {
		log.Printf("game: prefabs changed %v, reloading", changed)
		g.reload()
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.paused = !g.paused
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.reload()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.killAll()
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.frames++
	g.world.Update(1 / float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Midnightblue)
	g.render.Draw(g.world, screen)

	enemies := len(g.world.Query(component.BeamEnemyComponent.Kind()))
	beams := len(g.world.Query(component.BeamComponent.Kind()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f  enemies: %d  beams: %d  fired: %d\n[K] kill  [R] reload  [P] pause",
		ebiten.ActualFPS(), enemies, beams, g.events.Count(ecs.EventBeamSpawned)))

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
