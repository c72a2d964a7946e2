package enemy

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

type fakeBody struct {
	pos    cp.Vector
	facing float64
	turns  int
	died   int
	calls  *[]string
}

func (b *fakeBody) Forward() cp.Vector { return cp.Vector{X: b.facing} }
func (b *fakeBody) Turn() { b.facing = -b.facing; b.turns++ }
func (b *fakeBody) Translate(d cp.Vector) {
	b.pos = b.pos.Add(d)
}
func (b *fakeBody) Die() {
	b.died++
	if b.calls != nil {
		*b.calls = append(*b.calls, "body.die")
	}
}

type fakeSensor struct {
	airborne bool
	blocked  bool
	queries  int
}

func (s *fakeSensor) Query() (bool, bool) {
	s.queries++
	return s.airborne, s.blocked
}

type fakeAnimator struct {
	attack bool
	sets   []bool
}

func (a *fakeAnimator) SetAttack(on bool) {
	a.attack = on
	a.sets = append(a.sets, on)
}

type bodyAnchor struct {
	body   *fakeBody
	offset cp.Vector
}

func (a bodyAnchor) Position() cp.Vector { return a.body.pos.Add(a.offset) }

type spawnCall struct {
	kind string
	at   cp.Vector
	dir  Direction
}

type fakeBeams struct {
	next    BeamRef
	spawns  []spawnCall
	alive   map[BeamRef]bool
	tracked map[BeamRef]cp.Vector
	kills   []BeamRef
	calls   *[]string
	err     error
}

func newFakeBeams() *fakeBeams {
	return &fakeBeams{alive: map[BeamRef]bool{}, tracked: map[BeamRef]cp.Vector{}}
}

func (f *fakeBeams) Spawn(kind string, at cp.Vector, dir Direction) (BeamRef, error) {
	if f.err != nil {
		return NoBeam, f.err
	}
	f.next++
	f.spawns = append(f.spawns, spawnCall{kind: kind, at: at, dir: dir})
	f.alive[f.next] = true
	f.tracked[f.next] = at
	return f.next, nil
}

func (f *fakeBeams) Track(beam BeamRef, at cp.Vector) { f.tracked[beam] = at }
func (f *fakeBeams) Alive(beam BeamRef) bool { return f.alive[beam] }
func (f *fakeBeams) Kill(beam BeamRef) {
	f.kills = append(f.kills, beam)
	f.alive[beam] = false
	if f.calls != nil {
		*f.calls = append(*f.calls, "beam.kill")
	}
}

type rig struct {
	ctrl   *Controller
	body   *fakeBody
	sensor *fakeSensor
	anim   *fakeAnimator
	beams  *fakeBeams
}

func newRig(interval, jitter float64) *rig {
	body := &fakeBody{facing: 1}
	sensor := &fakeSensor{}
	anim := &fakeAnimator{}
	beams := newFakeBeams()
	ctrl := New(Config{
		MoveSpeed:      10,
		AttackInterval: interval,
		BeamKind:       "beam",
		Anchor:         bodyAnchor{body: body, offset: cp.Vector{X: 4, Y: -6}},
		Animator:       anim,
		Beams:          beams,
		Jitter:         func() float64 { return jitter },
	}, body, sensor)
	ctrl.Initialize()
	return &rig{ctrl: ctrl, body: body, sensor: sensor, anim: anim, beams: beams}
}

func TestLocomotionTranslatesWithoutFiring(t *testing.T) {
	r := newRig(10, 0)
	for i := 0; i < 8; i++ {
		r.ctrl.Tick(0.5)
	}
	if r.body.pos.X != 40 || r.body.pos.Y != 0 {
		t.Fatalf("expected position (40,0), got %v", r.body.pos)
	}
	if len(r.beams.spawns) != 0 {
		t.Fatalf("expected no beams, got %d", len(r.beams.spawns))
	}
	if r.ctrl.Phase() != PhaseLocomotion {
		t.Fatalf("expected locomotion, got %s", r.ctrl.Phase())
	}
	if r.sensor.queries != 8 {
		t.Fatalf("expected 8 sensor queries, got %d", r.sensor.queries)
	}
}

func TestAttackCycle(t *testing.T) {
	// interval 4 with a jitter of -1 arms the timer at 3.
	r := newRig(4, -1)
	if r.ctrl.AttackTimer() != 3 {
		t.Fatalf("expected armed timer 3, got %v", r.ctrl.AttackTimer())
	}

	steps := []struct {
		name       string
		phase      Phase
		spawns     int
		attack     bool
		posX       float64
		attackMark float64
	}{
		{"walk_2.5", PhaseLocomotion, 0, false, 5, 0},
		{"walk_2", PhaseLocomotion, 0, false, 10, 0},
		{"walk_1.5", PhaseLocomotion, 0, false, 15, 0},
		{"walk_1", PhaseLocomotion, 0, false, 20, 0},
		{"walk_0.5", PhaseLocomotion, 0, false, 25, 0},
		{"walk_0", PhaseLocomotion, 0, false, 30, 0},
		{"charge_-0.5", PhaseCharging, 0, false, 30, 0},
		{"fire_-1", PhaseFiring, 1, true, 30, -1},
		{"sustain_-1.5", PhaseFiring, 1, true, 30, -1},
		{"sustain_-2", PhaseFiring, 1, true, 30, -1},
		{"recover_-2.5", PhaseLocomotion, 1, false, 30, 0},
	}

	for _, s := range steps {
		r.ctrl.Tick(0.5)
		if got := r.ctrl.Phase(); got != s.phase {
			t.Fatalf("%s: expected phase %s, got %s", s.name, s.phase, got)
		}
		if len(r.beams.spawns) != s.spawns {
			t.Fatalf("%s: expected %d spawns, got %d", s.name, s.spawns, len(r.beams.spawns))
		}
		if r.anim.attack != s.attack {
			t.Fatalf("%s: expected attack flag %v, got %v", s.name, s.attack, r.anim.attack)
		}
		if r.body.pos.X != s.posX {
			t.Fatalf("%s: expected x %v, got %v", s.name, s.posX, r.body.pos.X)
		}
		if r.ctrl.AttackStart() != s.attackMark {
			t.Fatalf("%s: expected attack start %v, got %v", s.name, s.attackMark, r.ctrl.AttackStart())
		}
	}

	if r.ctrl.Beam() != NoBeam {
		t.Fatalf("expected beam released after recovery, got %v", r.ctrl.Beam())
	}
	if r.ctrl.AttackTimer() != 3 {
		t.Fatalf("expected re-armed timer 3, got %v", r.ctrl.AttackTimer())
	}
	if len(r.beams.kills) != 0 {
		t.Fatalf("recovery should leave the beam to expire, got kills %v", r.beams.kills)
	}
	if len(r.anim.sets) != 2 || !r.anim.sets[0] || r.anim.sets[1] {
		t.Fatalf("expected attack flag on then off, got %v", r.anim.sets)
	}
	call := r.beams.spawns[0]
	if call.kind != "beam" || call.dir != Right || call.at != (cp.Vector{X: 34, Y: -6}) {
		t.Fatalf("unexpected spawn %+v", call)
	}
}

func TestRearmStaysWithinJitterBounds(t *testing.T) {
	body := &fakeBody{facing: 1}
	beams := newFakeBeams()
	ctrl := New(Config{
		MoveSpeed:      1,
		AttackInterval: 4,
		BeamKind:       "beam",
		Beams:          beams,
	}, body, &fakeSensor{})
	ctrl.Initialize()

	rearms := 0
	wasFiring := false
	for i := 0; i < 2000 && rearms < 20; i++ {
		ctrl.Tick(0.1)
		firing := ctrl.AttackStart() != 0
		if wasFiring && !firing {
			rearms++
			if tm := ctrl.AttackTimer(); tm < 3 || tm > 5 {
				t.Fatalf("re-armed timer %v outside [3,5]", tm)
			}
		}
		wasFiring = firing
	}
	if rearms == 0 {
		t.Fatalf("expected at least one attack cycle")
	}
	if len(beams.spawns) < rearms {
		t.Fatalf("expected a beam per cycle, got %d spawns for %d cycles", len(beams.spawns), rearms)
	}
}

func TestBeamTracksAnchor(t *testing.T) {
	r := newRig(2, -1)
	// 1 unit of walking, 1 of charging, then fire.
	for i := 0; i < 4; i++ {
		r.ctrl.Tick(0.5)
	}
	ref := r.ctrl.Beam()
	if ref == NoBeam {
		t.Fatalf("expected beam after fire")
	}
	anchor := bodyAnchor{body: r.body, offset: cp.Vector{X: 4, Y: -6}}
	for i := 0; i < 2; i++ {
		r.body.pos = r.body.pos.Add(cp.Vector{X: 3, Y: 1})
		r.ctrl.Tick(0.5)
		if r.ctrl.Beam() != ref {
			t.Fatalf("tick %d: beam handle changed", i)
		}
		if got, want := r.beams.tracked[ref], anchor.Position(); got != want {
			t.Fatalf("tick %d: beam at %v, want %v", i, got, want)
		}
	}
}

func TestFacingFlipsOnlyDuringLocomotion(t *testing.T) {
	r := newRig(2, -1)
	r.sensor.blocked = true
	for i := 0; i < 12; i++ {
		r.ctrl.Tick(0.25)
	}
	// timer starts at 1: four locomotion ticks (0.75, 0.5, 0.25, 0), then attack.
	if r.body.turns != 4 {
		t.Fatalf("expected 4 turns, got %d", r.body.turns)
	}
	if r.sensor.queries != 4 {
		t.Fatalf("expected 4 sensor queries, got %d", r.sensor.queries)
	}
	if r.body.pos.X != 0 {
		t.Fatalf("alternating turns should cancel out, got x %v", r.body.pos.X)
	}
}

func TestFireDirectionFollowsFacing(t *testing.T) {
	r := newRig(2, -1)
	r.body.facing = -1
	for i := 0; i < 4; i++ {
		r.ctrl.Tick(0.5)
	}
	if len(r.beams.spawns) != 1 {
		t.Fatalf("expected one spawn, got %d", len(r.beams.spawns))
	}
	if r.beams.spawns[0].dir != Left {
		t.Fatalf("expected left beam, got %s", r.beams.spawns[0].dir)
	}
}

func TestDie(t *testing.T) {
	cases := []struct {
		name      string
		fire      bool
		beamAlive bool
		wantCalls []string
	}{
		{"live_beam", true, true, []string{"beam.kill", "body.die"}},
		{"expired_beam", true, false, []string{"body.die"}},
		{"no_beam", false, false, []string{"body.die"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(2, -1)
			var calls []string
			r.body.calls = &calls
			r.beams.calls = &calls
			if c.fire {
				for i := 0; i < 4; i++ {
					r.ctrl.Tick(0.5)
				}
				if !c.beamAlive {
					r.beams.alive[r.ctrl.Beam()] = false
				}
			}
			r.ctrl.Die()
			if len(calls) != len(c.wantCalls) {
				t.Fatalf("expected calls %v, got %v", c.wantCalls, calls)
			}
			for i := range calls {
				if calls[i] != c.wantCalls[i] {
					t.Fatalf("expected calls %v, got %v", c.wantCalls, calls)
				}
			}
			if r.ctrl.Beam() != NoBeam {
				t.Fatalf("expected beam cleared on death")
			}
		})
	}
}

func TestInitializeBindsSpawnerOnce(t *testing.T) {
	r := newRig(4, 0)
	other := newFakeBeams()
	r.ctrl.cfg.Beams = other
	r.ctrl.Initialize()
	if r.ctrl.beams != BeamSpawner(r.beams) {
		t.Fatalf("spawner should stay bound to the first one")
	}
}

func TestTickInitializesLazily(t *testing.T) {
	body := &fakeBody{facing: 1}
	ctrl := New(Config{MoveSpeed: 2, AttackInterval: 5, Jitter: func() float64 { return 0 }}, body, &fakeSensor{})
	ctrl.Tick(1)
	if ctrl.AttackTimer() != 4 {
		t.Fatalf("expected timer 4, got %v", ctrl.AttackTimer())
	}
	if body.pos.X != 2 {
		t.Fatalf("expected x 2, got %v", body.pos.X)
	}
}

func TestFireWithoutBeamStillCycles(t *testing.T) {
	cases := []struct {
		name  string
		setup func(r *rig)
	}{
		{"no_spawner", func(r *rig) { r.ctrl.beams = nil }},
		{"spawn_error", func(r *rig) { r.beams.err = errors.New("boom") }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(2, -1)
			c.setup(r)
			for i := 0; i < 4; i++ {
				r.ctrl.Tick(0.5)
			}
			if r.ctrl.Beam() != NoBeam {
				t.Fatalf("expected no beam")
			}
			if r.ctrl.AttackStart() != -1 || !r.anim.attack {
				t.Fatalf("expected attack to start, got start=%v attack=%v", r.ctrl.AttackStart(), r.anim.attack)
			}
			for i := 0; i < 3; i++ {
				r.ctrl.Tick(0.5)
			}
			if r.ctrl.Phase() != PhaseLocomotion || r.anim.attack {
				t.Fatalf("expected recovery, got phase %s attack=%v", r.ctrl.Phase(), r.anim.attack)
			}
		})
	}
}

func TestSpawnBeamRejectsRebind(t *testing.T) {
	r := newRig(4, 0)
	r.ctrl.beam = 7
	if err := r.ctrl.spawnBeam(); !errors.Is(err, ErrBeamBound) {
		t.Fatalf("expected ErrBeamBound, got %v", err)
	}
	if len(r.beams.spawns) != 0 {
		t.Fatalf("expected no spawn, got %d", len(r.beams.spawns))
	}
	if r.ctrl.Beam() != 7 {
		t.Fatalf("existing beam should be kept")
	}
}
