package enemy

import (
	"errors"
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

const (
	// chargeDuration is how long the unit winds up after the timer crosses zero.
	chargeDuration = 1.0
	// sustainDuration is how long the attack pose is held after firing.
	sustainDuration = 1.0
)

var ErrBeamBound = errors.New("enemy: beam already bound")

// Config holds the tuning and collaborators of a beam enemy.
//
// AttackInterval values of 2 or less overlap the charge and sustain windows,
// which makes the unit fire almost continuously.
type Config struct {
	MoveSpeed      float64
	AttackInterval float64
	BeamKind       string

	Anchor   Anchor
	Animator AnimationSink
	Beams    BeamSpawner

	// Jitter returns a value in [-1, 1] added to AttackInterval on every arm.
	// Defaults to a uniform draw.
	Jitter func() float64
}

// Controller walks a unit back and forth and periodically stops to fire a
// beam. The attack cycle runs off a single countdown: one unit of charge
// after it crosses zero, then the beam is fired and held for one unit
// measured from the fire instant, then the timer is re-armed.
type Controller struct {
	cfg    Config
	body   Body
	sensor ObstructionSensor
	beams  BeamSpawner

	ready       bool
	attackTimer float64
	attackStart float64
	beam        BeamRef
	airborne    bool
}

func New(cfg Config, body Body, sensor ObstructionSensor) *Controller {
	if cfg.Jitter == nil {
		cfg.Jitter = uniformJitter
	}
	return &Controller{
		cfg:    cfg,
		body:   body,
		sensor: sensor,
	}
}

func uniformJitter() float64 {
	return rand.Float64()*2 - 1
}

// Initialize binds the beam spawner if it is not bound yet and arms the
// attack timer.
func (c *Controller) Initialize() {
	if c == nil {
		return
	}
	if c.beams == nil {
		c.beams = c.cfg.Beams
	}
	c.armTimer()
	c.ready = true
}

func (c *Controller) armTimer() {
	c.attackStart = 0
	c.attackTimer = c.cfg.AttackInterval + c.cfg.Jitter()
}

// Tick advances the controller by dt seconds.
func (c *Controller) Tick(dt float64) {
	if c == nil {
		return
	}
	if !c.ready {
		c.Initialize()
	}

	c.attackTimer -= dt
	if c.attackTimer >= 0 {
		c.walk(dt)
		return
	}

	switch {
	case c.attackTimer > -chargeDuration:
		// charging
	case c.attackStart == 0:
		c.fire()
	case c.attackTimer < c.attackStart-sustainDuration:
		c.setAttackPose(false)
		c.armTimer()
		c.beam = NoBeam
	}

	if c.beam != NoBeam && c.beams != nil {
		c.beams.Track(c.beam, c.anchorPosition())
	}
}

func (c *Controller) walk(dt float64) {
	blocked := false
	if c.sensor != nil {
		c.airborne, blocked = c.sensor.Query()
	}
	if c.body == nil {
		return
	}
	if blocked {
		c.body.Turn()
	}
	c.body.Translate(c.body.Forward().Mult(c.cfg.MoveSpeed * dt))
}

func (c *Controller) fire() {
	if err := c.spawnBeam(); err != nil {
		log.Printf("enemy: fire beam: %v", err)
	}
	c.attackStart = c.attackTimer
	c.setAttackPose(true)
}

func (c *Controller) spawnBeam() error {
	if c.beam != NoBeam {
		return ErrBeamBound
	}
	if c.beams == nil {
		return errors.New("enemy: no beam spawner bound")
	}
	dir := Right
	if c.body != nil {
		dir = DirectionOf(c.body.Forward())
	}
	ref, err := c.beams.Spawn(c.cfg.BeamKind, c.anchorPosition(), dir)
	if err != nil {
		return err
	}
	c.beam = ref
	return nil
}

func (c *Controller) setAttackPose(on bool) {
	if c.cfg.Animator != nil {
		c.cfg.Animator.SetAttack(on)
	}
}

func (c *Controller) anchorPosition() cp.Vector {
	if c.cfg.Anchor == nil {
		return cp.Vector{}
	}
	return c.cfg.Anchor.Position()
}

// Die terminates a live beam before handing over to the body's own death.
func (c *Controller) Die() {
	if c == nil {
		return
	}
	if c.beam != NoBeam && c.beams != nil && c.beams.Alive(c.beam) {
		c.beams.Kill(c.beam)
	}
	c.beam = NoBeam
	if c.body != nil {
		c.body.Die()
	}
}

// Phase reports the current attack cycle stage.
func (c *Controller) Phase() Phase {
	switch {
	case c.attackTimer >= 0:
		return PhaseLocomotion
	case c.attackStart == 0:
		return PhaseCharging
	default:
		return PhaseFiring
	}
}

func (c *Controller) AttackTimer() float64 { return c.attackTimer }

// AttackStart returns the timer value captured when the beam fired, or 0.
func (c *Controller) AttackStart() float64 { return c.attackStart }

func (c *Controller) Beam() BeamRef { return c.beam }

// Airborne returns the last airborne reading. Movement does not depend on it.
func (c *Controller) Airborne() bool { return c.airborne }
