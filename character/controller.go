package character

import (
	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/homing"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Controller owns the character body, its single ability state and the
// resource pools. The frame coordinator drives it once per tick in a fixed
// order: CheckGround, SampleInput, UpdateAbilities, Move.
type Controller struct {
	Body  Body
	Pools Pools

	cfg   config.Config
	state config.AbilityState
	audio audio.Player

	homingAvailable bool
	jumpLock        bool
	wasGrounded     bool

	curr, prev [config.ActionCount]bool
	moveDir    mgl64.Vec3
	hasMove    bool
}

// NewController creates an idle character at spawn. A nil player is silent.
func NewController(cfg config.Config, spawn mgl64.Vec3, player audio.Player) *Controller {
	half := mgl64.Vec3{cfg.Character.HalfWidth, cfg.Character.HalfHeight, cfg.Character.HalfWidth}
	if player == nil {
		player = audio.Nop{}
	}
	return &Controller{
		Body:  NewBody(spawn, half),
		Pools: NewPools(cfg.Abilities),
		cfg:   cfg,
		state: config.StateIdle,
		audio: player,
	}
}

// State is the active ability state.
func (c *Controller) State() config.AbilityState { return c.state }

// IsAttacking reports whether hazard contact defeats the hazard.
func (c *Controller) IsAttacking() bool { return c.state.IsAttacking() }

// HomingAvailable reports whether a homing attack is armed.
func (c *Controller) HomingAvailable() bool { return c.homingAvailable }

// JumpLocked reports whether a launch is still waiting for a landing.
func (c *Controller) JumpLocked() bool { return c.jumpLock }

// Action returns the temporal state of an input action this tick.
func (c *Controller) Action(id config.ActionID) ActionState {
	return actionState(c.curr, c.prev, id)
}

// CheckGround probes for ground under the body. While a launch is rising the
// probe is skipped, so a jump or spring is not re-grounded by the surface it
// left.
func (c *Controller) CheckGround(q collision.Provider) {
	c.wasGrounded = c.Body.Grounded
	if c.jumpLock && c.Body.Velocity.Y() > 0 {
		c.Body.Grounded = false
		c.Body.GroundNormal = gamemath.Up
		return
	}

	hit := ProbeGround(q, c.Body, c.cfg.Character)
	c.Body.Grounded = hit.Hit
	if !hit.Hit {
		c.Body.GroundNormal = gamemath.Up
		return
	}
	c.Body.GroundNormal = hit.Normal
	c.Body.Position[1] = gamemath.RestOnSurfaceY(hit.Point.Y(), c.Body.HalfExtents.Y())
}

// SampleInput records this tick's held flags and resolves the
// camera-relative move direction.
func (c *Controller) SampleInput(in Input) {
	c.prev = c.curr
	c.curr = in.Held
	c.moveDir, c.hasMove = in.MoveDirection()
}

// UpdateAbilities runs the state machine. Rules are evaluated in precedence
// order; an action that claims the tick blocks the ones it excludes.
func (c *Controller) UpdateAbilities(dt float64, candidates []homing.Candidate, los collision.Provider) {
	ab := c.cfg.Abilities
	grounded := c.Body.Grounded

	// Landing
	if grounded && !c.wasGrounded {
		if c.state.IsAirborneAttack() || c.state == config.StateJumping {
			c.state = config.StateIdle
		}
		c.homingAvailable = true
		c.jumpLock = false
	}

	// A spin dash cannot be held in the air.
	if !grounded && c.state == config.StateSpinCharging {
		c.releaseSpinDash()
	}

	jump := c.Action(config.ActionJump)
	jumped := false

	// Jump
	if grounded && jump.JustPressed && !c.jumpLock && c.state != config.StateSpinCharging {
		c.Body.Velocity[1] = c.cfg.Movement.JumpHeight
		c.Body.Grounded = false
		grounded = false
		c.state = config.StateJumping
		c.homingAvailable = true
		c.jumpLock = true
		jumped = true
		audio.PlaySound(c.audio, config.SoundJump)
	}

	// Stomp
	if !grounded && !jumped && c.Action(config.ActionStomp).Pressed &&
		c.state != config.StateStomping && c.state != config.StateHoming {
		c.Body.Velocity = mgl64.Vec3{0, ab.StompSpeed, 0}
		c.state = config.StateStomping
		audio.PlaySound(c.audio, config.SoundStomp)
	}

	// Homing attack
	if !grounded && !jumped && jump.JustPressed && c.homingAvailable &&
		c.state != config.StateStomping && c.state != config.StateJumping {
		c.tryHoming(candidates, los)
	}

	// Spin dash charge and release
	spin := c.Action(config.ActionSpinDash)
	if grounded && spin.Pressed && c.state != config.StateRolling && c.state != config.StateBoosting {
		if c.state != config.StateSpinCharging {
			c.Body.Velocity = mgl64.Vec3{}
			audio.PlaySound(c.audio, config.SoundSpinCharge)
		}
		c.Pools.AddCharge(ab.SpinChargeRate * dt)
		c.state = config.StateSpinCharging
	}
	if c.state == config.StateSpinCharging && !spin.Pressed {
		c.releaseSpinDash()
	}

	// Boost
	boost := c.Action(config.ActionBoost)
	if c.state == config.StateBoosting {
		if !boost.Pressed || !c.Pools.DrainBoost(ab.BoostCost*dt) {
			c.state = config.StateRolling
		}
	} else if grounded && boost.Pressed && c.hasMove && c.Pools.Boost > ab.BoostMinActivation &&
		c.state != config.StateSpinCharging {
		c.state = config.StateBoosting
		audio.PlaySound(c.audio, config.SoundBoost)
	}
	if grounded && c.state != config.StateBoosting {
		c.Pools.RechargeBoost(ab.BoostRecharge * dt)
	}

	if grounded {
		c.updateLocomotion()
	}
}

// updateLocomotion settles the grounded movement states once no ability has
// claimed the tick.
func (c *Controller) updateLocomotion() {
	m := c.cfg.Movement
	speed := c.Body.HorizontalSpeed()

	if c.state == config.StateRolling && speed < m.BaseSpeed*m.RollExitThreshold {
		c.state = config.StateIdle
	}

	switch c.state {
	case config.StateIdle, config.StateWalking, config.StateRunning:
	default:
		return
	}
	switch {
	case !c.hasMove:
		c.state = config.StateIdle
	case speed > m.BaseSpeed*m.RunThreshold:
		c.state = config.StateRunning
	default:
		c.state = config.StateWalking
	}
}

func (c *Controller) tryHoming(candidates []homing.Candidate, los collision.Provider) {
	h := c.cfg.Homing
	params := homing.Params{Range: h.Range, AngleLimit: h.AngleLimit, MinDist: h.MinDist}
	target, ok := homing.Select(candidates, c.Body.Position, c.Body.Forward(), params, los)
	if !ok {
		return
	}
	dir, ok := gamemath.SafeNormalize(target.Position.Sub(c.Body.Position))
	if !ok {
		return
	}
	c.Body.Velocity = dir.Mul(h.Speed)
	c.state = config.StateHoming
	c.homingAvailable = false
	audio.PlaySound(c.audio, config.SoundHoming)
}

// releaseSpinDash launches along the facing direction if enough charge was
// built. The charge is spent either way.
func (c *Controller) releaseSpinDash() {
	ab := c.cfg.Abilities
	if c.Pools.SpinCharge > ab.SpinMinCharge {
		speed := ab.SpinMinSpeed + c.Pools.SpinCharge*ab.SpinSpeedFactor
		c.Body.Velocity = c.Body.Forward().Mul(speed)
		c.state = config.StateRolling
		audio.PlaySound(c.audio, config.SoundSpinRelease)
	} else {
		c.state = config.StateIdle
	}
	c.Pools.ResetCharge()
}

// Move runs the movement integrator for the current state.
func (c *Controller) Move(dt float64) {
	Integrate(&c.Body, Motion{
		Direction:       c.moveDir,
		HasInput:        c.hasMove,
		Boosting:        c.state == config.StateBoosting,
		Rolling:         c.state == config.StateRolling || c.state == config.StateBoosting,
		Charging:        c.state == config.StateSpinCharging,
		BoostMultiplier: c.cfg.Abilities.BoostMultiplier,
	}, c.cfg.Movement, dt)
}

// Bounce sets an upward speed after defeating a hazard in the air and re-arms
// the homing attack so attacks can chain.
func (c *Controller) Bounce(vy float64) {
	c.Body.Velocity[1] = vy
	c.Body.Grounded = false
	c.jumpLock = true
	c.homingAvailable = true
	if c.state == config.StateHoming || c.state == config.StateStomping {
		c.state = config.StateIdle
	}
}

// ArmHoming re-enables the homing attack without touching velocity.
func (c *Controller) ArmHoming() {
	c.homingAvailable = true
}

// LaunchFromSpring places the body on top of a spring and sends it up. The
// jump-lock keeps the next ground probe from cancelling the launch.
func (c *Controller) LaunchFromSpring(power, springTop float64) {
	c.Body.Velocity[1] = power
	c.Body.Position[1] = gamemath.RestOnSurfaceY(springTop, c.Body.HalfExtents.Y())
	c.Body.Grounded = false
	c.jumpLock = true
	if c.state.IsAirborneAttack() || c.state == config.StateSpinCharging {
		c.Pools.ResetCharge()
		c.state = config.StateIdle
	}
}

// Knockback replaces the velocity after losing a life.
func (c *Controller) Knockback(v mgl64.Vec3) {
	c.Body.Velocity = v
	c.Body.Grounded = false
	c.jumpLock = v.Y() > 0
	if c.state == config.StateSpinCharging {
		c.Pools.ResetCharge()
	}
	c.state = config.StateIdle
}

// Respawn resets the character at pos with a full boost gauge.
func (c *Controller) Respawn(pos mgl64.Vec3) {
	c.Body.Position = pos
	c.Body.Velocity = mgl64.Vec3{}
	c.Body.Grounded = false
	c.Body.GroundNormal = gamemath.Up
	c.Body.Visible = true
	c.Pools.RestoreBoost()
	c.Pools.ResetCharge()
	c.state = config.StateIdle
	c.jumpLock = false
	c.homingAvailable = false
}

// Hide removes the body from view for the game over screen.
func (c *Controller) Hide() {
	c.Body.Visible = false
}
