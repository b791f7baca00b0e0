package character

import (
	"math/rand"
	"testing"

	"github.com/automoto/ringrush/audio"
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/homing"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpFromGround(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})
	require.True(t, c.Body.Grounded)

	tick(c, floor, held(config.ActionJump))
	assert.Equal(t, config.StateJumping, c.State())
	assert.True(t, c.JumpLocked())
	assert.True(t, c.HomingAvailable())
	assert.InDelta(t, config.Movement.JumpHeight-config.Movement.Gravity*dt, c.Body.Velocity.Y(), 1e-9)

	// The rising body is not re-grounded by the floor it just left.
	tick(c, floor, held(config.ActionJump))
	assert.False(t, c.Body.Grounded)
	assert.Equal(t, config.StateJumping, c.State())
}

func TestJumpNeedsFreshPress(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, held(config.ActionJump))
	tick(c, floor, held(config.ActionJump))
	require.Equal(t, config.StateJumping, c.State())

	// Hold jump through the landing; holding must not jump again.
	for i := 0; i < 200 && c.State() == config.StateJumping; i++ {
		tick(c, floor, held(config.ActionJump))
	}
	assert.True(t, c.Body.Grounded)
	assert.Equal(t, config.StateIdle, c.State())
	assert.False(t, c.JumpLocked())
}

func TestStompAndLandingCancel(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, held(config.ActionJump))
	tick(c, floor, held(config.ActionStomp))

	assert.Equal(t, config.StateStomping, c.State())
	assert.Equal(t, 0.0, c.Body.Velocity.X())
	assert.Equal(t, 0.0, c.Body.Velocity.Z())
	assert.True(t, c.IsAttacking())

	for i := 0; i < 60 && !c.Body.Grounded; i++ {
		tick(c, floor, held(config.ActionStomp))
	}
	tick(c, floor, Input{})
	assert.True(t, c.Body.Grounded)
	assert.Equal(t, config.StateIdle, c.State())
	assert.True(t, c.HomingAvailable())
}

func fallingController(t *testing.T) (*Controller, *flatFloor) {
	t.Helper()
	c, floor := newGroundedController()
	tick(c, floor, Input{})
	require.True(t, c.HomingAvailable())

	floor.present = false
	tick(c, floor, Input{})
	require.False(t, c.Body.Grounded)
	require.Equal(t, config.StateIdle, c.State())
	return c, floor
}

func TestHomingAttackWhileFalling(t *testing.T) {
	c, floor := fallingController(t)
	target := homing.Candidate{Handle: 7, Position: c.Body.Position.Add(mgl64.Vec3{0, 0, 8}), Alive: true}

	tick(c, floor, held(config.ActionJump), target)
	assert.Equal(t, config.StateHoming, c.State())
	assert.False(t, c.HomingAvailable())
	assert.Greater(t, c.Body.Velocity.Z(), 30.0)
	assert.True(t, c.IsAttacking())
}

func TestHomingWithoutTargetConsumesInput(t *testing.T) {
	c, floor := fallingController(t)
	behind := homing.Candidate{Handle: 7, Position: c.Body.Position.Add(mgl64.Vec3{0, 0, -8}), Alive: true}

	tick(c, floor, held(config.ActionJump), behind)
	assert.Equal(t, config.StateIdle, c.State())
	assert.True(t, c.HomingAvailable())
}

func TestSpringLaunchKeepsHomingSpent(t *testing.T) {
	c, floor := fallingController(t)
	target := homing.Candidate{Handle: 7, Position: c.Body.Position.Add(mgl64.Vec3{0, 0, 8}), Alive: true}
	tick(c, floor, held(config.ActionJump), target)
	require.Equal(t, config.StateHoming, c.State())
	require.False(t, c.HomingAvailable())

	c.LaunchFromSpring(20, c.Body.Position.Y()-c.Body.HalfExtents.Y())
	assert.Equal(t, config.StateIdle, c.State())
	assert.Equal(t, 20.0, c.Body.Velocity.Y())
	assert.True(t, c.JumpLocked())
	assert.False(t, c.HomingAvailable())

	// Only touching the ground arms it again.
	floor.present = true
	for i := 0; i < 300 && !c.Body.Grounded; i++ {
		tick(c, floor, Input{})
	}
	require.True(t, c.Body.Grounded)
	assert.True(t, c.HomingAvailable())
}

func TestHomingBlockedWhileJumping(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, held(config.ActionJump))
	tick(c, floor, Input{})
	target := homing.Candidate{Handle: 7, Position: c.Body.Position.Add(mgl64.Vec3{0, 0, 8}), Alive: true}

	tick(c, floor, held(config.ActionJump), target)
	assert.Equal(t, config.StateJumping, c.State())
	assert.True(t, c.HomingAvailable())
}

func TestSpinDashChargeAndRelease(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})

	for i := 0; i < 60; i++ {
		tick(c, floor, held(config.ActionSpinDash))
		require.Equal(t, config.StateSpinCharging, c.State())
		assert.Equal(t, mgl64.Vec3{}, c.Body.Velocity)
	}
	assert.InDelta(t, 90.0, c.Pools.SpinCharge, 1e-6)

	tick(c, floor, Input{})
	assert.Equal(t, config.StateRolling, c.State())
	assert.Equal(t, 0.0, c.Pools.SpinCharge)
	assert.Greater(t, c.Body.Velocity.Z(), config.Abilities.SpinMinSpeed)
	assert.True(t, c.IsAttacking())
}

func TestSpinDashBelowThresholdDoesNothing(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})
	for i := 0; i < 5; i++ {
		tick(c, floor, held(config.ActionSpinDash))
	}
	tick(c, floor, Input{})

	assert.Equal(t, config.StateIdle, c.State())
	assert.Equal(t, 0.0, c.Pools.SpinCharge)
	assert.Equal(t, 0.0, c.Body.HorizontalSpeed())
}

func TestSpinChargeIsClamped(t *testing.T) {
	c, floor := newGroundedController()
	for i := 0; i < 300; i++ {
		tick(c, floor, held(config.ActionSpinDash))
		assert.LessOrEqual(t, c.Pools.SpinCharge, config.Abilities.MaxSpinCharge)
	}
	assert.Equal(t, config.Abilities.MaxSpinCharge, c.Pools.SpinCharge)
}

func TestSpinChargeForceReleasedInAir(t *testing.T) {
	c, floor := newGroundedController()
	for i := 0; i < 30; i++ {
		tick(c, floor, held(config.ActionSpinDash))
	}
	floor.present = false
	tick(c, floor, held(config.ActionSpinDash))

	assert.Equal(t, config.StateRolling, c.State())
	assert.Equal(t, 0.0, c.Pools.SpinCharge)
}

func TestBoostDrainsUntilExhausted(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})
	in := held(config.ActionMoveForward, config.ActionBoost)

	tick(c, floor, in)
	require.Equal(t, config.StateBoosting, c.State())
	assert.False(t, c.IsAttacking())

	for i := 0; i < 400 && c.State() == config.StateBoosting; i++ {
		tick(c, floor, in)
		assert.GreaterOrEqual(t, c.Pools.Boost, 0.0)
	}
	assert.Equal(t, config.StateRolling, c.State())
	assert.Greater(t, c.Body.HorizontalSpeed(), config.Movement.TopSpeed)
}

func TestBoostNeedsEnergyAndInput(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})

	tick(c, floor, held(config.ActionBoost))
	assert.NotEqual(t, config.StateBoosting, c.State(), "no move input")

	c.Pools.DrainBoost(c.Pools.MaxBoost() - config.Abilities.BoostMinActivation)
	tick(c, floor, held(config.ActionMoveForward, config.ActionBoost))
	assert.NotEqual(t, config.StateBoosting, c.State(), "energy at the activation threshold")
}

func TestRollingExitsWhenSlow(t *testing.T) {
	c, floor := newGroundedController()
	for i := 0; i < 30; i++ {
		tick(c, floor, held(config.ActionSpinDash))
	}
	tick(c, floor, Input{})
	require.Equal(t, config.StateRolling, c.State())

	for i := 0; i < 2000 && c.State() == config.StateRolling; i++ {
		tick(c, floor, Input{})
	}
	assert.Equal(t, config.StateIdle, c.State())
	assert.Less(t, c.Body.HorizontalSpeed(), config.Movement.BaseSpeed*config.Movement.RollExitThreshold)
}

func TestLocomotionStates(t *testing.T) {
	c, floor := newGroundedController()
	tick(c, floor, Input{})

	tick(c, floor, held(config.ActionMoveForward))
	assert.Equal(t, config.StateWalking, c.State())

	for i := 0; i < 120; i++ {
		tick(c, floor, held(config.ActionMoveForward))
	}
	assert.Equal(t, config.StateRunning, c.State())

	tick(c, floor, Input{})
	assert.Equal(t, config.StateIdle, c.State())
}

func TestAudioEvents(t *testing.T) {
	rec := &audio.Recorder{}
	floor := &flatFloor{present: true}
	c := NewController(config.Default(), mgl64.Vec3{0, 1, 0}, rec)

	tick(c, floor, Input{})
	tick(c, floor, held(config.ActionJump))

	events := rec.Drain()
	require.Len(t, events, 1)
	assert.Equal(t, "jump", events[0].Name)
}

func TestRandomInputKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	c, floor := newGroundedController()
	target := homing.Candidate{Handle: 3, Position: mgl64.Vec3{0, 4, 10}, Alive: true}

	for i := 0; i < 3000; i++ {
		var in Input
		for id := config.ActionMoveLeft; id < config.ActionCount; id++ {
			in.Held[id] = rng.Intn(4) == 0
		}
		step := rng.Float64() * 0.1
		c.CheckGround(floor)
		c.SampleInput(in)
		c.UpdateAbilities(step, []homing.Candidate{target}, floor)
		c.Move(step)

		s := c.State()
		attacking := s == config.StateRolling || s == config.StateStomping || s == config.StateHoming
		require.Equal(t, attacking, c.IsAttacking(), "tick %d state %s", i, s)
		require.GreaterOrEqual(t, c.Body.Velocity.Y(), config.Movement.MaxFallSpeed)
		require.GreaterOrEqual(t, c.Pools.Boost, 0.0)
		require.LessOrEqual(t, c.Pools.Boost, c.Pools.MaxBoost())
		require.GreaterOrEqual(t, c.Pools.SpinCharge, 0.0)
		require.LessOrEqual(t, c.Pools.SpinCharge, c.Pools.MaxCharge())
		if s == config.StateHoming {
			require.False(t, c.HomingAvailable())
		}
	}
}
