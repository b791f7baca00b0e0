package character

import (
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Motion is what the ability state machine hands the integrator for one tick.
type Motion struct {
	Direction mgl64.Vec3 // Unit horizontal direction, valid when HasInput
	HasInput  bool
	Boosting  bool
	Rolling   bool
	Charging  bool

	BoostMultiplier float64
}

// airControlGain scales air_control_factor into a per-second blend rate.
const airControlGain = 5.0

// Integrate advances the body's velocity and position by dt. dt is expected
// to be clamped upstream.
func Integrate(body *Body, m Motion, cfg config.MovementConfig, dt float64) {
	v := body.Velocity

	if !body.Grounded {
		v[1] -= cfg.Gravity * dt
		v[1] = gamemath.ClampFallSpeed(v[1], cfg.MaxFallSpeed)
	}

	switch {
	case m.HasInput && !m.Charging:
		v = accelerate(v, m, body.Grounded, cfg, dt)
	case body.Grounded && m.Rolling && !m.Boosting:
		v = gamemath.DecaySpeed(v, cfg.RollingFriction, dt)
	case body.Grounded && !m.Rolling && !m.Charging:
		v = gamemath.DecaySpeed(v, cfg.Friction+cfg.Deceleration, dt)
	}

	if body.Grounded {
		if v.Y() < 0 {
			v[1] = 0
		}
		if n, ok := gamemath.SafeNormalize(body.GroundNormal); ok {
			v = gamemath.ProjectOnPlane(v, n)
		}
	}
	v[1] = gamemath.ClampFallSpeed(v[1], cfg.MaxFallSpeed)

	body.Velocity = v
	face(body, m, cfg, dt)
	body.Position = body.Position.Add(v.Mul(dt))
}

// accelerate pushes velocity along the move direction while the speed along
// it is below the target. Unboosted horizontal speed is capped at TopSpeed.
func accelerate(v mgl64.Vec3, m Motion, grounded bool, cfg config.MovementConfig, dt float64) mgl64.Vec3 {
	dir := m.Direction
	target := cfg.TopSpeed
	if m.Boosting {
		target *= m.BoostMultiplier
	}
	accel := cfg.Acceleration
	if !grounded {
		accel = cfg.AirAcceleration
	}

	along := gamemath.Horizontal(v).Dot(dir)
	if along < target {
		v = v.Add(dir.Mul(accel * dt))
		if !m.Boosting {
			v = gamemath.ClampHorizontalSpeed(v, cfg.TopSpeed)
		}
	}

	if !grounded {
		v = airSteer(v, dir, cfg.AirControlFactor, dt)
	}
	return v
}

// airSteer bleeds off horizontal velocity that opposes the input direction
// while keeping the sideways part, so mid-air turns are possible but weaker
// than on the ground.
func airSteer(v, dir mgl64.Vec3, factor, dt float64) mgl64.Vec3 {
	h := gamemath.Horizontal(v)
	along := h.Dot(dir)
	if along >= 0 {
		return v
	}
	side := h.Sub(dir.Mul(along))
	blended := gamemath.LerpVec(h, side, dt*factor*airControlGain)
	return mgl64.Vec3{blended.X(), v.Y(), blended.Z()}
}

// face turns the body toward the input direction. Charging a spin dash
// holds the current facing so the release goes where the body points.
func face(body *Body, m Motion, cfg config.MovementConfig, dt float64) {
	if !m.HasInput || m.Charging {
		return
	}
	target := gamemath.YawFromDirection(m.Direction)
	body.Yaw = gamemath.LerpAngle(body.Yaw, target, dt*cfg.TurnRate)
}
