package character

import (
	"testing"

	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestIntegrateClampsFallSpeed(t *testing.T) {
	cfg := config.Default().Movement
	for _, step := range []float64{0.001, 1.0 / 60, 0.05, 0.1} {
		for _, vy := range []float64{-100, -30, -29.9, 0, 50} {
			body := NewBody(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0.5, 1, 0.5})
			body.Velocity = mgl64.Vec3{3, vy, -2}
			Integrate(&body, Motion{}, cfg, step)
			assert.GreaterOrEqual(t, body.Velocity.Y(), cfg.MaxFallSpeed, "dt=%v vy=%v", step, vy)
		}
	}
}

func TestIntegrateGroundFrictionSnapsToZero(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true
	body.Velocity = mgl64.Vec3{3, 0, 0}

	for i := 0; i < 120; i++ {
		Integrate(&body, Motion{}, cfg, dt)
	}
	assert.Equal(t, 0.0, body.Velocity.X())
	assert.Equal(t, 0.0, body.Velocity.Z())
}

func TestIntegrateGroundFrictionIsLinear(t *testing.T) {
	cfg := config.Default().Movement
	decel := cfg.Friction + cfg.Deceleration

	tests := []struct {
		name string
		step float64
	}{
		{"60 fps", 1.0 / 60},
		{"10 fps", 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
			body.Grounded = true
			body.Velocity = mgl64.Vec3{20, 0, 0}

			Integrate(&body, Motion{}, cfg, tt.step)
			assert.InDelta(t, 20-decel*tt.step, body.Velocity.X(), 1e-9)

			elapsed := tt.step
			for body.Velocity.X() > 0 && elapsed < 10 {
				Integrate(&body, Motion{}, cfg, tt.step)
				elapsed += tt.step
			}
			assert.InDelta(t, 20/decel, elapsed, tt.step+1e-9)
		})
	}
}

func TestIntegrateRollingIsExemptFromGroundFriction(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true
	body.Velocity = mgl64.Vec3{20, 0, 0}

	Integrate(&body, Motion{Rolling: true}, cfg, dt)
	want := 20 - cfg.RollingFriction*dt
	assert.InDelta(t, want, body.Velocity.X(), 1e-9)
}

func TestIntegrateCapsUnboostedSpeed(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true
	body.Velocity = mgl64.Vec3{0, 0, 24.9}

	Integrate(&body, Motion{Direction: mgl64.Vec3{0, 0, 1}, HasInput: true}, cfg, dt)
	assert.InDelta(t, cfg.TopSpeed, body.HorizontalSpeed(), 1e-9)
}

func TestIntegrateBoostExceedsTopSpeed(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true
	body.Velocity = mgl64.Vec3{0, 0, 25}

	m := Motion{Direction: mgl64.Vec3{0, 0, 1}, HasInput: true, Boosting: true, Rolling: true, BoostMultiplier: 1.8}
	Integrate(&body, m, cfg, dt)
	assert.Greater(t, body.HorizontalSpeed(), cfg.TopSpeed)
}

func TestIntegrateProjectsOntoSlope(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true
	n, _ := gamemath.SafeNormalize(mgl64.Vec3{-1, 1, 0})
	body.GroundNormal = n
	body.Velocity = mgl64.Vec3{10, 0, 0}

	Integrate(&body, Motion{Rolling: true, Boosting: true}, cfg, dt)
	assert.InDelta(t, 0, body.Velocity.Dot(n), 1e-9, "velocity follows the slope plane")
	assert.Greater(t, body.Velocity.Y(), 0.0)
}

func TestIntegrateAirSteerKeepsSideVelocity(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Velocity = mgl64.Vec3{5, 0, -10}

	Integrate(&body, Motion{Direction: mgl64.Vec3{0, 0, 1}, HasInput: true}, cfg, dt)
	assert.InDelta(t, 5, body.Velocity.X(), 1e-9, "side velocity is preserved")
	assert.Greater(t, body.Velocity.Z(), -10.0, "opposing velocity is reduced")
}

func TestIntegrateFacesInput(t *testing.T) {
	cfg := config.Default().Movement
	body := NewBody(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0.5, 1, 0.5})
	body.Grounded = true

	for i := 0; i < 120; i++ {
		Integrate(&body, Motion{Direction: mgl64.Vec3{1, 0, 0}, HasInput: true}, cfg, dt)
	}
	assert.InDelta(t, 90, body.Yaw, 0.01)
}
