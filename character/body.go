// Package character implements the platforming character: its body, the
// movement integrator and the ability state machine that gates spin dash,
// boost, stomp and the homing attack.
package character

import (
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the character's physical state. It is mutated only inside the
// per-frame update.
type Body struct {
	Position     mgl64.Vec3
	Velocity     mgl64.Vec3
	Yaw          float64 // Degrees, 0 faces +Z
	Grounded     bool
	GroundNormal mgl64.Vec3
	HalfExtents  mgl64.Vec3
	Visible      bool
}

// NewBody places a visible body at pos standing on flat ground.
func NewBody(pos, halfExtents mgl64.Vec3) Body {
	return Body{
		Position:     pos,
		GroundNormal: gamemath.Up,
		HalfExtents:  halfExtents,
		Visible:      true,
	}
}

// Bounds is the body's collision volume.
func (b Body) Bounds() collision.Bounds {
	return collision.NewBounds(b.Position, b.HalfExtents)
}

// Forward is the horizontal facing direction.
func (b Body) Forward() mgl64.Vec3 {
	return gamemath.DirectionFromYaw(b.Yaw)
}

// HorizontalSpeed is the speed on the XZ plane.
func (b Body) HorizontalSpeed() float64 {
	return gamemath.HorizontalSpeed(b.Velocity)
}
