// Package camera implements the third-person rig that follows the character.
// It only produces a basis and an eye position; drawing is left to whoever
// consumes them.
package camera

import (
	"github.com/automoto/ringrush/config"
	"github.com/automoto/ringrush/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

// Rig orbits a follow point. Yaw is in degrees with 0 looking down +Z.
type Rig struct {
	Position mgl64.Vec3 // Smoothed follow point
	Yaw      float64
	Distance float64

	cfg config.CameraConfig
}

// NewRig places the rig on target at the base distance.
func NewRig(cfg config.CameraConfig, target mgl64.Vec3) *Rig {
	return &Rig{
		Position: target.Add(mgl64.Vec3{0, cfg.LookOffset, 0}),
		Distance: cfg.BaseDistance,
		cfg:      cfg,
	}
}

// Update rotates the rig from the camera inputs, then eases the follow point
// toward the target and the distance toward the speed-based zoom.
func (r *Rig) Update(dt float64, target mgl64.Vec3, speed float64, left, right bool) {
	if left {
		r.Yaw += r.cfg.RotateSpeed * dt
	}
	if right {
		r.Yaw -= r.cfg.RotateSpeed * dt
	}
	r.Yaw = gamemath.NormalizeAngle(r.Yaw)

	look := target.Add(mgl64.Vec3{0, r.cfg.LookOffset, 0})
	r.Position = gamemath.LerpVec(r.Position, look, dt*r.cfg.FollowSmoothing)

	zoom := mgl64.Clamp(r.cfg.BaseDistance+speed*r.cfg.SpeedZoom, r.cfg.MinDistance, r.cfg.MaxDistance)
	r.Distance = gamemath.Lerp(r.Distance, zoom, dt*r.cfg.ZoomSmoothing)
}

// Forward is the horizontal direction the camera looks along.
func (r *Rig) Forward() mgl64.Vec3 {
	return gamemath.DirectionFromYaw(r.Yaw)
}

// Right is the horizontal direction to the camera's right.
func (r *Rig) Right() mgl64.Vec3 {
	return gamemath.DirectionFromYaw(r.Yaw + 90)
}

// Eye is the camera position: behind and above the follow point.
func (r *Rig) Eye() mgl64.Vec3 {
	return r.Position.Sub(r.Forward().Mul(r.Distance)).Add(mgl64.Vec3{0, r.cfg.Height, 0})
}
