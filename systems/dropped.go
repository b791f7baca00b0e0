package systems

import (
	"github.com/automoto/ringrush/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateDroppedRings moves scattered rings under gravity, settles them on
// the ground plane at y = 0 and advances their fade.
func UpdateDroppedRings(w donburi.World, dt, gravity float64) {
	components.DroppedRing.Each(w, func(e *donburi.Entry) {
		ring := components.DroppedRing.Get(e)
		obj := components.Object.Get(e)

		ring.Velocity[1] -= gravity * dt
		obj.Position = obj.Position.Add(ring.Velocity.Mul(dt))
		if obj.Position.Y() <= 0 {
			obj.Position[1] = 0
			ring.Velocity = mgl64.Vec3{}
		}

		if ring.Fade != nil {
			alpha, _ := ring.Fade.Update(float32(dt))
			ring.Alpha = float64(alpha)
		}
	})
}
