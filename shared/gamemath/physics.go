package gamemath

import "github.com/go-gl/mathgl/mgl64"

// DecaySpeed removes rate*dt from the horizontal speed of v, keeping its
// direction. Once the speed is no greater than the frame's amount it snaps to
// exactly zero.
func DecaySpeed(v mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	amount := rate * dt
	h := Horizontal(v)
	speed := h.Len()
	if speed <= amount || speed == 0 {
		return mgl64.Vec3{0, v.Y(), 0}
	}
	h = h.Mul((speed - amount) / speed)
	return mgl64.Vec3{h.X(), v.Y(), h.Z()}
}

// ClampFallSpeed keeps vy at or above the (negative) floor.
func ClampFallSpeed(vy, maxFall float64) float64 {
	if vy < maxFall {
		return maxFall
	}
	return vy
}

// ClampHorizontalSpeed limits the horizontal magnitude of v to max while
// leaving the vertical component untouched.
func ClampHorizontalSpeed(v mgl64.Vec3, max float64) mgl64.Vec3 {
	h := Horizontal(v)
	speed := h.Len()
	if speed <= max || speed == 0 {
		return v
	}
	h = h.Mul(max / speed)
	return mgl64.Vec3{h.X(), v.Y(), h.Z()}
}

// Lerp linearly interpolates between a and b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return a + (b-a)*t
}

// LerpVec interpolates each component of a toward b. t is clamped to [0, 1].
func LerpVec(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = mgl64.Clamp(t, 0, 1)
	return a.Add(b.Sub(a).Mul(t))
}
