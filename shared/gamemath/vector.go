package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-6

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalSpeed is the length of v on the XZ plane.
func HorizontalSpeed(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// SafeNormalize returns the unit vector of v, or false when v is too short
// to have a direction.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// FlatDirection projects v onto the horizontal plane and normalizes it.
func FlatDirection(v mgl64.Vec3) (mgl64.Vec3, bool) {
	return SafeNormalize(Horizontal(v))
}

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// YawFromDirection returns the heading of v in degrees, measured from +Z
// toward +X.
func YawFromDirection(v mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(v.X(), v.Z()))
}

// DirectionFromYaw is the inverse of YawFromDirection.
func DirectionFromYaw(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

// NormalizeAngle wraps degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// LerpAngle interpolates from one heading to another along the shorter arc.
func LerpAngle(from, to, t float64) float64 {
	delta := NormalizeAngle(to - from)
	return NormalizeAngle(from + delta*mgl64.Clamp(t, 0, 1))
}

// AngleBetween returns the angle in degrees between two unit vectors. The dot
// product is clamped so rounding never produces NaN.
func AngleBetween(a, b mgl64.Vec3) float64 {
	d := mgl64.Clamp(a.Dot(b), -1, 1)
	return mgl64.RadToDeg(math.Acos(d))
}
