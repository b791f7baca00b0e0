package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned box.
type Bounds struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBounds creates a box from a center point and half extents.
func NewBounds(center, half mgl64.Vec3) Bounds {
	return Bounds{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl64.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Half returns the half extents of the box.
func (b Bounds) Half() mgl64.Vec3 {
	return b.Max.Sub(b.Min).Mul(0.5)
}

// Top is the height of the upper face.
func (b Bounds) Top() float64 {
	return b.Max.Y()
}

// Intersects reports whether b and o overlap. Touching faces count.
func (b Bounds) Intersects(o Bounds) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Contains reports whether p lies inside or on the box.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y() &&
		p.Z() >= b.Min.Z() && p.Z() <= b.Max.Z()
}

// Raycast intersects a ray with the box using the slab method. dir must be
// normalized. A ray starting inside the box reports the exit face.
func (b Bounds) Raycast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		o, d := origin[axis], dir[axis]
		lo, hi := b.Min[axis], b.Max[axis]
		if math.Abs(d) < 1e-12 {
			if o < lo || o > hi {
				return Hit{}, false
			}
			continue
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return Hit{}, false
		}
	}

	if tmax < 0 {
		return Hit{}, false
	}
	t := tmin
	if t < 0 {
		t = tmax
	}
	if t > maxDist {
		return Hit{}, false
	}

	point := origin.Add(dir.Mul(t))
	return Hit{
		Hit:      true,
		Point:    point,
		Normal:   b.faceNormal(point),
		Distance: t,
	}, true
}

// faceNormal picks the face of the box closest to a point on its surface.
func (b Bounds) faceNormal(p mgl64.Vec3) mgl64.Vec3 {
	const eps = 1e-6
	switch {
	case math.Abs(p.Y()-b.Max.Y()) < eps:
		return mgl64.Vec3{0, 1, 0}
	case math.Abs(p.Y()-b.Min.Y()) < eps:
		return mgl64.Vec3{0, -1, 0}
	case math.Abs(p.X()-b.Min.X()) < eps:
		return mgl64.Vec3{-1, 0, 0}
	case math.Abs(p.X()-b.Max.X()) < eps:
		return mgl64.Vec3{1, 0, 0}
	case math.Abs(p.Z()-b.Min.Z()) < eps:
		return mgl64.Vec3{0, 0, -1}
	default:
		return mgl64.Vec3{0, 0, 1}
	}
}
