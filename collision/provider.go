// Package collision answers the geometric questions the character controller
// asks each tick: the nearest surface along a ray and whether two volumes
// overlap.
package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Hit is the result of a raycast. Entity and the geometry fields are only
// meaningful when Hit is true.
type Hit struct {
	Hit      bool
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
	Entity   donburi.Entity
}

// Provider is the query surface the controller consumes.
type Provider interface {
	// Raycast returns the closest hit within maxDist along dir, skipping any
	// entity listed in ignore.
	Raycast(origin, dir mgl64.Vec3, maxDist float64, ignore ...donburi.Entity) Hit
	// Intersects reports whether two volumes overlap.
	Intersects(a, b Bounds) bool
}
