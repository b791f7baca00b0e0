package components

import (
	"github.com/automoto/ringrush/collision"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's placement in the world.
type ObjectData struct {
	Position mgl64.Vec3 // Center
	Half     mgl64.Vec3 // Half extents
}

// Bounds is the object's volume.
func (o ObjectData) Bounds() collision.Bounds {
	return collision.NewBounds(o.Position, o.Half)
}

var Object = donburi.NewComponentType[ObjectData]()
