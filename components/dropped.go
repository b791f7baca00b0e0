package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DroppedRingData is a ring scattered by a hit. It falls, settles on the
// ground and fades out; it cannot be collected again.
type DroppedRingData struct {
	Velocity mgl64.Vec3
	Fade     *gween.Tween // Alpha from 1 to 0
	Alpha    float64
}

var DroppedRing = donburi.NewComponentType[DroppedRingData]()
