package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CreateSpace adds the collision space covering min..max on the XZ plane.
func CreateSpace(w donburi.World, min, max mgl64.Vec3, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, collision.NewSpace(min, max, cellSize, tags.Blockers...))
	return space
}

// addToSpace registers an entry's object volume with the world's space.
func addToSpace(w donburi.World, e *donburi.Entry, resolvTags ...string) {
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(e)
	components.Space.Get(spaceEntry).Add(e.Entity(), obj.Bounds(), resolvTags...)
}
