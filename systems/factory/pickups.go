package factory

import (
	"github.com/automoto/ringrush/archetypes"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/shared/leveldata"
	"github.com/automoto/ringrush/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RingHalfExtent is the half size of a ring's pickup volume.
const RingHalfExtent = 0.5

func CreateRing(w donburi.World, pos mgl64.Vec3) *donburi.Entry {
	ring := archetypes.Ring.Spawn(w)
	components.Object.SetValue(ring, components.ObjectData{
		Position: pos,
		Half:     mgl64.Vec3{RingHalfExtent, RingHalfExtent, RingHalfExtent},
	})
	addToSpace(w, ring, tags.ResolvRing)
	return ring
}

func CreateSpring(w donburi.World, s leveldata.SpringSpawn) *donburi.Entry {
	spring := archetypes.Spring.Spawn(w)
	components.Object.SetValue(spring, components.ObjectData{Position: s.Center, Half: s.Half})
	components.Spring.SetValue(spring, components.SpringData{Power: s.Power})
	addToSpace(w, spring, tags.ResolvSpring)
	return spring
}

// CreateCheckpoint creates an inactive checkpoint. Its respawn point is
// derived from the base position when it is activated.
func CreateCheckpoint(w donburi.World, c leveldata.CheckpointSpawn) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(w)
	components.Object.SetValue(checkpoint, components.ObjectData{Position: c.Center, Half: c.Half})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		CheckpointID: c.ID,
		Activated:    false,
		Position:     c.Center,
	})
	addToSpace(w, checkpoint, tags.ResolvCheckpoint)
	return checkpoint
}
