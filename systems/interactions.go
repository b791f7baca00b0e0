package systems

import (
	"github.com/automoto/ringrush/character"
	"github.com/automoto/ringrush/collision"
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/economy"
	"github.com/automoto/ringrush/tags"
	"github.com/yohamta/donburi"
)

// Space returns the world's collision space, or nil when none was created.
func Space(w donburi.World) *collision.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// ResolveInteractions checks the character's volume against rings, hazards,
// springs and checkpoints and hands each contact to the resolver. Collected
// rings and defeated hazards are removed from the world.
func ResolveInteractions(w donburi.World, c *character.Controller, res *economy.Resolver) {
	space := Space(w)
	if space == nil {
		return
	}
	bounds := c.Body.Bounds()

	for _, e := range space.Overlapping(bounds, tags.ResolvRing) {
		res.Ring()
		Destroy(w, e)
	}

	for _, e := range space.Overlapping(bounds, tags.ResolvHazard) {
		if !w.Valid(e) {
			continue
		}
		entry := w.Entry(e)
		hazard := components.Hazard.Get(entry)
		obj := components.Object.Get(entry)
		if res.Hazard(hazard.Points, obj.Position) == economy.HazardDefeated {
			Destroy(w, e)
		}
	}

	for _, e := range space.Overlapping(bounds, tags.ResolvSpring) {
		if !w.Valid(e) {
			continue
		}
		entry := w.Entry(e)
		spring := components.Spring.Get(entry)
		obj := components.Object.Get(entry)
		res.Spring(spring.Power, obj.Bounds().Top())
	}

	for _, e := range space.Overlapping(bounds, tags.ResolvCheckpoint) {
		if !w.Valid(e) {
			continue
		}
		entry := w.Entry(e)
		cp := components.Checkpoint.Get(entry)
		if res.Checkpoint(cp.Activated, cp.Position) {
			cp.Activated = true
		}
	}
}

// Destroy removes an entity from the collision space and the world. Stale
// handles are ignored.
func Destroy(w donburi.World, e donburi.Entity) {
	if space := Space(w); space != nil {
		space.Remove(e)
	}
	if w.Valid(e) {
		w.Remove(e)
	}
}
