package archetypes

import (
	"github.com/automoto/ringrush/components"
	"github.com/automoto/ringrush/tags"
	"github.com/yohamta/donburi"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Blink,
	)
	Ring = newArchetype(
		tags.Ring,
		components.Object,
	)
	DroppedRing = newArchetype(
		tags.DroppedRing,
		components.DroppedRing,
		components.Object,
		components.AutoDestroy,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
	)
	Spring = newArchetype(
		tags.Spring,
		components.Spring,
		components.Object,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Object,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
